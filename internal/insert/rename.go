package insert

import (
	"fmt"

	"go.i3wm.org/i3/v4"
)

// planRename computes the insertion batch for managers where renaming a
// workspace moves it to the tail of its output's workspace list. Every
// workspace from the insertion point to the end of the pivot's output is
// renamed to itself in list order, which reproduces their relative order
// after the newly created workspace.
//
// The workspace list is taken exactly as the manager returned it; the
// pivot's output group is assumed contiguous within it.
func planRename(workspaces []i3.Workspace, dest Destination, name string, container i3.NodeID) ([]string, error) {
	pivotIndex := -1
	for i, ws := range workspaces {
		if ws.Name == dest.Pivot() {
			pivotIndex = i
			break
		}
	}
	if pivotIndex == -1 {
		return nil, &NoPivotError{Pivot: dest.Pivot()}
	}

	output := workspaces[pivotIndex].Output

	stopIndex := len(workspaces)
	for i := pivotIndex; i < len(workspaces); i++ {
		if workspaces[i].Output != output {
			stopIndex = i
			break
		}
	}

	startIndex := pivotIndex
	if !dest.Before() {
		startIndex = pivotIndex + 1
	}

	// Workspace creation does not guarantee placement on the pivot's
	// output, so the batch moves the new workspace there explicitly
	// before shifting anything.
	batch := []string{
		creationCommand(name, container),
		fmt.Sprintf("move workspace to output %s", output),
	}
	for _, ws := range workspaces[startIndex:stopIndex] {
		if ws.Name == name {
			continue
		}
		batch = append(batch, fmt.Sprintf("rename workspace %q to %q", ws.Name, ws.Name))
	}
	return batch, nil
}

// creationCommand creates the new workspace, either by switching to it or
// by moving the given container into it.
func creationCommand(name string, container i3.NodeID) string {
	if container != NoContainer {
		return fmt.Sprintf("[con_id=%d] move container to workspace %q", container, name)
	}
	return fmt.Sprintf("workspace %q", name)
}
