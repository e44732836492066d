package insert

import (
	"fmt"

	"github.com/google/uuid"
	"go.i3wm.org/i3/v4"
)

// disposableName returns a scratch workspace name that cannot collide
// with a real one short of a user workspace already carrying this exact
// token.
func disposableName() string {
	return "shift-" + uuid.NewString()
}

// findPivot locates the workspace named pivot among the outputs' children
// and returns its owning output node and its index within it.
func findPivot(root *i3.Node, pivot string) (*i3.Node, int) {
	for _, output := range root.Nodes {
		for i, ws := range output.Nodes {
			if ws.Type == i3.WorkspaceNode && ws.Name == pivot {
				return output, i
			}
		}
	}
	return nil, 0
}

// isFocused reports whether ws is, or contains via its focus chain, the
// focused node.
func isFocused(ws *i3.Node) bool {
	if ws.Focused {
		return true
	}
	if len(ws.Focus) == 0 {
		return false
	}
	next := childByID(ws, ws.Focus[0])
	if next == nil {
		return false
	}
	return isFocused(next)
}

// evacuate empties ws into a fresh disposable workspace and renames the
// disposable back to ws's name once vacated, preserving container ids.
// The container being relocated, if any, stays put. A workspace with
// nothing to move yields no commands and is left untouched.
func evacuate(ws *i3.Node, container i3.NodeID, disposable func() string) ([]string, error) {
	scratch := disposable()

	var cmds []string
	for _, child := range ws.Nodes {
		if container != NoContainer && child.ID == container {
			continue
		}
		cmds = append(cmds, fmt.Sprintf("[con_id=%d] move container to workspace %q", child.ID, scratch))
	}
	for _, child := range ws.FloatingNodes {
		if container != NoContainer && child.ID == container {
			continue
		}
		cmds = append(cmds, fmt.Sprintf("[con_id=%d] move container to workspace %q", child.ID, scratch))
	}

	// When a container is pulled into the new workspace, visible focus
	// must follow the evacuated content rather than jump to the freshly
	// created slot.
	if container != NoContainer && isFocused(ws) {
		cmds = append(cmds, fmt.Sprintf("workspace %q", scratch))
	}

	if len(cmds) > 0 {
		if ws.Name == "" {
			return nil, ErrUnnamedWorkspace
		}
		cmds = append(cmds, fmt.Sprintf("rename workspace %q to %q", scratch, ws.Name))
	}
	return cmds, nil
}

// planSwap computes the insertion batch for managers that order
// workspaces by attachment: instead of moving the new workspace into
// place, every workspace at or after the insertion point is emptied into
// a disposable workspace (which attaches at the tail) and then renamed
// back, shifting the whole tail one slot outward with container ids
// preserved.
func planSwap(root *i3.Node, dest Destination, name string, container i3.NodeID, disposable func() string) ([]string, error) {
	output, pivotIndex := findPivot(root, dest.Pivot())
	if output == nil {
		return nil, &NoPivotError{Pivot: dest.Pivot()}
	}

	firstShifted := pivotIndex
	if !dest.Before() {
		firstShifted = pivotIndex + 1
	}

	batch := []string{creationCommand(name, container)}
	for i := firstShifted; i < len(output.Nodes); i++ {
		ws := output.Nodes[i]
		if ws.Type != i3.WorkspaceNode {
			continue
		}
		cmds, err := evacuate(ws, container, disposable)
		if err != nil {
			return nil, err
		}
		batch = append(batch, cmds...)
	}
	return batch, nil
}
