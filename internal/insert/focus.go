package insert

import "go.i3wm.org/i3/v4"

// FocusLocation is where the user's focus currently sits: the output and
// workspace passed on the way down, and the focused container itself. It
// is only meaningful for the snapshot it was resolved from.
type FocusLocation struct {
	Output    string
	Workspace string
	Container i3.NodeID
}

// childByID looks id up among a node's tiled and floating children.
func childByID(node *i3.Node, id i3.NodeID) *i3.Node {
	for _, child := range node.Nodes {
		if child.ID == id {
			return child
		}
	}
	for _, child := range node.FloatingNodes {
		if child.ID == id {
			return child
		}
	}
	return nil
}

// ResolveFocus walks the tree from root along the most-recently-focused
// child chain until it reaches the node flagged as focused, recording the
// last output and workspace names seen on the way down. The walk visits
// each level once, so it terminates after at most tree-depth steps.
func ResolveFocus(root *i3.Node) (FocusLocation, error) {
	current := root
	var output, workspace string

	for !current.Focused {
		if len(current.Focus) == 0 {
			return FocusLocation{}, ErrBrokenFocusChain
		}
		next := childByID(current, current.Focus[0])
		if next == nil {
			return FocusLocation{}, ErrIncorrectFocusEntry
		}
		current = next

		switch current.Type {
		case i3.OutputNode:
			if current.Name == "" {
				return FocusLocation{}, ErrUnnamedOutput
			}
			output = current.Name
		case i3.WorkspaceNode:
			if current.Name == "" {
				return FocusLocation{}, ErrUnnamedWorkspace
			}
			workspace = current.Name
		}
	}

	if output == "" {
		return FocusLocation{}, ErrOutputNameNotFound
	}
	if workspace == "" {
		return FocusLocation{}, ErrWorkspaceNameNotFound
	}
	return FocusLocation{
		Output:    output,
		Workspace: workspace,
		Container: current.ID,
	}, nil
}
