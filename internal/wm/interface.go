package wm

import "go.i3wm.org/i3/v4"

// Conn is the IPC surface of the window manager that the insertion engine
// consumes: two snapshot reads and one command submission.
type Conn interface {
	// GetWorkspaces returns the flat workspace list in the manager's order,
	// with each output's workspaces contiguous.
	GetWorkspaces() ([]i3.Workspace, error)
	// GetTree returns the root of the layout tree snapshot.
	GetTree() (*i3.Node, error)
	// RunCommand submits a composite command in a single round trip and
	// returns the per-command outcomes.
	RunCommand(command string) ([]i3.CommandResult, error)
	// Name returns the WM name for logging/display
	Name() string
}
