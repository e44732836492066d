package insert

import (
	"errors"
	"fmt"
)

// Snapshot-shape failures from the focus resolver. Any of these means the
// window manager returned a tree the walk cannot interpret.
var (
	ErrBrokenFocusChain      = errors.New("focus chain broken: node has no focus history")
	ErrIncorrectFocusEntry   = errors.New("focus entry does not match any child node")
	ErrUnnamedOutput         = errors.New("output has no name")
	ErrUnnamedWorkspace      = errors.New("workspace has no name")
	ErrOutputNameNotFound    = errors.New("focused output not found")
	ErrWorkspaceNameNotFound = errors.New("focused workspace not found")
)

// NoPivotError reports that the pivot workspace is absent from the
// snapshot.
type NoPivotError struct {
	Pivot string
}

func (e *NoPivotError) Error() string {
	return fmt.Sprintf("could not find workspace %q", e.Pivot)
}

// CommandError reports that the window manager rejected one of the
// submitted sub-commands. Earlier sub-commands may already have taken
// effect; nothing is rolled back.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("window manager rejected command: %s", e.Message)
}
