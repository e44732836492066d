// Package insert computes and submits the window manager command batch
// that places a new (or existing) workspace immediately before or after a
// pivot workspace, without disturbing any other container's membership or
// the user's visible focus.
package insert

import (
	"fmt"
	"strings"

	"go.i3wm.org/i3/v4"

	"i3-insert-workspace/internal/wm"
	"i3-insert-workspace/pkg/config"
	"i3-insert-workspace/pkg/global"
)

// NoContainer selects insertion of an empty workspace. Container ids
// handed out by i3 and sway are never zero.
const NoContainer i3.NodeID = 0

// Strategy plans and submits one workspace insertion from a fresh
// snapshot. Implementations differ only in which reordering primitive of
// the window manager they exploit.
type Strategy interface {
	// Insert creates workspace name at dest, moving container into it
	// when one is given.
	Insert(conn wm.Conn, dest Destination, name string, container i3.NodeID) error
	// Name identifies the strategy for logging and configuration.
	Name() string
}

// ForName maps a configured strategy name to its implementation.
func ForName(name string) (Strategy, error) {
	switch name {
	case config.StrategyRename:
		return Rename{}, nil
	case config.StrategySwap:
		return Swap{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// Rename inserts by renaming every trailing workspace of the pivot's
// output to itself. Valid only on managers where a rename moves the
// workspace to the tail of its output's list; i3 does this, sway does
// not.
type Rename struct{}

func (Rename) Name() string { return config.StrategyRename }

func (Rename) Insert(conn wm.Conn, dest Destination, name string, container i3.NodeID) error {
	workspaces, err := conn.GetWorkspaces()
	if err != nil {
		return err
	}
	batch, err := planRename(workspaces, dest, name, container)
	if err != nil {
		return err
	}
	return submit(conn, batch)
}

// Swap inserts by evacuating every workspace after the insertion point
// through a disposable workspace. Valid on managers that order workspaces
// by attachment, such as sway.
type Swap struct {
	// Disposable overrides the scratch workspace name source. Nil uses
	// the uuid-backed default.
	Disposable func() string
}

func (Swap) Name() string { return config.StrategySwap }

func (s Swap) Insert(conn wm.Conn, dest Destination, name string, container i3.NodeID) error {
	root, err := conn.GetTree()
	if err != nil {
		return err
	}
	disposable := s.Disposable
	if disposable == nil {
		disposable = disposableName
	}
	batch, err := planSwap(root, dest, name, container, disposable)
	if err != nil {
		return err
	}
	return submit(conn, batch)
}

// submit joins the batch into one composite command and sends it in a
// single round trip, shrinking the window in which another client could
// observe or mutate intermediate state. All sub-commands must succeed;
// a partial failure surfaces as a single CommandError and nothing is
// retried or rolled back.
func submit(conn wm.Conn, batch []string) error {
	log := global.GetLogger()

	command := strings.Join(batch, "; ")
	log.Debug("Submitting command batch", "commands", len(batch))

	outcomes, err := conn.RunCommand(command)
	if err != nil && len(outcomes) == 0 {
		return fmt.Errorf("run command: %w", err)
	}

	for _, outcome := range outcomes {
		if outcome.Success {
			continue
		}
		message := outcome.Error
		if message == "" {
			message = "no error message, but errored"
		}
		return &CommandError{Message: message}
	}

	log.Info("Command batch applied", "commands", len(batch))
	return nil
}
