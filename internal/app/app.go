// Package app wires one insertion run: detect the window manager, resolve
// focus where needed, fill in defaults, pick a strategy and execute it.
package app

import (
	"fmt"
	"strconv"
	"strings"

	"go.i3wm.org/i3/v4"

	"i3-insert-workspace/internal/insert"
	"i3-insert-workspace/internal/wm"
	"i3-insert-workspace/pkg/config"
	"i3-insert-workspace/pkg/global"
	"i3-insert-workspace/pkg/namegen"
)

// Options carries the validated command line surface.
type Options struct {
	// Pivot is the workspace the insertion is relative to; empty means
	// the currently focused workspace.
	Pivot string
	// Before inserts before the pivot instead of after it.
	Before bool
	// Name of the new workspace; empty means a generated unused name.
	Name string
	// ContainerID selects a container to move into the new workspace:
	// empty for none, "focused", or a numeric container id.
	ContainerID string
	// Strategy overrides the configured insertion strategy.
	Strategy string
}

// Run performs one insertion: snapshot, plan, submit.
func Run(opts Options) error {
	log := global.GetLogger()
	cfg := global.GetConfig()

	client, err := wm.NewClient()
	if err != nil {
		return err
	}
	log.Info("Window manager detected", "name", client.Name())

	// Focus only matters when it supplies a default pivot or resolves
	// the "focused" container selector.
	var focus insert.FocusLocation
	if opts.Pivot == "" || strings.EqualFold(opts.ContainerID, "focused") {
		root, err := client.GetTree()
		if err != nil {
			return err
		}
		focus, err = insert.ResolveFocus(root)
		if err != nil {
			return fmt.Errorf("resolve focus: %w", err)
		}
		log.Debug("Focus resolved",
			"output", focus.Output,
			"workspace", focus.Workspace,
			"container", focus.Container)
	}

	pivot := opts.Pivot
	if pivot == "" {
		pivot = focus.Workspace
	}
	dest := insert.NewDestination(pivot, opts.Before)

	name := opts.Name
	if name == "" {
		workspaces, err := client.GetWorkspaces()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(workspaces))
		for _, ws := range workspaces {
			names = append(names, ws.Name)
		}
		name = namegen.Unused(names)
		log.Info("Generated workspace name", "name", name)
	}

	container, err := parseContainer(opts.ContainerID, focus)
	if err != nil {
		return err
	}

	strategy, err := pickStrategy(opts.Strategy, cfg.GetStrategy(), client.DefaultStrategy())
	if err != nil {
		return err
	}

	log.Info("Inserting workspace",
		"name", name,
		"pivot", pivot,
		"before", opts.Before,
		"strategy", strategy.Name())

	return strategy.Insert(client, dest, name, container)
}

// parseContainer resolves the container selector: empty means none,
// "focused" means the currently focused container, anything else must be
// a numeric container id.
func parseContainer(selector string, focus insert.FocusLocation) (i3.NodeID, error) {
	switch {
	case selector == "":
		return insert.NoContainer, nil
	case strings.EqualFold(selector, "focused"):
		return focus.Container, nil
	}
	id, err := strconv.ParseInt(selector, 10, 64)
	if err != nil {
		return insert.NoContainer, fmt.Errorf("non-numeric container id %q", selector)
	}
	return i3.NodeID(id), nil
}

// pickStrategy applies the precedence flag > config file > detected
// default.
func pickStrategy(flagValue, configValue, detected string) (insert.Strategy, error) {
	choice := flagValue
	if choice == "" || choice == config.StrategyAuto {
		choice = configValue
	}
	if choice == "" || choice == config.StrategyAuto {
		choice = detected
	}
	return insert.ForName(choice)
}
