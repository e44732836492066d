package wm

import (
	"fmt"

	"go.i3wm.org/i3/v4"

	"i3-insert-workspace/pkg/global"
)

// Client talks to a running i3 or sway instance over the i3 IPC socket.
type Client struct {
	name            string
	defaultStrategy string
}

func (c *Client) Name() string {
	return c.name
}

// DefaultStrategy returns the insertion strategy valid for the detected
// manager: i3 moves a renamed workspace to the tail of its output's list,
// sway keeps attachment order and needs the container swap.
func (c *Client) DefaultStrategy() string {
	return c.defaultStrategy
}

func (c *Client) GetWorkspaces() ([]i3.Workspace, error) {
	log := global.GetLogger()

	workspaces, err := i3.GetWorkspaces()
	if err != nil {
		log.Error("Failed to fetch workspace list", err)
		return nil, fmt.Errorf("get workspaces: %w", err)
	}

	log.Debug("Fetched workspace list", "count", len(workspaces))
	return workspaces, nil
}

func (c *Client) GetTree() (*i3.Node, error) {
	log := global.GetLogger()

	tree, err := i3.GetTree()
	if err != nil {
		log.Error("Failed to fetch layout tree", err)
		return nil, fmt.Errorf("get tree: %w", err)
	}

	log.Debug("Fetched layout tree")
	return tree.Root, nil
}

func (c *Client) RunCommand(command string) ([]i3.CommandResult, error) {
	log := global.GetLogger()

	log.Debug("Running command", "command", command)
	return i3.RunCommand(command)
}
