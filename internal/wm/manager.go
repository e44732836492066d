package wm

import (
	"fmt"
	"os"

	"go.i3wm.org/i3/v4"

	"i3-insert-workspace/pkg/config"
	"i3-insert-workspace/pkg/global"
)

// NewClient detects the running window manager and returns a connected
// client. sway speaks the same IPC protocol as i3 on its own socket, so
// detection only has to point the library at the right socket path.
func NewClient() (*Client, error) {
	log := global.GetLogger()

	if sock := os.Getenv("SWAYSOCK"); sock != "" {
		log.Debug("Initializing window manager support", "type", "sway", "socket", sock)
		i3.SocketPathHook = func() (string, error) {
			return sock, nil
		}
		i3.IsRunningHook = func() bool {
			return true
		}
		return &Client{name: "sway", defaultStrategy: config.StrategySwap}, nil
	}

	if os.Getenv("I3SOCK") != "" || os.Getenv("DISPLAY") != "" {
		log.Debug("Initializing window manager support", "type", "i3")
		return &Client{name: "i3", defaultStrategy: config.StrategyRename}, nil
	}

	return nil, fmt.Errorf("no supported window manager detected: neither SWAYSOCK nor I3SOCK/DISPLAY is set")
}
