package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"i3-insert-workspace/internal/app"
	"i3-insert-workspace/pkg/config"
	"i3-insert-workspace/pkg/global"
	"i3-insert-workspace/pkg/logger"
)

// RootCmd returns the tool's root command.
func RootCmd() *cobra.Command {
	var (
		opts       app.Options
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:     "i3-insert-workspace",
		Short:   "Insert a named workspace before or after another workspace",
		Version: "1.0.0",
		Long: `Insert a named workspace before or after another workspace.

i3 and sway only ever append new workspaces, so this tool computes the
batch of IPC commands that shifts existing workspaces out of the way and
submits it in one round trip.

Examples:
  i3-insert-workspace                          # new workspace after the focused one
  i3-insert-workspace --before --pivot mail    # insert before workspace "mail"
  i3-insert-workspace --name dev --container-id focused`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(opts, configPath, debug)
		},
	}

	cmd.Flags().StringVarP(&opts.Pivot, "pivot", "p", "",
		"workspace before or after which the new workspace is inserted (default: the focused workspace)")
	cmd.Flags().BoolVarP(&opts.Before, "before", "b", false,
		"insert before the pivot instead of after it")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "",
		"name of the new workspace (default: a generated unused name)")
	cmd.Flags().StringVarP(&opts.ContainerID, "container-id", "c", "",
		`move a container to the new workspace: a container id, or "focused"`)
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "",
		"insertion strategy: rename, swap or auto (default: config file, then detection)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

func runInsert(opts app.Options, configPath string, debug bool) error {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	// Bootstrap logger for the config load itself.
	bootLog, err := logger.NewLogger(logger.WithLevel(logLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.FindConfig(configPath, bootLog)
	if err != nil {
		bootLog.Error("Failed to load configuration", err, "provided_path", configPath)
		return err
	}

	if cfg.GetDebug() {
		logLevel = zerolog.DebugLevel
	}
	logOpts := []logger.Option{logger.WithLevel(logLevel)}
	if cfg.GetLogFile() != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.GetLogFile()))
	}
	log, err := logger.NewLogger(logOpts...)
	if err != nil {
		bootLog.Error("Failed to initialize logger", err)
		return err
	}
	defer log.Close()

	global.InitGlobals(cfg, log)

	return app.Run(opts)
}
