package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"i3-insert-workspace/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
