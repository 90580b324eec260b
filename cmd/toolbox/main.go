// Package main is the entry point for the toolbox CLI application.
//
// Without a subcommand toolbox starts the Terminal User Interface. The other
// commands (list, search, fav, theme, mcp) work on the same catalog and the
// same preference state, so a favorite added from a script or an MCP client
// shows up in the next TUI session.
package main

import (
	"os"

	"toolbox/internal/logging"
)

func main() {
	// setup logging
	appLogger := logging.NewAppLogger()

	root := newRootCommand(defaultOptions(appLogger))
	if err := root.Execute(); err != nil {
		appLogger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
