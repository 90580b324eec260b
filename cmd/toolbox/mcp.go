package main

import (
	mcpserver "toolbox/internal/mcp"

	"github.com/spf13/cobra"
)

func newMCPCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog to AI assistants over MCP (stdio)",
		Long: `Start a Model Context Protocol server on stdin/stdout.

The server exposes list_tools, search_tools and toggle_favorite. Favorites
changed here are saved to the same state file the TUI uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			server := mcpserver.NewServer(s.catalog, s.prefs, opts.logger)
			startErr := server.Start()
			if err := server.Stop(); err != nil {
				opts.logger.Error("Failed to stop MCP server", "error", err)
			}
			return startErr
		},
	}
}
