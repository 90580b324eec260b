package main

import (
	"fmt"

	"toolbox/internal/controller"
	"toolbox/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.ephemeral, "ephemeral", false, "keep preferences in memory only")
	return cmd
}

func runBrowse(cmd *cobra.Command, opts *cliOptions) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}

	ctrl := controller.New(s.catalog, s.prefs, opts.logger)

	// Initialize TUI application
	model := tui.NewMainModel(ctrl, opts.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI program: %w", err)
	}

	// Every change was already written through; this retries anything that
	// failed during the session.
	if err := ctrl.Persist(); err != nil {
		return fmt.Errorf("preferences not saved: %w", err)
	}
	return nil
}
