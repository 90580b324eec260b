package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFavCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Add a tool to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tool id %q", args[0])
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}

			tool, ok := s.catalog.ByID(id)
			if !ok {
				return fmt.Errorf("no tool with id %d", id)
			}

			now, err := s.prefs.ToggleFavorite(id)
			if err != nil {
				return fmt.Errorf("favorite %d not saved: %w", id, err)
			}
			opts.logger.LogUserAction("cli_toggle_favorite", fmt.Sprintf("id=%d favorite=%t", id, now))

			if now {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s to favorites\n", favoriteStyle.Render("★"), tool.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", tool.Name)
			}
			return nil
		},
	}
}
