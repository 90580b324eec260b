package main

import (
	"fmt"

	"toolbox/internal/prefs"

	"github.com/spf13/cobra"
)

const themeToggle = "toggle"

func newThemeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Print or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark), themeToggle},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				next := s.prefs.GetTheme().Toggle()
				if args[0] != themeToggle {
					t, ok := prefs.ParseTheme(args[0])
					if !ok {
						return fmt.Errorf("%w: %q (want light, dark or toggle)", prefs.ErrInvalidTheme, args[0])
					}
					next = t
				}
				if err := s.prefs.SetTheme(next); err != nil {
					return fmt.Errorf("theme not saved: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.prefs.GetTheme())
			return nil
		},
	}
}
