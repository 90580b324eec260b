package main

import (
	"fmt"
	"strings"

	mcpserver "toolbox/internal/mcp"
	"toolbox/internal/search"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search tools by name, description or category",
		Long: fmt.Sprintf(`Search tools by name, description or category label.

Matching is a case-insensitive substring match and returns at most %d tools in
catalog order. Without a query the %d most popular tools are shown.`, search.MaxResults, search.MaxSuggestions),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			r := search.Search(s.catalog.Tools(), query)
			out := cmd.OutOrStdout()

			if opts.jsonOutput {
				return writeJSON(out, mcpserver.SearchResponse{
					Kind:  r.Kind,
					Query: query,
					Tools: mcpserver.NewToolEntries(r.Tools, s.prefs),
				})
			}

			switch r.Kind {
			case search.KindNoResults:
				fmt.Fprintf(out, "No tools found for %q\n", r.Query)
				return nil
			case search.KindSuggestions:
				fmt.Fprintln(out, "Popular tools")
			}

			printToolTable(out, r.Tools, s.prefs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	return cmd
}
