package main

import (
	"fmt"
	"slices"

	"toolbox/internal/catalog"
	"toolbox/internal/controller"
	"toolbox/internal/filter"
	mcpserver "toolbox/internal/mcp"

	"github.com/spf13/cobra"
)

type listFlags struct {
	category  string
	tag       string
	favorites bool
	sort      string
}

func newListCmd(opts *cliOptions) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog tools",
		Example: `  toolbox list --category design --tag free
  toolbox list --favorites --sort name --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := f.state()
			if err != nil {
				return err
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}

			tools := filter.Apply(s.catalog.Tools(), st, s.prefs)
			out := cmd.OutOrStdout()

			if opts.jsonOutput {
				entries := mcpserver.NewToolEntries(tools, s.prefs)
				return writeJSON(out, mcpserver.ListResponse{Count: len(entries), Tools: entries})
			}

			if len(tools) == 0 {
				if st.FavoritesOnly && s.prefs.FavoriteCount() == 0 {
					fmt.Fprintln(out, "No favorites yet. Add one with 'toolbox fav <id>'.")
				} else {
					fmt.Fprintln(out, "No tools match these filters.")
				}
				return nil
			}

			printToolTable(out, tools, s.prefs)
			fmt.Fprintln(out, dimStyle.Render(controller.CountLabel(len(tools))+" · "+st.Sort.Label()))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.category, "category", "", "category id, e.g. design or dev")
	cmd.Flags().StringVar(&f.tag, "tag", "", "pricing tag: free, freemium or open-source")
	cmd.Flags().BoolVar(&f.favorites, "favorites", false, "only favorites")
	cmd.Flags().StringVar(&f.sort, "sort", "", "order: default, name or popular")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range filter.SortModes() {
			names = append(names, string(m))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (f listFlags) state() (filter.State, error) {
	mode, err := filter.ParseSortMode(f.sort)
	if err != nil {
		return filter.State{}, err
	}

	tag := catalog.Tag(f.tag)
	if tag != "" && !slices.Contains(catalog.Tags(), tag) {
		return filter.State{}, fmt.Errorf("unknown tag %q (want free, freemium or open-source)", f.tag)
	}

	return filter.State{
		Category:      catalog.ParseCategory(f.category),
		Tag:           tag,
		FavoritesOnly: f.favorites,
		Sort:          mode,
	}, nil
}
