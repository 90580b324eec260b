package main

import (
	"fmt"
	"time"

	"toolbox/internal/catalog"
	"toolbox/internal/config"
	"toolbox/internal/logging"
	"toolbox/internal/prefs"
	"toolbox/internal/storage"

	"github.com/spf13/cobra"
)

// systemThemeTimeout bounds the terminal background query. Terminals that
// never answer would otherwise delay startup.
const systemThemeTimeout = 50 * time.Millisecond

type cliOptions struct {
	configPath  string
	catalogPath string
	statePath   string
	ephemeral   bool
	jsonOutput  bool

	logger      *logging.AppLogger
	systemTheme prefs.SystemThemeFunc
}

func defaultOptions(logger *logging.AppLogger) cliOptions {
	return cliOptions{
		logger:      logger,
		systemTheme: prefs.DetectSystemTheme(systemThemeTimeout),
	}
}

func newRootCommand(opts cliOptions) *cobra.Command {
	o := &opts

	root := &cobra.Command{
		Use:   "toolbox",
		Short: "Browse a curated catalog of online tools",
		Long: `toolbox is a terminal catalog of online tools grouped by category.

Run it without a command to browse interactively, or use the commands below
from scripts. Favorites and the theme are shared between all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, o)
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	root.PersistentFlags().StringVar(&o.catalogPath, "catalog", "", "JSON or YAML catalog replacing the built-in one")
	root.PersistentFlags().StringVar(&o.statePath, "state", "", "preference state file (default "+config.DefaultStatePath()+")")
	root.Flags().BoolVar(&o.ephemeral, "ephemeral", false, "keep preferences in memory only")

	root.AddCommand(
		newBrowseCmd(o),
		newListCmd(o),
		newSearchCmd(o),
		newFavCmd(o),
		newThemeCmd(o),
		newMCPCmd(o),
	)

	return root
}

// session is everything a command needs, built from flags and config.
type session struct {
	catalog *catalog.Catalog
	store   storage.Store
	prefs   *prefs.Store
}

func loadConfig(opts *cliOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFrom(config.ExpandPath(opts.configPath))
	}
	return config.Load()
}

func openSession(opts *cliOptions) (*session, error) {
	defer opts.logger.LogPerformance("open_session", time.Now())

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	catalogPath := cfg.ResolveCatalogPath()
	if opts.catalogPath != "" {
		catalogPath = config.ExpandPath(opts.catalogPath)
	}

	var cat *catalog.Catalog
	if catalogPath == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(catalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var kv storage.Store
	if opts.ephemeral {
		kv = storage.NewMemoryStore()
	} else {
		statePath := cfg.ResolveStatePath()
		if opts.statePath != "" {
			statePath = config.ExpandPath(opts.statePath)
		}
		fs := storage.NewFileStore(statePath, opts.logger)
		opts.logger.Debug("Using state file", "path", fs.Path())
		kv = fs
	}

	system := opts.systemTheme
	if system == nil {
		system = prefs.NoSystemTheme
	}

	opts.logger.Debug("Session opened", "catalog", catalogPath, "tools", cat.Len(), "ephemeral", opts.ephemeral)

	return &session{
		catalog: cat,
		store:   kv,
		prefs:   prefs.Load(kv, system, opts.logger),
	}, nil
}
