// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the catalog operator command.

It reads the same data directory as the API server and prints the catalogue
as tables, which makes it the quickest way to check a scrape before deploying.

Usage:

	catalog --data-dir ./data/manga list
	catalog search "solo"
	catalog show solo-leveling
	catalog validate
*/
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangaread/internal/core/catalog"
	"github.com/taibuivan/mangaread/internal/platform/config"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dataDir string
	workers int
	noColor bool
	verbose bool
}

// app is the state built once the flags are parsed.
type app struct {
	flags options

	dataDir string
	service *catalog.Service
	out     *Formatter
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writer so tests can capture it.
func NewRootCommand() *cobra.Command {
	state := &app{}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect the manga catalogue",
		Long:          `Loads the JSON catalogue the API serves and prints titles, categories and chapters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&state.flags.dataDir, "data-dir", "d", "", "catalogue directory (defaults to CATALOG_DATA_DIR and its fallbacks)")
	flags.IntVarP(&state.flags.workers, "workers", "w", 0, "concurrent file decoders (defaults to CATALOG_LOAD_WORKERS)")
	flags.BoolVar(&state.flags.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&state.flags.verbose, "verbose", "v", false, "log catalogue loading to stderr")

	root.AddCommand(
		newListCommand(state),
		newSearchCommand(state),
		newFeaturedCommand(state),
		newPopularCommand(state),
		newCategoriesCommand(state),
		newCategoryCommand(state),
		newShowCommand(state),
		newValidateCommand(state),
	)
	return root
}

// open resolves the data directory and loads the catalogue. A failed load
// stops the command.
func (state *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	state.dataDir = state.flags.dataDir
	if state.dataDir == "" {
		state.dataDir = catalog.ResolveDataDir(cfg.CatalogDirCandidates())
	}

	workers := state.flags.workers
	if workers < 1 {
		workers = cfg.CatalogLoadWorkers
	}

	level := slog.LevelError + 1
	if state.flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	repository := catalog.NewFileRepository(os.DirFS(state.dataDir), state.dataDir, workers, logger)
	state.service = catalog.NewService(repository, logger)
	state.out = NewFormatter(cmd.OutOrStdout(), !state.flags.noColor)

	return state.service.Load(cmd.Context())
}
