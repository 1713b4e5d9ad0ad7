// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/met-explorer/internal/collection"
	"github.com/pdiddy/met-explorer/internal/explore"
	"github.com/pdiddy/met-explorer/internal/metrics"
	"github.com/pdiddy/met-explorer/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search the collection and print matching artworks",
	Long: `Search sends the keyword to the collection API, fetches the details of
the first candidates in server order, and keeps the artworks that have an
image and pass the type, year and nationality filters.

Without a keyword the configured default (defaults.keyword) is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	in := inputFromDefaults(cfg.Defaults)
	if len(args) == 1 {
		in.Keyword = args[0]
	}
	criteria, err := explore.BuildCriteria(in, cfg.Defaults)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	explorer := newExplorer(cfg, logger, nil)
	result, err := explorer.Run(ctx, criteria)
	if errors.Is(err, collection.ErrSearchFailed) {
		return fmt.Errorf("could not search the collection for %q: %w", criteria.Keyword, err)
	}
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return render(cmd.OutOrStdout(), result, format)
}

func inputFromDefaults(d types.DefaultsConfig) explore.Input {
	return explore.Input{
		Keyword:     d.Keyword,
		Type:        d.Type,
		Nationality: d.Nationality,
		YearMin:     d.YearMin,
		YearMax:     d.YearMax,
	}
}

// newExplorer wires the collection client into an Explorer. m may be nil.
func newExplorer(cfg types.Config, logger zerolog.Logger, m *metrics.Metrics) *explore.Explorer {
	client := collection.New(cfg.Collection, nil)
	return explore.New(client, cfg.Search, logger, m)
}

func render(w io.Writer, r types.SearchResult, format string) error {
	switch format {
	case "", "table":
		explore.FormatTable(r, w)
		return nil
	case "json":
		return explore.FormatJSON(r, w)
	case "yaml":
		return explore.FormatYAML(r, w)
	case "markdown", "md":
		return explore.FormatMarkdown(r, w)
	default:
		return fmt.Errorf("unknown format %q (want table, json, yaml or markdown)", format)
	}
}

func init() {
	f := searchCmd.Flags()
	f.String("type", "", "object type, matched against the object name: All, Painting, Sculpture, Drawing, Print")
	f.String("nationality", "", "artist nationality substring (case-insensitive)")
	f.Int("from", 0, "earliest creation year, inclusive")
	f.Int("to", 0, "latest creation year, inclusive")
	f.Int("cap", types.DefaultCandidateCap, "maximum number of candidates to fetch")
	f.Int("concurrency", 1, "detail fetches in flight")
	f.Bool("has-images", false, "ask the API for objects with images only")
	f.String("format", "table", "output format: table, json, yaml, markdown")

	mustBind("defaults.type", f.Lookup("type"))
	mustBind("defaults.nationality", f.Lookup("nationality"))
	mustBind("defaults.year_min", f.Lookup("from"))
	mustBind("defaults.year_max", f.Lookup("to"))
	mustBind("search.candidate_cap", f.Lookup("cap"))
	mustBind("search.concurrency", f.Lookup("concurrency"))
	mustBind("collection.has_images_only", f.Lookup("has-images"))

	rootCmd.AddCommand(searchCmd)
}
