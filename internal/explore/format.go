// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// Report is the serialized form of a SearchResult: the result itself plus
// its derived outcome.
type Report struct {
	types.SearchResult `yaml:",inline"`

	Outcome types.Outcome `json:"outcome" yaml:"outcome"`
}

// NewReport wraps r with its outcome.
func NewReport(r types.SearchResult) Report {
	return Report{SearchResult: r, Outcome: r.Outcome()}
}

// Summary returns the one-line status shown above the results.
func Summary(r types.SearchResult) string {
	switch r.Outcome() {
	case types.OutcomeNoResults:
		return "No artworks found for this keyword."
	case types.OutcomeNoMatches:
		return fmt.Sprintf("Found %d artworks. None of the first %d matched the selected filters.",
			r.TotalAvailable, r.CandidateCount)
	default:
		return fmt.Sprintf("Found %d artworks. Showing first %d results.", r.TotalAvailable, r.CandidateCount)
	}
}

// FormatTable writes the result as a human-readable table to w.
func FormatTable(r types.SearchResult, w io.Writer) {
	fmt.Fprintln(w, Summary(r))
	if len(r.Artworks) == 0 {
		return
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-4s  %-40s  %-24s  %-16s  %-24s  %s\n",
		"#", "Title", "Artist", "Date", "Medium", "Nationality")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for i, a := range r.Artworks {
		fmt.Fprintf(w, "%-4d  %-40s  %-24s  %-16s  %-24s  %s\n",
			i+1, truncate(a.Title, 40), truncate(a.Artist, 24), truncate(a.DateText, 16),
			truncate(a.Medium, 24), a.Nationality)
		if a.DetailURL != "" {
			fmt.Fprintf(w, "      %s\n", a.DetailURL)
		}
	}

	fmt.Fprintf(w, "\n%d artworks shown", len(r.Artworks))
	if r.Skipped > 0 {
		fmt.Fprintf(w, " (%d could not be fetched)", r.Skipped)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the report as indented JSON to w.
func FormatJSON(r types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(r))
}

// FormatYAML writes the report as YAML to w.
func FormatYAML(r types.SearchResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(r)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// FormatMarkdown writes the result as a Markdown document with one section
// per artwork, its image, and a link to the museum page.
func FormatMarkdown(r types.SearchResult, w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1(fmt.Sprintf("Artworks for %q", r.Keyword))
	md.PlainText("")

	switch r.Outcome() {
	case types.OutcomeNoResults:
		md.Warningf("%s", Summary(r))
		return md.Build()
	case types.OutcomeNoMatches:
		md.Note(Summary(r))
		return md.Build()
	}

	md.PlainText(Summary(r))
	md.PlainText("")

	for _, a := range r.Artworks {
		md.H2(a.Title)
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Artist", "Date", "Medium", "Nationality"},
			Rows:   [][]string{{a.Artist, a.DateText, a.Medium, a.Nationality}},
		})
		md.PlainText("")
		md.PlainText(markdown.Image(a.Title, a.ImageURL))
		md.PlainText("")
		if a.DetailURL != "" {
			md.PlainText(markdown.Link("View on MET Museum", a.DetailURL))
			md.PlainText("")
		}
		md.HorizontalRule()
	}

	if r.Skipped > 0 {
		md.PlainText(strconv.Itoa(r.Skipped) + " artworks could not be fetched.")
	}
	return md.Build()
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
