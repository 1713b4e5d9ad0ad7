// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/met-explorer/pkg/types"
)

func sampleResult() types.SearchResult {
	year := 1889
	return types.SearchResult{
		Keyword:        "cypress",
		TotalAvailable: 120,
		CandidateCount: 50,
		Skipped:        2,
		Artworks: []types.Artwork{
			{
				ObjectID:    436535,
				Title:       "Wheat Field with Cypresses",
				Artist:      "Vincent van Gogh",
				DateText:    "1889",
				Year:        &year,
				Medium:      "Oil on canvas",
				Nationality: "Dutch",
				ObjectName:  "Painting",
				ImageURL:    "https://images.metmuseum.org/small/DT1567.jpg",
				DetailURL:   "https://www.metmuseum.org/art/collection/search/436535",
			},
			{
				ObjectID:    2,
				Title:       strings.Repeat("Very Long Title ", 5),
				Artist:      "Unknown",
				DateText:    "Unknown",
				Medium:      "Unknown",
				Nationality: "Unknown",
				ImageURL:    "https://images.example/2.jpg",
			},
		},
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Found 120 artworks. Showing first 50 results.", Summary(sampleResult()))
	assert.Equal(t, "No artworks found for this keyword.", Summary(types.SearchResult{}))
	assert.Contains(t, Summary(types.SearchResult{TotalAvailable: 3, CandidateCount: 3}), "None of the first 3")
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResult(), &buf)
	out := buf.String()

	assert.Contains(t, out, "Found 120 artworks. Showing first 50 results.")
	assert.Contains(t, out, "Wheat Field with Cypresses")
	assert.Contains(t, out, "https://www.metmuseum.org/art/collection/search/436535")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "2 artworks shown (2 could not be fetched)")
	assert.Less(t, strings.Index(out, "Wheat Field"), strings.Index(out, "Very Long Title"))
}

func TestFormatTableEmptyStates(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.SearchResult{}, &buf)
	assert.Equal(t, "No artworks found for this keyword.\n", buf.String())

	buf.Reset()
	FormatTable(types.SearchResult{TotalAvailable: 4, CandidateCount: 4, Artworks: []types.Artwork{}}, &buf)
	assert.Contains(t, buf.String(), "matched the selected filters")
	assert.NotContains(t, buf.String(), "Title")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResult(), &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "found", got["outcome"])
	assert.Equal(t, 120.0, got["total_available"])
	assert.Equal(t, 50.0, got["candidate_count"])

	arts := got["artworks"].([]any)
	require.Len(t, arts, 2)
	first := arts[0].(map[string]any)
	assert.Equal(t, 1889.0, first["year"])
	_, hasYear := arts[1].(map[string]any)["year"]
	assert.False(t, hasYear, "missing year is omitted")
}

func TestFormatJSONEmptyArtworksIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(types.SearchResult{Artworks: []types.Artwork{}}, &buf))
	assert.Contains(t, buf.String(), `"artworks": []`)
	assert.Contains(t, buf.String(), `"outcome": "no_results"`)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResult(), &buf))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "found", got["outcome"])
	assert.Equal(t, "cypress", got["keyword"])
	assert.Equal(t, 120, got["total_available"])
	assert.Len(t, got["artworks"], 2)
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatMarkdown(sampleResult(), &buf))
	out := buf.String()

	assert.Contains(t, out, "# Artworks for \"cypress\"")
	assert.Contains(t, out, "## Wheat Field with Cypresses")
	assert.Contains(t, out, "https://images.metmuseum.org/small/DT1567.jpg")
	assert.Contains(t, out, "[View on MET Museum](https://www.metmuseum.org/art/collection/search/436535)")
	assert.Contains(t, out, "Vincent van Gogh")
	assert.Contains(t, out, "2 artworks could not be fetched.")
}

func TestFormatMarkdownEmptyStates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatMarkdown(types.SearchResult{Keyword: "zzz"}, &buf))
	assert.Contains(t, buf.String(), "No artworks found for this keyword.")

	buf.Reset()
	require.NoError(t, FormatMarkdown(types.SearchResult{Keyword: "zzz", TotalAvailable: 1, CandidateCount: 1}, &buf))
	assert.Contains(t, buf.String(), "matched the selected filters")
}
