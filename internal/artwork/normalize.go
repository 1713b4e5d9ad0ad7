// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artwork turns raw collection records into normalized Artworks and
// decides whether an Artwork satisfies a set of search criteria.
package artwork

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// RawRecord is an object record as decoded from the API, keyed by field name.
type RawRecord map[string]any

// Object endpoint field names.
const (
	fieldObjectID    = "objectID"
	fieldTitle       = "title"
	fieldArtist      = "artistDisplayName"
	fieldDate        = "objectDate"
	fieldMedium      = "medium"
	fieldNationality = "artistNationality"
	fieldImage       = "primaryImageSmall"
	fieldURL         = "objectURL"
	fieldObjectName  = "objectName"
)

// Normalize maps raw into an Artwork. Fields that are absent, null, or not
// strings take their documented default; present strings are kept verbatim.
// Normalize never fails.
func Normalize(raw RawRecord) types.Artwork {
	a := types.Artwork{
		ObjectID:    intField(raw, fieldObjectID),
		Title:       stringField(raw, fieldTitle, types.DefaultTitle),
		Artist:      stringField(raw, fieldArtist, types.DefaultArtist),
		DateText:    stringField(raw, fieldDate, types.DefaultDateText),
		Medium:      stringField(raw, fieldMedium, types.DefaultMedium),
		Nationality: stringField(raw, fieldNationality, types.DefaultNationality),
		ObjectName:  stringField(raw, fieldObjectName, ""),
		ImageURL:    stringField(raw, fieldImage, ""),
		DetailURL:   stringField(raw, fieldURL, ""),
	}
	a.Year = ParseYear(a.DateText)
	return a
}

// ParseYear reads a year from the first four characters of dateText.
// Surrounding whitespace in that prefix is ignored. It returns nil when the
// text is shorter than four characters or the prefix is not an integer.
func ParseYear(dateText string) *int {
	runes := []rune(dateText)
	if len(runes) < 4 {
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(string(runes[:4])))
	if err != nil {
		return nil
	}
	return &year
}

func stringField(raw RawRecord, key, def string) string {
	s, ok := raw[key].(string)
	if !ok {
		return def
	}
	return s
}

// intField accepts the number shapes encoding/json produces. Anything else,
// including fractional numbers, yields 0.
func intField(raw RawRecord, key string) int {
	switch v := raw[key].(type) {
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	case int:
		return v
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil {
			return n
		}
	}
	return 0
}
