// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artwork

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// Reason names the sub-predicate that rejected an artwork.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonNoImage     Reason = "no_image"
	ReasonType        Reason = "type"
	ReasonYear        Reason = "year"
	ReasonNationality Reason = "nationality"
)

// Matches reports whether a passes every filter in c.
func Matches(a types.Artwork, c types.SearchCriteria) bool {
	return Reject(a, c) == ReasonNone
}

// Reject evaluates the filters in order (image, type, year, nationality)
// and returns the first one that fails, or ReasonNone.
//
// The type filter compares against ObjectName, not Medium. An artwork
// without a parsable year is never rejected by the year filter.
func Reject(a types.Artwork, c types.SearchCriteria) Reason {
	if strings.TrimSpace(a.ImageURL) == "" {
		return ReasonNoImage
	}
	if c.Type != "" && c.Type != types.TypeAll && fold(a.ObjectName) != fold(string(c.Type)) {
		return ReasonType
	}
	if a.Year != nil && (*a.Year < c.YearMin || *a.Year > c.YearMax) {
		return ReasonYear
	}
	if c.Nationality != "" && !strings.Contains(fold(a.Nationality), fold(c.Nationality)) {
		return ReasonNationality
	}
	return ReasonNone
}

// fold builds a fresh Caser per call; Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
