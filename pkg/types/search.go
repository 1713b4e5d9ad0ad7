// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the met-explorer pipeline:
// the search criteria a caller supplies, the normalized Artwork records the
// pipeline produces, and the aggregate SearchResult handed to renderers.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ObjectType selects the object-name filter applied to fetched artworks.
type ObjectType string

const (
	TypeAll       ObjectType = "All"
	TypePainting  ObjectType = "Painting"
	TypeSculpture ObjectType = "Sculpture"
	TypeDrawing   ObjectType = "Drawing"
	TypePrint     ObjectType = "Print"
)

// ObjectTypes lists the recognized type filters in display order.
var ObjectTypes = []ObjectType{TypeAll, TypePainting, TypeSculpture, TypeDrawing, TypePrint}

// ErrEmptyKeyword is returned when a search is attempted without a keyword.
var ErrEmptyKeyword = errors.New("keyword is empty")

// ParseObjectType resolves s case-insensitively to an ObjectType. The empty
// string maps to TypeAll.
func ParseObjectType(s string) (ObjectType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeAll, nil
	}
	for _, t := range ObjectTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown object type %q (want one of %s)", s, joinTypes())
}

func joinTypes() string {
	names := make([]string, len(ObjectTypes))
	for i, t := range ObjectTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// SearchCriteria is the immutable filter set for one search. It is built
// once per invocation and passed by value through the pipeline.
type SearchCriteria struct {
	// Keyword is the trimmed, non-empty search term sent to the API.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Type restricts results to an object name; TypeAll disables the filter.
	Type ObjectType `json:"type" yaml:"type"`

	// Nationality is a case-insensitive substring matched against the
	// artist nationality. Empty disables the filter.
	Nationality string `json:"nationality,omitempty" yaml:"nationality,omitempty"`

	// YearMin and YearMax bound the parsed creation year, inclusive.
	YearMin int `json:"year_min" yaml:"year_min"`
	YearMax int `json:"year_max" yaml:"year_max"`
}

// NewSearchCriteria trims the keyword and validates the remaining fields.
func NewSearchCriteria(keyword string, objectType ObjectType, nationality string, yearMin, yearMax int) (SearchCriteria, error) {
	c := SearchCriteria{
		Keyword:     strings.TrimSpace(keyword),
		Type:        objectType,
		Nationality: strings.TrimSpace(nationality),
		YearMin:     yearMin,
		YearMax:     yearMax,
	}
	if c.Type == "" {
		c.Type = TypeAll
	}
	if err := c.Validate(); err != nil {
		return SearchCriteria{}, err
	}
	return c, nil
}

// Validate reports whether the criteria can be used for a search.
func (c SearchCriteria) Validate() error {
	if strings.TrimSpace(c.Keyword) == "" {
		return ErrEmptyKeyword
	}
	if _, err := ParseObjectType(string(c.Type)); err != nil {
		return err
	}
	if c.YearMin > c.YearMax {
		return fmt.Errorf("invalid year range: %d > %d", c.YearMin, c.YearMax)
	}
	return nil
}

// Outcome is the terminal state of a completed search.
type Outcome string

const (
	// OutcomeFound means at least one artwork survived filtering.
	OutcomeFound Outcome = "found"

	// OutcomeNoResults means the API reported no matches for the keyword.
	OutcomeNoResults Outcome = "no_results"

	// OutcomeNoMatches means candidates were fetched but none passed the filters.
	OutcomeNoMatches Outcome = "no_matches"
)

// SearchResult is the aggregate produced by one search run.
type SearchResult struct {
	// Keyword echoes the search term that produced the result.
	Keyword string `json:"keyword" yaml:"keyword"`

	// TotalAvailable is the server-reported match count before capping.
	TotalAvailable int `json:"total_available" yaml:"total_available"`

	// CandidateCount is the number of identifiers processed after the cap.
	CandidateCount int `json:"candidate_count" yaml:"candidate_count"`

	// Skipped counts candidates whose detail fetch failed.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Artworks holds the surviving records in candidate order.
	Artworks []Artwork `json:"artworks" yaml:"artworks"`
}

// Outcome derives the terminal state from the counts.
func (r SearchResult) Outcome() Outcome {
	switch {
	case r.TotalAvailable == 0 || r.CandidateCount == 0:
		return OutcomeNoResults
	case len(r.Artworks) == 0:
		return OutcomeNoMatches
	default:
		return OutcomeFound
	}
}
