// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		in      string
		want    ObjectType
		wantErr bool
	}{
		{"", TypeAll, false},
		{"all", TypeAll, false},
		{"PAINTING", TypePainting, false},
		{" sculpture ", TypeSculpture, false},
		{"Drawing", TypeDrawing, false},
		{"print", TypePrint, false},
		{"vase", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseObjectType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSearchCriteria(t *testing.T) {
	c, err := NewSearchCriteria("  flower  ", "", " French ", 1800, 2000)
	require.NoError(t, err)
	assert.Equal(t, "flower", c.Keyword)
	assert.Equal(t, TypeAll, c.Type)
	assert.Equal(t, "French", c.Nationality)

	_, err = NewSearchCriteria("   ", TypeAll, "", 1800, 2000)
	assert.ErrorIs(t, err, ErrEmptyKeyword)

	_, err = NewSearchCriteria("flower", TypeAll, "", 2000, 1800)
	assert.ErrorContains(t, err, "invalid year range")

	_, err = NewSearchCriteria("flower", ObjectType("Vase"), "", 1800, 2000)
	assert.ErrorContains(t, err, "unknown object type")

	_, err = NewSearchCriteria("flower", TypePrint, "", 1900, 1900)
	assert.NoError(t, err)
}

func TestSearchResultOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   Outcome
	}{
		{"zero total", SearchResult{}, OutcomeNoResults},
		{"total without ids", SearchResult{TotalAvailable: 3}, OutcomeNoResults},
		{"all filtered", SearchResult{TotalAvailable: 3, CandidateCount: 3}, OutcomeNoMatches},
		{"found", SearchResult{TotalAvailable: 3, CandidateCount: 3, Artworks: []Artwork{{ObjectID: 1}}}, OutcomeFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Outcome())
		})
	}
}
