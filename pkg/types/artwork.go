// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default values substituted for fields missing from an object record.
const (
	DefaultTitle       = "Untitled"
	DefaultArtist      = "Unknown"
	DefaultDateText    = "Unknown"
	DefaultMedium      = "Unknown"
	DefaultNationality = "Unknown"
)

// Artwork is a normalized object record from the collection API. It is
// built once per successfully fetched identifier and not modified after.
type Artwork struct {
	// ObjectID is the collection identifier the record was fetched by.
	ObjectID int `json:"object_id" yaml:"object_id"`

	// Title is the object title.
	Title string `json:"title" yaml:"title"`

	// Artist is the display name of the artist or maker.
	Artist string `json:"artist" yaml:"artist"`

	// DateText is the free-form creation date as reported (e.g. "ca. 1850").
	DateText string `json:"date" yaml:"date"`

	// Year is the year parsed from the leading characters of DateText, or
	// nil when DateText does not start with a number.
	Year *int `json:"year,omitempty" yaml:"year,omitempty"`

	// Medium describes materials and technique.
	Medium string `json:"medium" yaml:"medium"`

	// Nationality is the artist nationality.
	Nationality string `json:"nationality" yaml:"nationality"`

	// ObjectName is the generic object name used by the type filter
	// (e.g. "Painting", "Vase").
	ObjectName string `json:"object_name" yaml:"object_name"`

	// ImageURL points to the small primary image. May be empty.
	ImageURL string `json:"image_url" yaml:"image_url"`

	// DetailURL is the object page on the museum website.
	DetailURL string `json:"detail_url" yaml:"detail_url"`
}

// HasYear reports whether a creation year could be parsed.
func (a Artwork) HasYear() bool {
	return a.Year != nil
}
