// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultBaseURL is the root of the Met collection API.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// DefaultCandidateCap bounds the identifiers processed per search.
const DefaultCandidateCap = 50

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "met-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// CollectionConfig holds settings for the collection API client.
type CollectionConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root; search and object endpoints hang off it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// HasImagesOnly asks the search endpoint to return only objects with images.
	HasImagesOnly bool `json:"has_images_only" yaml:"has_images_only" mapstructure:"has_images_only"`
}

// SearchConfig holds settings for the search orchestrator.
type SearchConfig struct {
	// CandidateCap is the maximum number of identifiers fetched per search (default 50).
	CandidateCap int `json:"candidate_cap" yaml:"candidate_cap" mapstructure:"candidate_cap"`

	// Concurrency is the number of detail fetches in flight (default 1).
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// DefaultsConfig holds the criteria used when the caller supplies none,
// and the bounds accepted for the year range.
type DefaultsConfig struct {
	Keyword     string `json:"keyword" yaml:"keyword" mapstructure:"keyword"`
	Type        string `json:"type" yaml:"type" mapstructure:"type"`
	Nationality string `json:"nationality" yaml:"nationality" mapstructure:"nationality"`
	YearMin     int    `json:"year_min" yaml:"year_min" mapstructure:"year_min"`
	YearMax     int    `json:"year_max" yaml:"year_max" mapstructure:"year_max"`

	// YearLowerBound and YearUpperBound limit the years a user may enter.
	YearLowerBound int `json:"year_lower_bound" yaml:"year_lower_bound" mapstructure:"year_lower_bound"`
	YearUpperBound int `json:"year_upper_bound" yaml:"year_upper_bound" mapstructure:"year_upper_bound"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ServerConfig holds settings for the HTTP presentation server.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// Config groups all settings for the explorer.
type Config struct {
	Collection CollectionConfig `json:"collection" yaml:"collection" mapstructure:"collection"`
	Search     SearchConfig     `json:"search" yaml:"search" mapstructure:"search"`
	Defaults   DefaultsConfig   `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
}

// DefaultConfig returns the settings used when no config file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Collection: CollectionConfig{
			HTTPConfig: HTTPConfig{
				Timeout:           30 * time.Second,
				UserAgent:         "met-explorer/0.1",
				RequestsPerSecond: 80,
			},
			BaseURL: DefaultBaseURL,
		},
		Search: SearchConfig{
			CandidateCap: DefaultCandidateCap,
			Concurrency:  1,
		},
		Defaults: DefaultsConfig{
			Keyword:        "flower",
			Type:           string(TypeAll),
			YearMin:        1800,
			YearMax:        2000,
			YearLowerBound: 1000,
			YearUpperBound: 2025,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
