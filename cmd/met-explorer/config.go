// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// envKeyReplacer maps nested keys to environment names, so
// search.candidate_cap is read from MET_EXPLORER_SEARCH_CANDIDATE_CAP.
var envKeyReplacer = strings.NewReplacer(".", "_")

// setDefaults registers every config key with v. Viper only consults the
// environment for keys it knows about, so each one needs a default.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("collection.base_url", d.Collection.BaseURL)
	v.SetDefault("collection.timeout", d.Collection.Timeout)
	v.SetDefault("collection.user_agent", d.Collection.UserAgent)
	v.SetDefault("collection.requests_per_second", d.Collection.RequestsPerSecond)
	v.SetDefault("collection.has_images_only", d.Collection.HasImagesOnly)

	v.SetDefault("search.candidate_cap", d.Search.CandidateCap)
	v.SetDefault("search.concurrency", d.Search.Concurrency)

	v.SetDefault("defaults.keyword", d.Defaults.Keyword)
	v.SetDefault("defaults.type", d.Defaults.Type)
	v.SetDefault("defaults.nationality", d.Defaults.Nationality)
	v.SetDefault("defaults.year_min", d.Defaults.YearMin)
	v.SetDefault("defaults.year_max", d.Defaults.YearMax)
	v.SetDefault("defaults.year_lower_bound", d.Defaults.YearLowerBound)
	v.SetDefault("defaults.year_upper_bound", d.Defaults.YearUpperBound)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("server.addr", d.Server.Addr)
}

// loadConfig resolves the effective configuration from v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Search.CandidateCap < 1 {
		return types.Config{}, fmt.Errorf("search.candidate_cap must be >= 1, got %d", cfg.Search.CandidateCap)
	}
	if cfg.Search.Concurrency < 1 {
		return types.Config{}, fmt.Errorf("search.concurrency must be >= 1, got %d", cfg.Search.Concurrency)
	}
	if cfg.Collection.RequestsPerSecond < 0 {
		return types.Config{}, fmt.Errorf("collection.requests_per_second must be >= 0, got %g", cfg.Collection.RequestsPerSecond)
	}
	return cfg, nil
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}
