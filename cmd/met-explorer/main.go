// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the met-explorer CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/met-explorer/internal/logging"
	"github.com/pdiddy/met-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const appName = "met-explorer"

// rootCmd is the base command for the met-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Search the Metropolitan Museum of Art collection",
	Long: `met-explorer searches the Met collection API by keyword, fetches the
details of the first candidates, and filters them by object type, creation
year and artist nationality.

Use "search" for a one-off query and "serve" to expose the same search as
a JSON HTTP endpoint.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./met-explorer.yaml or $XDG_CONFIG_HOME/met-explorer/met-explorer.yaml)")
	pf.String("env-file", "", "dotenv file loaded before reading the environment (default: .env if present)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")

	mustBind("log.level", pf.Lookup("log-level"))
	mustBind("log.format", pf.Lookup("log-format"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
		for _, dir := range xdg.ConfigDirs {
			viper.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultConfig())
	viper.SetEnvPrefix("MET_EXPLORER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Warning: reading config:", err)
	}
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. An empty path loads .env when it exists.
func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// newLogger builds the stderr logger from the resolved config.
func newLogger(cfg types.LogConfig) (zerolog.Logger, error) {
	return logging.New(cfg, os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
