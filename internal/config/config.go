// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the conversion settings once at process start.
//
// Sources, lowest precedence first: defaults, deck2md.yaml (./ or
// ~/.config/deck2md/, or an explicit --config file), a .env file in the
// working directory, DECK2MD_* environment variables, command-line flags
// bound to the viper instance.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck2md/pkg/types"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DECK2MD_OUTPUT_DIR.
	EnvPrefix = "DECK2MD"

	KeyOutputDir   = "output_dir"
	KeyFrontMatter = "front_matter"
	KeyLogLevel    = "log_level"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() types.ConversionConfig {
	return types.ConversionConfig{LogLevel: "info"}
}

// Load reads every configuration source into v and returns the resulting
// config together with the config file used, if any. cfgFile, when set,
// must exist.
func Load(v *viper.Viper, cfgFile string) (types.ConversionConfig, string, error) {
	if err := loadDotEnv(".env"); err != nil {
		return types.ConversionConfig{}, "", err
	}

	d := Defaults()
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyFrontMatter, d.FrontMatter)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("deck2md")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "deck2md"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.ConversionConfig{}, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg types.ConversionConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.ConversionConfig{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, used, nil
}

// loadDotEnv sets variables from path without overriding the environment.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
