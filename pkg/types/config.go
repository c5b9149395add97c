// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionConfig holds settings for a conversion run. It is loaded once at
// process start and passed by value.
type ConversionConfig struct {
	// OutputDir is where markdown files are written. Empty means next to each
	// source file. Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// FrontMatter prepends a YAML front matter block to each document.
	FrontMatter bool `json:"front_matter" yaml:"front_matter" mapstructure:"front_matter"`

	// LogLevel is the minimum diagnostic level: debug, info, warn or error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
