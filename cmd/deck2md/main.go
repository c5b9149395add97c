// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deck2md CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck2md/internal/config"
	"github.com/pdiddy/deck2md/internal/logger"
	"github.com/pdiddy/deck2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errIncomplete signals that some input failed to convert; the details have
// already been reported.
var errIncomplete = errors.New("conversion incomplete")

// app carries the state shared by subcommands. cfg is set once by loadConfig
// before a command that converts runs, and not modified afterwards.
type app struct {
	v      *viper.Viper
	cfg    types.ConversionConfig
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd builds the command tree writing to the given streams.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		log:    logger.New(stderr, "info"),
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "deck2md",
		Short: "Convert PowerPoint presentations to Markdown",
		Long: `deck2md converts .pptx presentations into Markdown documents. Each slide
becomes a level 1 heading with its title, followed by the slide's text grouped
into sections, its tables, and a list of its visual elements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deck2md.yaml or ~/.config/deck2md/deck2md.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic level: debug, info, warn, error")
	a.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newConvertCmd(a), newVersionCmd(a))
	return rootCmd
}

// loadConfig reads configuration for commands that need it. Commands such as
// version run without it, so a broken config file or .env cannot stop them.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, used, err := config.Load(a.v, cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(a.stderr, cfg.LogLevel)
	if used != "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errIncomplete) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
