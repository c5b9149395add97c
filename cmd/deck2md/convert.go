// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deck2md/internal/config"
	"github.com/pdiddy/deck2md/internal/convert"
	"github.com/pdiddy/deck2md/internal/styles"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <path>...",
		Short: "Convert PPTX files to Markdown",
		Long: `Convert processes each path: a directory contributes all *.pptx and *.PPTX
files directly inside it, a file must have a .pptx extension. Each
presentation is written as <name>.md next to its source, or into --output.

The command fails when no presentations are found or any of them fails to
convert; the remaining files are still processed.`,
		Example: `  deck2md convert ./reports/
  deck2md convert report1.pptx report2.pptx -o notes/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(args)
		},
	}

	cmd.PreRunE = a.loadConfig

	cmd.Flags().StringP("output", "o", "", "output directory (default: same as each input file)")
	cmd.Flags().Bool("front-matter", false, "prepend YAML front matter with document metadata")
	a.v.BindPFlag(config.KeyOutputDir, cmd.Flags().Lookup("output"))
	a.v.BindPFlag(config.KeyFrontMatter, cmd.Flags().Lookup("front-matter"))

	return cmd
}

func (a *app) runConvert(paths []string) error {
	files := convert.Discover(paths, a.log)
	if len(files) == 0 {
		fmt.Fprintln(a.stderr, styles.ErrorStyle.Render("No PPTX files found to process."))
		return errIncomplete
	}

	if a.cfg.OutputDir != "" {
		if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	fmt.Fprintf(a.stdout, "Found %d PPTX file(s)\n", len(files))
	if a.cfg.OutputDir != "" {
		fmt.Fprintln(a.stdout, styles.DimStyle.Render("Output directory: "+a.cfg.OutputDir))
	}
	fmt.Fprintln(a.stdout)

	result := convert.ConvertBatch(convert.NewPPTXConverter(a.cfg), files, a.cfg, a.stdout, a.log)

	summary := convert.SummaryLine(result)
	fmt.Fprintf(a.stdout, "\n%s\n", styles.Summary(result.Converted, result.Total(), summary))

	if !result.OK() {
		return errIncomplete
	}
	return nil
}
