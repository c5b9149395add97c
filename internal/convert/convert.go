// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns parsed presentations into markdown and drives batch
// conversion of files on disk.
//
// Per slide the pipeline is: title resolution, shape classification into
// content sections, tables and visual elements, then markdown rendering.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/deck2md/internal/logger"
	"github.com/pdiddy/deck2md/internal/pptx"
	"github.com/pdiddy/deck2md/pkg/types"
)

// Converter transforms a document file into markdown text.
type Converter interface {
	// Convert reads the document at path and returns the markdown content.
	Convert(path string) (string, error)
}

// PPTXConverter converts PowerPoint files with the pptx reader.
type PPTXConverter struct {
	opts DocumentOptions
}

// NewPPTXConverter creates a converter honouring the config's rendering options.
func NewPPTXConverter(cfg types.ConversionConfig) *PPTXConverter {
	return &PPTXConverter{opts: DocumentOptions{FrontMatter: cfg.FrontMatter}}
}

// Convert opens and parses the presentation at path and renders it.
func (c *PPTXConverter) Convert(path string) (string, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading presentation: %w", err)
	}
	defer r.Close()

	return Render(r.Presentation(), path, c.opts)
}

// OutputPath returns where the markdown for src is written: <stem>.md in
// outputDir, or next to src when outputDir is empty.
func OutputPath(src, outputDir string) string {
	base := filepath.Base(src)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
	if outputDir == "" {
		outputDir = filepath.Dir(src)
	}
	return filepath.Join(outputDir, name)
}

// ConvertFile converts one file and writes its markdown, overwriting any
// previous output. Failures are logged and reported through the status.
func ConvertFile(c Converter, path string, cfg types.ConversionConfig, w io.Writer, log *logger.Logger) types.ConversionStatus {
	name := filepath.Base(path)
	fmt.Fprintf(w, "Processing: %s\n", name)

	mdPath := OutputPath(path, cfg.OutputDir)
	if err := os.MkdirAll(filepath.Dir(mdPath), 0o755); err != nil {
		log.ConversionFailed(name, fmt.Errorf("creating output directory: %w", err))
		return types.ConversionFailed
	}

	md, err := c.Convert(path)
	if err != nil {
		log.ConversionFailed(name, err)
		return types.ConversionFailed
	}

	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		log.ConversionFailed(name, fmt.Errorf("writing %s: %w", mdPath, err))
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "  -> Created: %s\n", filepath.Base(mdPath))
	return types.ConversionDone
}

// ConvertBatch converts every path in order. A failure never stops the
// batch; the result tallies successes and failures.
func ConvertBatch(c Converter, paths []string, cfg types.ConversionConfig, w io.Writer, log *logger.Logger) types.BatchResult {
	var result types.BatchResult
	for _, p := range paths {
		switch ConvertFile(c, p, cfg, w, log) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	return result
}

// SummaryLine formats the end-of-batch summary.
func SummaryLine(result types.BatchResult) string {
	return fmt.Sprintf("Completed: %d/%d files converted", result.Converted, result.Total())
}
