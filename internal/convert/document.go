// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deck2md/pkg/types"
)

// DocumentOptions controls optional parts of the rendered document.
type DocumentOptions struct {
	// FrontMatter prepends a YAML block describing the source document.
	FrontMatter bool
}

// RenderDocument renders a presentation as markdown: a title derived from
// filename, a provenance line, a rule, then every slide in order.
func RenderDocument(p types.Presentation, filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := make([]string, 0, len(p.Slides)+3)
	parts = append(parts,
		"# "+Sanitize(stem)+"\n",
		"*Converted from "+Sanitize(base)+"*\n",
		"---\n",
	)
	for i, slide := range p.Slides {
		parts = append(parts, RenderSlide(slide, i+1))
	}
	return strings.Join(parts, "\n")
}

// Render renders a presentation with the given options.
func Render(p types.Presentation, filename string, opts DocumentOptions) (string, error) {
	body := RenderDocument(p, filename)
	if !opts.FrontMatter {
		return body, nil
	}

	fm, err := frontMatter(p, filename)
	if err != nil {
		return "", fmt.Errorf("rendering front matter: %w", err)
	}
	return fm + body, nil
}

type documentHeader struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author,omitempty"`
	Subject string `yaml:"subject,omitempty"`
	Source  string `yaml:"source"`
	Slides  int    `yaml:"slides"`
}

// frontMatter builds the YAML block. It carries no timestamps so repeated
// runs produce identical output.
func frontMatter(p types.Presentation, filename string) (string, error) {
	base := filepath.Base(filename)
	header := documentHeader{
		Title:   p.Metadata.Title,
		Author:  p.Metadata.Author,
		Subject: p.Metadata.Subject,
		Source:  base,
		Slides:  len(p.Slides),
	}
	if header.Title == "" {
		header.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	data, err := yaml.Marshal(header)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	return b.String(), nil
}
