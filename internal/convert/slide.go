// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deck2md/pkg/types"
)

// slideContent is a slide's shapes sorted into the three rendered groups.
type slideContent struct {
	sections []types.ContentSection
	tables   []types.TableGrid
	visuals  []string
}

// classify sorts shapes by variant. The first text shape repeating the
// title is dropped so the title is not rendered twice.
func classify(slide types.Slide, title string) slideContent {
	var c slideContent
	titleShapeFound := false

	for _, shape := range slide.Shapes {
		switch s := shape.(type) {
		case types.DecorativeShape:
			c.visuals = append(c.visuals, DescribeShape(s))

		case types.TableShape:
			if grid := ExtractTable(s); !grid.IsEmpty() {
				c.tables = append(c.tables, grid)
			}

		case types.TextShape:
			if !titleShapeFound && isTitleShape(s, title) {
				titleShapeFound = true
				continue
			}
			if paras := ExtractParagraphs(s); len(paras) > 0 {
				c.sections = append(c.sections, BuildSection(paras))
			}
		}
	}
	return c
}

// RenderSlide renders one slide: the numbered title heading, content
// sections, data tables, then the deduplicated visual elements.
func RenderSlide(slide types.Slide, number int) string {
	title := ResolveTitle(slide)
	content := classify(slide, title)

	lines := []string{fmt.Sprintf("\n# Slide %d - %s\n", number, inlineText(title))}

	for _, section := range content.sections {
		if section.Title != "" {
			lines = append(lines, "\n## "+inlineText(section.Title))
		}
		if len(section.Body) > 0 {
			lines = append(lines, RenderParagraphs(section.Body))
		}
		lines = append(lines, "")
	}

	for _, grid := range content.tables {
		lines = append(lines, "\n## Data Table\n", RenderTable(grid), "")
	}

	if visuals := dedupe(content.visuals); len(visuals) > 0 {
		lines = append(lines, "\n## Visual Elements\n")
		for _, desc := range visuals {
			lines = append(lines, "- "+Sanitize(desc))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// dedupe drops repeated strings, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
