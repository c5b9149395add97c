// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/deck2md/pkg/types"
)

const (
	// maxSectionTitleLen bounds a paragraph promoted to a section heading.
	maxSectionTitleLen = 50
	// maxSubheadingLen bounds a non-bullet body paragraph rendered as a heading.
	maxSubheadingLen = 80
)

// Sanitize escapes backslashes. Other markdown syntax passes through.
func Sanitize(text string) string {
	return strings.ReplaceAll(text, `\`, `\\`)
}

// lineBreaks folds breaks that would split a markdown line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\v", " ")

// inlineText sanitizes text that must stay on one markdown line.
func inlineText(text string) string {
	return Sanitize(lineBreaks.Replace(text))
}

// SanitizeCell escapes text for a table cell: backslashes, then pipes.
func SanitizeCell(text string) string {
	return strings.ReplaceAll(Sanitize(text), "|", `\|`)
}

// BuildSection promotes the first non-bullet paragraph shorter than 50
// characters to the section title; the remaining paragraphs form the body.
func BuildSection(paras []types.Paragraph) types.ContentSection {
	for i, p := range paras {
		if p.Bullet || utf8.RuneCountInString(p.Text) >= maxSectionTitleLen {
			continue
		}
		body := make([]types.Paragraph, 0, len(paras)-1)
		body = append(body, paras[:i]...)
		body = append(body, paras[i+1:]...)
		return types.ContentSection{Title: p.Text, Body: body}
	}
	return types.ContentSection{Body: paras}
}

// RenderParagraphs renders body paragraphs one per line. Short non-bullet
// paragraphs become level-3 headings, bullets are indented two spaces per
// level, anything else is plain text.
func RenderParagraphs(paras []types.Paragraph) string {
	lines := make([]string, 0, len(paras))
	for _, p := range paras {
		text := inlineText(p.Text)
		if text == "" {
			continue
		}
		switch {
		case !p.Bullet && utf8.RuneCountInString(text) < maxSubheadingLen:
			lines = append(lines, "### "+text)
		case p.Bullet:
			lines = append(lines, strings.Repeat("  ", p.Level)+"* "+text)
		default:
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderTable renders a grid as a GitHub-style markdown table using the first
// row as the header. An empty grid renders as "".
func RenderTable(grid types.TableGrid) string {
	if grid.IsEmpty() {
		return ""
	}

	lines := make([]string, 0, len(grid)+1)
	lines = append(lines, tableRow(grid[0]))
	lines = append(lines, "|"+strings.Repeat("---|", len(grid[0])))
	for _, row := range grid[1:] {
		lines = append(lines, tableRow(row))
	}
	return strings.Join(lines, "\n")
}

func tableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = SanitizeCell(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

var visualLabels = map[types.VisualKind]string{
	types.VisualPicture:          "Image",
	types.VisualChart:            "Chart",
	types.VisualGroup:            "Grouped content",
	types.VisualLine:             "Line",
	types.VisualOval:             "Oval/Circle",
	types.VisualRectangle:        "Rectangle/Box",
	types.VisualRoundedRectangle: "Rounded rectangle",
	types.VisualAutoShape:        "Shape",
}

// DescribeShape returns a one-line label for a decorative shape, suffixed
// with the shape's name when it has one.
func DescribeShape(shape types.DecorativeShape) string {
	desc, ok := visualLabels[shape.Visual]
	if !ok {
		desc = fmt.Sprintf("Shape type %s", shape.RawType)
	}
	if shape.Name != "" {
		desc += " (" + shape.Name + ")"
	}
	return desc
}
