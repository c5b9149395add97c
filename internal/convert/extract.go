// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"

	"github.com/pdiddy/deck2md/pkg/types"
)

// ExtractParagraphs returns the shape's non-blank paragraphs in order, with
// their text trimmed.
func ExtractParagraphs(shape types.TextShape) []types.Paragraph {
	paras := make([]types.Paragraph, 0, len(shape.Paragraphs))
	for _, p := range shape.Paragraphs {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		p.Text = text
		paras = append(paras, p)
	}
	return paras
}

// ExtractTable returns the table's cells with their text trimmed. A table
// without rows or with an empty first row yields an empty grid.
func ExtractTable(shape types.TableShape) types.TableGrid {
	if shape.Grid.IsEmpty() {
		return nil
	}
	grid := make(types.TableGrid, len(shape.Grid))
	for i, row := range shape.Grid {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		grid[i] = cells
	}
	return grid
}
