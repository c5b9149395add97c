// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the reader, the converter and
// the CLI. Values are built fresh per conversion run and never mutated after
// creation.
package types

import "strings"

// Presentation is an ordered sequence of slides parsed from one document.
type Presentation struct {
	Slides   []Slide  `json:"slides" yaml:"slides"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata holds the document properties found in docProps/core.xml.
type Metadata struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// Slide holds its shapes in document order. Slide numbers are not stored;
// they follow from the position in Presentation.Slides (1-based).
type Slide struct {
	Shapes []Shape `json:"shapes" yaml:"shapes"`
}

// Shape is one of TextShape, TableShape or DecorativeShape. The set is
// closed: every shape on a slide is exactly one of the three.
type Shape interface {
	// ShapeName returns the name declared on the shape (cNvPr), possibly empty.
	ShapeName() string
	sealed()
}

// PlaceholderType is the semantic role of a placeholder shape. The empty
// value means the shape is not a placeholder.
type PlaceholderType string

const (
	PlaceholderNone   PlaceholderType = ""
	PlaceholderTitle  PlaceholderType = "title"
	PlaceholderHeader PlaceholderType = "header"
	PlaceholderBody   PlaceholderType = "body"
)

// IsTitleLike reports whether the placeholder names the slide, i.e. it is a
// Title or Header placeholder.
func (p PlaceholderType) IsTitleLike() bool {
	return p == PlaceholderTitle || p == PlaceholderHeader
}

// TextShape is a shape carrying displayable text.
type TextShape struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Placeholder PlaceholderType `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Paragraphs holds every paragraph of the text body, empty ones included,
	// so Text reproduces the body exactly.
	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`
}

func (s TextShape) ShapeName() string { return s.Name }
func (TextShape) sealed() {}

// Text returns the paragraph texts joined by newlines.
func (s TextShape) Text() string {
	parts := make([]string, len(s.Paragraphs))
	for i, p := range s.Paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// TableShape is a graphic frame holding a table.
type TableShape struct {
	Name string    `json:"name,omitempty" yaml:"name,omitempty"`
	Grid TableGrid `json:"grid" yaml:"grid"`
}

func (s TableShape) ShapeName() string { return s.Name }
func (TableShape) sealed() {}

// VisualKind identifies what a decorative shape depicts.
type VisualKind int

const (
	VisualOther VisualKind = iota
	VisualPicture
	VisualChart
	VisualGroup
	VisualLine
	VisualOval
	VisualRectangle
	VisualRoundedRectangle
	VisualAutoShape
)

// DecorativeShape is a shape with no extractable text and no table.
type DecorativeShape struct {
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Visual VisualKind `json:"visual" yaml:"visual"`

	// RawType is the source identifier of the shape kind (element name,
	// preset geometry or graphic data URI suffix). Used for VisualOther.
	RawType string `json:"raw_type,omitempty" yaml:"raw_type,omitempty"`
}

func (s DecorativeShape) ShapeName() string { return s.Name }
func (DecorativeShape) sealed() {}

// Paragraph is one paragraph of a text body.
type Paragraph struct {
	Text string `json:"text" yaml:"text"`

	// Level is the nesting depth, 0 for top level.
	Level int `json:"level" yaml:"level"`

	// Bullet is true when the paragraph properties declare a character
	// bullet, automatic numbering or an image bullet. Paragraphs without
	// properties are not bullets.
	Bullet bool `json:"bullet" yaml:"bullet"`

	// FontSize is the size in points of the first run, when declared.
	FontSize *float64 `json:"font_size,omitempty" yaml:"font_size,omitempty"`
}

// TableGrid is a table as rows of cell strings. Row 0 is the header.
type TableGrid [][]string

// IsEmpty reports whether the grid has no rows or an empty header row.
func (g TableGrid) IsEmpty() bool {
	return len(g) == 0 || len(g[0]) == 0
}

// ContentSection groups one text shape's paragraphs under an optional
// inferred heading.
type ContentSection struct {
	Title string      `json:"title,omitempty" yaml:"title,omitempty"`
	Body  []Paragraph `json:"body" yaml:"body"`
}
