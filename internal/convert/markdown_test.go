// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/deck2md/pkg/types"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, `C:\\temp\\file`, Sanitize(`C:\temp\file`))
	assert.Equal(t, "*bold* _x_ # | <b>", Sanitize("*bold* _x_ # | <b>"), "only backslashes are escaped")
	assert.Equal(t, `a\\\|b`, SanitizeCell(`a\|b`))
	assert.Equal(t, `C\|D`, SanitizeCell("C|D"))
}

func TestRenderTable(t *testing.T) {
	got := RenderTable(types.TableGrid{{"A", "B"}, {"C|D", "E"}})

	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{
		"| A | B |",
		"|---|---|",
		`| C\|D | E |`,
	}, lines)
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil))
	assert.Empty(t, RenderTable(types.TableGrid{{}}))
}

func TestBuildSection(t *testing.T) {
	long := strings.Repeat("w", 50)

	tests := []struct {
		name      string
		paras     []types.Paragraph
		wantTitle string
		wantBody  []types.Paragraph
	}{
		{
			name: "first short non-bullet becomes title",
			paras: []types.Paragraph{
				{Text: "item", Bullet: true},
				{Text: "Highlights"},
				{Text: "More"},
			},
			wantTitle: "Highlights",
			wantBody: []types.Paragraph{
				{Text: "item", Bullet: true},
				{Text: "More"},
			},
		},
		{
			name:     "bullets only",
			paras:    []types.Paragraph{{Text: "a", Bullet: true}, {Text: "b", Bullet: true}},
			wantBody: []types.Paragraph{{Text: "a", Bullet: true}, {Text: "b", Bullet: true}},
		},
		{
			name:     "50 characters is too long for a title",
			paras:    []types.Paragraph{{Text: long}},
			wantBody: []types.Paragraph{{Text: long}},
		},
		{
			name:      "single short paragraph leaves empty body",
			paras:     []types.Paragraph{{Text: "Only"}},
			wantTitle: "Only",
			wantBody:  []types.Paragraph{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSection(tt.paras)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestRenderParagraphs(t *testing.T) {
	long := strings.Repeat("long text ", 10)

	got := RenderParagraphs([]types.Paragraph{
		{Text: "Short line"},
		{Text: "Top bullet", Bullet: true},
		{Text: "Nested bullet", Level: 2, Bullet: true},
		{Text: long},
		{Text: `path\to`},
		{Text: ""},
	})

	assert.Equal(t, strings.Join([]string{
		"### Short line",
		"* Top bullet",
		"    * Nested bullet",
		long,
		`### path\\to`,
	}, "\n"), got)
}

func TestDescribeShape(t *testing.T) {
	tests := []struct {
		shape types.DecorativeShape
		want  string
	}{
		{types.DecorativeShape{Visual: types.VisualPicture, Name: "Picture 3"}, "Image (Picture 3)"},
		{types.DecorativeShape{Visual: types.VisualChart}, "Chart"},
		{types.DecorativeShape{Visual: types.VisualGroup, Name: "Group 1"}, "Grouped content (Group 1)"},
		{types.DecorativeShape{Visual: types.VisualLine}, "Line"},
		{types.DecorativeShape{Visual: types.VisualOval}, "Oval/Circle"},
		{types.DecorativeShape{Visual: types.VisualRectangle}, "Rectangle/Box"},
		{types.DecorativeShape{Visual: types.VisualRoundedRectangle}, "Rounded rectangle"},
		{types.DecorativeShape{Visual: types.VisualAutoShape, RawType: "star5"}, "Shape"},
		{types.DecorativeShape{RawType: "diagram", Name: "SmartArt 2"}, "Shape type diagram (SmartArt 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeShape(tt.shape))
		})
	}
}
