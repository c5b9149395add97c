// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deck2md/internal/pptx"
	"github.com/pdiddy/deck2md/internal/pptx/pptxtest"
	"github.com/pdiddy/deck2md/pkg/types"
)

// q1Deck is one slide with a title, two bullets and a 2x2 table.
func q1Deck() pptxtest.Deck {
	return pptxtest.Deck{
		Title:  "Quarterly results",
		Author: "Finance",
		Slides: []string{pptxtest.Shapes(
			pptxtest.Placeholder("Title 1", "title", pptxtest.Para("Q1 Results")),
			pptxtest.Placeholder("Content 2", "body",
				pptxtest.Bullet("Revenue up 10%", 0),
				pptxtest.Bullet("Costs down 5%", 0),
			),
			pptxtest.Table("Table 3", [][]string{{"Metric", "Value"}, {"Revenue", "$1M"}}),
		)},
	}
}

func parse(t *testing.T, d pptxtest.Deck) types.Presentation {
	t.Helper()
	data, err := pptxtest.Build(d)
	require.NoError(t, err)
	r, err := pptx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r.Presentation()
}

func TestRenderDocument_Q1Results(t *testing.T) {
	got := RenderDocument(parse(t, q1Deck()), "/decks/q1.pptx")

	want := "# q1\n" +
		"\n*Converted from q1.pptx*\n" +
		"\n---\n" +
		"\n\n# Slide 1 - Q1 Results\n" +
		"\n* Revenue up 10%" +
		"\n* Costs down 5%" +
		"\n" +
		"\n\n## Data Table\n" +
		"\n| Metric | Value |" +
		"\n|---|---|" +
		"\n| Revenue | $1M |" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderDocument_SlidesInOrder(t *testing.T) {
	p := types.Presentation{Slides: []types.Slide{
		slideOf(text("T", types.PlaceholderTitle, "First")),
		{},
		slideOf(text("T", types.PlaceholderTitle, "Third")),
	}}

	got := RenderDocument(p, `C:\decks\a\b.PPTX`)

	first := strings.Index(got, "# Slide 1 - First")
	second := strings.Index(got, "# Slide 2 - Untitled")
	third := strings.Index(got, "# Slide 3 - Third")
	require.True(t, first >= 0 && second > first && third > second, got)
}

func TestRender_FrontMatter(t *testing.T) {
	p := parse(t, q1Deck())

	plain, err := Render(p, "q1.pptx", DocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, RenderDocument(p, "q1.pptx"), plain)

	withFM, err := Render(p, "q1.pptx", DocumentOptions{FrontMatter: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(withFM, "---\ntitle: Quarterly results\nauthor: Finance\nsource: q1.pptx\nslides: 1\n---\n\n# q1\n"), withFM)
	assert.True(t, strings.HasSuffix(withFM, plain))
}

func TestRender_FrontMatterTitleFallsBackToStem(t *testing.T) {
	got, err := Render(types.Presentation{}, "notes.pptx", DocumentOptions{FrontMatter: true})
	require.NoError(t, err)
	assert.Contains(t, got, "title: notes\n")
	assert.NotContains(t, got, "author:")
}

func TestRenderDocument_Deterministic(t *testing.T) {
	p := parse(t, q1Deck())
	assert.Equal(t, RenderDocument(p, "q1.pptx"), RenderDocument(p, "q1.pptx"))
}

func TestRenderDocument_SoftBreaksStayOnHeadingLine(t *testing.T) {
	deck := pptxtest.Deck{Slides: []string{pptxtest.Shapes(
		pptxtest.Placeholder("Title 1", "title",
			`<a:p><a:r><a:t>Quarterly</a:t></a:r><a:br/><a:r><a:t>Results</a:t></a:r></a:p>`),
		pptxtest.TextBox("Box 2",
			`<a:p><a:r><a:t>Intro line</a:t></a:r><a:br/><a:r><a:t>second half</a:t></a:r></a:p>`,
			`<a:p><a:r><a:t>A closing remark</a:t></a:r><a:br/><a:r><a:t>split in two</a:t></a:r></a:p>`),
	)}}

	got := RenderDocument(parse(t, deck), "breaks.pptx")

	assert.Contains(t, got, "\n# Slide 1 - Quarterly Results\n")
	assert.Contains(t, got, "\n## Intro line second half\n")
	assert.Contains(t, got, "\n### A closing remark split in two\n")
	assert.Equal(t, 1, strings.Count(got, "Results"), "title text must not leak into the body")
	assert.NotContains(t, got, "\v")
}
