// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/deck2md/pkg/types"
)

// UntitledTitle is used when a slide offers no usable title.
const UntitledTitle = "Untitled"

// maxTitleLen bounds, in characters, text that may act as a slide title.
const maxTitleLen = 100

// ResolveTitle returns the slide title: the text of a Title or Header
// placeholder, else the first short single-line text on the slide, else
// UntitledTitle. The result is never empty.
func ResolveTitle(slide types.Slide) string {
	for _, shape := range slide.Shapes {
		ts, ok := shape.(types.TextShape)
		if !ok || !ts.Placeholder.IsTitleLike() {
			continue
		}
		if text := strings.TrimSpace(ts.Text()); text != "" {
			return text
		}
	}

	for _, shape := range slide.Shapes {
		ts, ok := shape.(types.TextShape)
		if !ok {
			continue
		}
		text := strings.TrimSpace(ts.Text())
		if text == "" {
			continue
		}
		if utf8.RuneCountInString(text) < maxTitleLen && !strings.ContainsAny(text, "\n\r\v") {
			return text
		}
	}

	return UntitledTitle
}

// isTitleShape reports whether a text shape repeats the resolved title: its
// text equals the title, or is a short fragment of it.
func isTitleShape(shape types.TextShape, title string) bool {
	text := strings.TrimSpace(shape.Text())
	if text == title {
		return true
	}
	return text != "" && utf8.RuneCountInString(text) < maxTitleLen && strings.Contains(title, text)
}
