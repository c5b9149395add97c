// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deck2md/internal/logger"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	decks := filepath.Join(dir, "decks")
	require.NoError(t, os.MkdirAll(filepath.Join(decks, "sub"), 0o755))
	for _, name := range []string{"b.pptx", "A.PPTX", "notes.txt", "sub/deep.pptx"} {
		setupDeck(t, decks, name)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(decks, "folder.pptx"), 0o755))
	single := setupDeck(t, dir, "Single.Pptx")
	text := setupDeck(t, dir, "readme.md")
	missing := filepath.Join(dir, "missing.pptx")

	var log bytes.Buffer
	got := Discover([]string{decks, single, text, missing}, logger.New(&log, "info"))

	assert.Equal(t, []string{
		filepath.Join(decks, "A.PPTX"),
		filepath.Join(decks, "b.pptx"),
		single,
	}, got)
	assert.Contains(t, log.String(), "not a PPTX file")
	assert.Contains(t, log.String(), "readme.md")
	assert.Contains(t, log.String(), "path does not exist")
	assert.Contains(t, log.String(), "missing.pptx")
}

func TestDiscover_Nothing(t *testing.T) {
	got := Discover([]string{t.TempDir()}, logger.Discard())
	assert.Empty(t, got)
}
