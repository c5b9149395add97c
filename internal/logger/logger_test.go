// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.SkippedPath("slides.key", "not a PPTX file")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "not a PPTX file")
	assert.Contains(t, out, "slides.key")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud")

	l.Debug("debug line")
	l.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestConversionFailed(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info").ConversionFailed("broken.pptx", errors.New("zip: not a valid zip file"))

	assert.Contains(t, buf.String(), "broken.pptx")
	assert.Contains(t, buf.String(), "zip: not a valid zip file")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().ConversionFailed("x.pptx", errors.New("boom"))
	})
}
