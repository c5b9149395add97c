// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_KeepsText(t *testing.T) {
	for _, tc := range []struct{ converted, total int }{{2, 2}, {1, 2}, {0, 2}, {0, 0}} {
		assert.Contains(t, Summary(tc.converted, tc.total, "Completed"), "Completed")
	}
}
