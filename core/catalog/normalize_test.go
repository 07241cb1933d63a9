package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize verifies that punctuation and case variants fold to one key.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase passthrough",
			input:    "dune",
			expected: "dune",
		},
		{
			name:     "uppercase folded",
			input:    "DUNE",
			expected: "dune",
		},
		{
			name:     "spaces stripped",
			input:    "Isaac   Asimov",
			expected: "isaacasimov",
		},
		{
			name:     "hyphens stripped",
			input:    "Isaac-Asimov",
			expected: "isaacasimov",
		},
		{
			name:     "underscores and tabs stripped",
			input:    "Isaac_Asimov\t",
			expected: "isaacasimov",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "other punctuation preserved",
			input:    "Foundation's Edge",
			expected: "foundation'sedge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

// TestNormalize_Equivalence verifies the matching guarantee the sync relies
// on: author variants that differ only in case and stripped punctuation
// produce identical keys.
func TestNormalize_Equivalence(t *testing.T) {
	variants := []string{"Isaac Asimov", "isaac   asimov", "Isaac-Asimov", "isaac_asimov"}
	for _, v := range variants {
		assert.Equal(t, "isaacasimov", Normalize(v), "variant %q", v)
	}
}

func TestNormalizedKey(t *testing.T) {
	assert.Equal(t, "isaacasimov|foundation", NormalizedKey("Isaac Asimov", "Foundation"))

	// The separator keeps adjacent fragments from colliding.
	assert.NotEqual(t, NormalizedKey("ab", "c"), NormalizedKey("a", "bc"))

	// Both parts empty is still a valid (degenerate) key.
	assert.Equal(t, "|", NormalizedKey("", ""))
}
