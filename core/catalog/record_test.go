package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Record
	}{
		{
			name: "conventional name",
			path: "/books/Isaac Asimov - Foundation.epub",
			expected: Record{
				SourceID: "/books/Isaac Asimov - Foundation.epub",
				Author:   "Isaac Asimov",
				Title:    "Foundation",
				Path:     "/books/Isaac Asimov - Foundation.epub",
				Formats:  []string{".epub"},
			},
		},
		{
			name: "annotation stripped",
			path: "shelf/Frank Herbert - Dune [2019].MOBI",
			expected: Record{
				SourceID: "shelf/Frank Herbert - Dune [2019].MOBI",
				Author:   "Frank Herbert",
				Title:    "Dune",
				Path:     "shelf/Frank Herbert - Dune [2019].MOBI",
				Formats:  []string{".mobi"},
			},
		},
		{
			name: "no separator becomes title-only",
			path: "/books/single_word_title.epub",
			expected: Record{
				SourceID: "/books/single_word_title.epub",
				Title:    "single_word_title",
				Path:     "/books/single_word_title.epub",
				Formats:  []string{".epub"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecordFromPath(tt.path))
		})
	}
}

func TestRecord_Key(t *testing.T) {
	r := Record{Author: "Isaac Asimov", Title: "Foundation"}
	assert.Equal(t, "isaacasimov|foundation", r.Key())

	// Records built from equivalent file names match by key, not path.
	a := RecordFromPath("/shelf/Isaac Asimov - Foundation.epub")
	b := RecordFromPath("/other/place/isaac-asimov - foundation.pdf")
	assert.Equal(t, a.Key(), b.Key())
}

func TestRecord_Ext(t *testing.T) {
	assert.Equal(t, ".epub", Record{Path: "/books/x.EPUB"}.Ext())
	assert.Equal(t, "", Record{}.Ext())
}
