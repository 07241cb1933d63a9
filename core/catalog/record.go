package catalog

import (
	"path/filepath"
	"strings"
)

// Record represents one logical entry in a catalog.
// Records are created when a catalog is listed and are immutable once read.
type Record struct {
	// SourceID is the catalog-local identifier (database row ID, file path,
	// object key). Opaque to the reconciliation core.
	SourceID string `json:"source_id"`

	// Title is the work's title as the catalog stores it.
	Title string `json:"title"`

	// Author is the work's author as the catalog stores it.
	Author string `json:"author"`

	// Path is the physical location of the file, if the catalog knows one.
	Path string `json:"path,omitempty"`

	// Formats lists the file extensions available for this work, in the
	// order the catalog reported them.
	Formats []string `json:"formats,omitempty"`
}

// Key returns the cross-catalog matching key for the record.
func (r Record) Key() string {
	return NormalizedKey(r.Author, r.Title)
}

// Ext returns the record's lowercased file extension, including the dot.
// Empty when the record has no path.
func (r Record) Ext() string {
	return strings.ToLower(filepath.Ext(r.Path))
}

// RecordFromPath builds a record for a file-management catalog entry, deriving
// author and title from the "Author - Title" file name convention. Names
// without the separator become title-only records; that is degenerate but
// valid. The path doubles as the catalog-local identifier.
func RecordFromPath(path string) Record {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	record := Record{
		SourceID: path,
		Path:     path,
		Formats:  []string{strings.ToLower(filepath.Ext(base))},
	}

	if author, title, ok := SplitAuthorTitle(name); ok {
		record.Author = author
		record.Title = title
	} else {
		record.Title = name
	}
	return record
}

// KeyFunc derives an index key from a record.
type KeyFunc func(Record) string

// IdentifierKey clusters records by the work identifier of their file name.
// Records without a path fall back to the normalized author/title key so they
// still land in a deterministic cluster.
func IdentifierKey(r Record) string {
	if r.Path == "" {
		return r.Key()
	}
	return ExtractIdentifier(filepath.Base(r.Path))
}
