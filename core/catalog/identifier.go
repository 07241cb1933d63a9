package catalog

import (
	"path/filepath"
	"regexp"
	"strings"
)

// separator splits "Author - Title" file names. The author part may not
// contain it, the title part may.
const separator = " - "

// trailingAnnotation matches one bracketed or parenthesized group anchored at
// the end of a title, e.g. " [2005]" or " (retail)".
var trailingAnnotation = regexp.MustCompile(`\s*[\(\[][^)\]]*[\)\]]\s*$`)

// ExtractIdentifier derives the work identifier from a file name. It is used
// only for same-catalog clustering of format variants, never for cross-catalog
// matching.
//
// A name following the "Author - Title" convention splits on the first
// separator; a single trailing bracketed annotation is stripped from the
// title. Names without the separator are used whole. The result is always
// lowercased and the extension never participates.
func ExtractIdentifier(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	author, title, ok := SplitAuthorTitle(name)
	if !ok {
		return strings.ToLower(name)
	}
	return strings.ToLower(author + separator + title)
}

// SplitAuthorTitle splits a file name (without extension) into its author and
// title parts. ok is false when the name does not follow the convention.
// Degenerate results (empty author or title) are still valid.
func SplitAuthorTitle(name string) (author, title string, ok bool) {
	if !strings.Contains(name, separator) {
		return "", "", false
	}
	parts := strings.SplitN(name, separator, 2)
	author = strings.TrimSpace(parts[0])
	title = strings.TrimSpace(parts[1])
	title = trailingAnnotation.ReplaceAllString(title, "")
	return author, title, true
}
