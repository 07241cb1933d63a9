package catalog

import "strings"

// BookExtensions are the file extensions recognized as book files when no
// explicit filter is configured.
var BookExtensions = []string{".epub", ".pdf", ".mobi", ".lrf", ".azw", ".azw3", ".cbz", ".cbr"}

// FormatPriority ranks file extensions; a higher rank wins during dedup
// selection. Fixed at configuration time, never mutated at runtime.
type FormatPriority map[string]int

// DefaultFormatPriority returns the standard ranking: reflowable formats
// first, fixed-layout and legacy formats last.
func DefaultFormatPriority() FormatPriority {
	return FormatPriority{
		".epub": 8,
		".mobi": 7,
		".azw":  6,
		".azw3": 5,
		".pdf":  4,
		".cbz":  3,
		".cbr":  2,
		".lrf":  1,
	}
}

// Rank returns the rank for ext. Unrecognized extensions rank at the floor
// value 0, so an unranked record never beats a ranked one unless it is the
// only candidate in its cluster.
func (p FormatPriority) Rank(ext string) int {
	return p[strings.ToLower(ext)]
}

// IsBookFile reports whether name carries one of the allowed extensions.
// A nil or empty allowed list falls back to BookExtensions.
func IsBookFile(name string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = BookExtensions
	}
	lower := strings.ToLower(name)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ParseExtensions parses a comma-separated extension list ("epub,.pdf") into
// normalized, dot-prefixed, lowercased extensions. An empty argument returns
// nil, meaning no filter.
func ParseExtensions(arg string) []string {
	if arg == "" {
		return nil
	}

	var extensions []string
	for _, ext := range strings.Split(arg, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, strings.ToLower(ext))
	}
	return extensions
}
