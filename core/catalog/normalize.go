package catalog

import "strings"

// Normalize lowercases s and strips spaces, hyphens, and underscores.
// It is deterministic and total: any input yields a (possibly empty) key
// fragment, never an error.
//
// The rule is intentionally this blunt. It matches works whose titles differ
// only in punctuation ("Isaac-Asimov" vs "isaac   asimov") but does not fold
// diacritics or author-name variants.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// NormalizedKey builds the cross-catalog matching key from author and title.
// The separator keeps "ab"+"c" and "a"+"bc" from colliding.
func NormalizedKey(author, title string) string {
	return Normalize(author) + "|" + Normalize(title)
}
