package reconcile

import "booksync/core/catalog"

// DiffResult classifies every key of two catalog indices. The slices are
// sorted, so the same two inputs always produce the same output regardless of
// map iteration order.
type DiffResult struct {
	// Matched holds keys present in both catalogs.
	Matched []string `json:"matched"`

	// MissingFromTarget holds keys present in the source but not the target.
	MissingFromTarget []string `json:"missing_from_target"`

	// MissingFromSource holds keys present in the target but not the source.
	MissingFromSource []string `json:"missing_from_source"`
}

// Diff compares two indices by key equality only. Paths and timestamps never
// participate: catalogs may legitimately store the same work under different
// physical locations.
func Diff(source, target *catalog.Index) DiffResult {
	result := DiffResult{
		Matched:           []string{},
		MissingFromTarget: []string{},
		MissingFromSource: []string{},
	}

	for _, key := range source.Keys() {
		if target.Has(key) {
			result.Matched = append(result.Matched, key)
		} else {
			result.MissingFromTarget = append(result.MissingFromTarget, key)
		}
	}

	for _, key := range target.Keys() {
		if !source.Has(key) {
			result.MissingFromSource = append(result.MissingFromSource, key)
		}
	}

	return result
}
