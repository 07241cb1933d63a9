// Package catalog defines the data model shared by every book catalog:
// records, normalized comparison keys, work identifiers, indices, and the
// format priority table.
//
// A Record is one logical entry in a catalog. Two records are considered the
// same work when their normalized author/title keys match, regardless of where
// the physical files live. This is deliberate: path-based matching breaks as
// soon as a second catalog relocates files on import.
//
// # Keys
//
// Two kinds of keys exist and must not be confused:
//
//   - NormalizedKey: cross-catalog matching key, built from author and title.
//   - WorkIdentifier: same-catalog clustering key, built from a filename,
//     used to group format variants (epub/mobi/pdf) of one work.
//
// # Usage
//
//	idx := catalog.BuildIndex(records, catalog.Record.Key)
//	for _, key := range idx.Keys() {
//	    fmt.Println(key, idx.Get(key))
//	}
package catalog
