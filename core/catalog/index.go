package catalog

import "sort"

// Index maps keys to the records that produced them. It is built fresh per
// operation and never mutated after construction. Colliding keys keep every
// record; collision resolution belongs to the dedup selector or the caller.
type Index struct {
	entries map[string][]Record
	keys    []string
}

// BuildIndex indexes records under the key produced by keyFn. Single pass,
// one key computation per record.
func BuildIndex(records []Record, keyFn KeyFunc) *Index {
	entries := make(map[string][]Record, len(records))
	for _, r := range records {
		key := keyFn(r)
		entries[key] = append(entries[key], r)
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Index{entries: entries, keys: keys}
}

// Get returns all records stored under key, in insertion order.
func (x *Index) Get(key string) []Record {
	return x.entries[key]
}

// First returns the first record stored under key.
func (x *Index) First(key string) (Record, bool) {
	records := x.entries[key]
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}

// Has reports whether any record is stored under key.
func (x *Index) Has(key string) bool {
	_, ok := x.entries[key]
	return ok
}

// Keys returns all keys in sorted order, so callers iterating the index
// produce deterministic output regardless of map iteration order.
func (x *Index) Keys() []string {
	return x.keys
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Collisions returns every key holding more than one record.
func (x *Index) Collisions() map[string][]Record {
	collisions := make(map[string][]Record)
	for key, records := range x.entries {
		if len(records) > 1 {
			collisions[key] = records
		}
	}
	return collisions
}
