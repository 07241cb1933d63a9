package reconcile

import "booksync/core/catalog"

// Skip records one non-selected format variant so the dedup decision is
// auditable by the caller instead of vanishing into a log.
type Skip struct {
	// WorkID is the cluster's work identifier.
	WorkID string `json:"work_id"`

	// SelectedPath is the path of the record that won the cluster.
	SelectedPath string `json:"selected_path"`

	// SkippedPath is the path of the record that lost.
	SkippedPath string `json:"skipped_path"`
}

// SelectBest picks the single best-format record from a cluster of format
// variants of one work. The record whose extension ranks highest in priority
// wins; on a tie (including two unranked extensions) the first record in the
// caller-supplied order wins, so selection is stable across runs.
//
// An empty cluster is a caller bug, not a runtime condition, and panics.
func SelectBest(cluster []catalog.Record, priority catalog.FormatPriority) (catalog.Record, []Skip) {
	if len(cluster) == 0 {
		panic("reconcile: SelectBest called with empty cluster")
	}
	if len(cluster) == 1 {
		return cluster[0], nil
	}

	best := 0
	for i := 1; i < len(cluster); i++ {
		if priority.Rank(cluster[i].Ext()) > priority.Rank(cluster[best].Ext()) {
			best = i
		}
	}

	workID := catalog.IdentifierKey(cluster[best])
	skips := make([]Skip, 0, len(cluster)-1)
	for i, r := range cluster {
		if i == best {
			continue
		}
		skips = append(skips, Skip{
			WorkID:       workID,
			SelectedPath: cluster[best].Path,
			SkippedPath:  r.Path,
		})
	}

	return cluster[best], skips
}

// DedupeOneFile reduces records to one file per work: records are clustered
// by work identifier and each cluster is collapsed with SelectBest. Output
// order follows sorted work identifiers, so it is deterministic.
func DedupeOneFile(records []catalog.Record, priority catalog.FormatPriority) ([]catalog.Record, []Skip) {
	if len(records) == 0 {
		return records, nil
	}

	clusters := catalog.BuildIndex(records, catalog.IdentifierKey)

	selected := make([]catalog.Record, 0, clusters.Len())
	var skips []Skip
	for _, workID := range clusters.Keys() {
		best, clusterSkips := SelectBest(clusters.Get(workID), priority)
		selected = append(selected, best)
		skips = append(skips, clusterSkips...)
	}

	return selected, skips
}
