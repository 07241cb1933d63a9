package reconcile

import (
	"testing"

	"booksync/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Adds(t *testing.T) {
	source := index(
		catalog.RecordFromPath("/shelf/Isaac Asimov - Foundation.epub"),
		catalog.RecordFromPath("/shelf/Frank Herbert - Dune.epub"),
	)
	target := index(
		catalog.Record{SourceID: "7", Author: "Frank Herbert", Title: "Dune", Path: "/shelf/Frank Herbert - Dune.epub"},
	)

	actions := Plan(Diff(source, target), source, target)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionAdd, actions[0].Type)
	assert.Equal(t, "Isaac Asimov", actions[0].Record.Author)
	assert.Equal(t, "missing from target", actions[0].Reason)
}

func TestPlan_UpdatePath(t *testing.T) {
	source := index(
		catalog.RecordFromPath("/new/Frank Herbert - Dune.epub"),
	)
	target := index(
		catalog.Record{SourceID: "7", Author: "Frank Herbert", Title: "Dune", Path: "/old/dune.epub"},
	)

	actions := Plan(Diff(source, target), source, target)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionUpdatePath, actions[0].Type)
	// The action addresses the target entry, carrying both paths.
	assert.Equal(t, "7", actions[0].Record.SourceID)
	assert.Equal(t, "/old/dune.epub", actions[0].OldPath)
	assert.Equal(t, "/new/Frank Herbert - Dune.epub", actions[0].NewPath)
	assert.Equal(t, "path drift", actions[0].Reason)
}

// TestPlan_NoOpOmitted verifies that converged records produce no actions,
// which is what makes a second run idempotent.
func TestPlan_NoOpOmitted(t *testing.T) {
	source := index(
		catalog.RecordFromPath("/shelf/Frank Herbert - Dune.epub"),
	)
	target := index(
		catalog.Record{SourceID: "7", Author: "Frank Herbert", Title: "Dune", Path: "/shelf/Frank Herbert - Dune.epub"},
	)

	actions := Plan(Diff(source, target), source, target)
	assert.Empty(t, actions)
}

// TestPlan_SourceWithoutPath verifies that a source record with no path never
// produces a path update; there is nothing to repoint to.
func TestPlan_SourceWithoutPath(t *testing.T) {
	source := index(
		catalog.Record{Author: "Frank Herbert", Title: "Dune"},
	)
	target := index(
		catalog.Record{SourceID: "7", Author: "Frank Herbert", Title: "Dune", Path: "/old/dune.epub"},
	)

	actions := Plan(Diff(source, target), source, target)
	assert.Empty(t, actions)
}

func TestPlan_Ordering(t *testing.T) {
	source := index(
		catalog.RecordFromPath("/shelf/Zz Top - Zeta.epub"),
		catalog.RecordFromPath("/new/Frank Herbert - Dune.epub"),
		catalog.RecordFromPath("/shelf/Aa Author - Alpha.epub"),
	)
	target := index(
		catalog.Record{SourceID: "7", Author: "Frank Herbert", Title: "Dune", Path: "/old/dune.epub"},
	)

	actions := Plan(Diff(source, target), source, target)

	// Adds come first in sorted key order, then path updates.
	require.Len(t, actions, 3)
	assert.Equal(t, ActionAdd, actions[0].Type)
	assert.Equal(t, "Aa Author", actions[0].Record.Author)
	assert.Equal(t, ActionAdd, actions[1].Type)
	assert.Equal(t, "Zz Top", actions[1].Record.Author)
	assert.Equal(t, ActionUpdatePath, actions[2].Type)
}
