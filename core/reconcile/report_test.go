package reconcile

import (
	"testing"

	"booksync/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	report := NewReport()

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, PhaseIdle, report.Phase())
	assert.NotNil(t, report.MissingRecords)
	assert.NotNil(t, report.Errors)

	// Run IDs are unique per run.
	assert.NotEqual(t, report.RunID, NewReport().RunID)
}

// TestAggregate_PartialFailure verifies that one failed action never blocks
// accumulation of the rest.
func TestAggregate_PartialFailure(t *testing.T) {
	foundation := catalog.Record{Author: "Isaac Asimov", Title: "Foundation"}
	dune := catalog.Record{Author: "Frank Herbert", Title: "Dune"}

	actions := []Action{
		{Type: ActionAdd, Record: foundation},
		{Type: ActionAdd, Record: dune},
		{Type: ActionUpdatePath, Record: catalog.Record{SourceID: "7", Author: "Mary Shelley", Title: "Frankenstein"}},
	}
	results := []ExecutionResult{
		Success(),
		Failed("database write refused"),
		Success(),
	}

	report := NewReport()
	report.Aggregate(actions, results)

	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)

	require.Len(t, report.MissingRecords, 1)
	assert.Equal(t, "Dune", report.MissingRecords[0].Title)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "frankherbert|dune")
	assert.Contains(t, report.Errors[0], "database write refused")
}

func TestAggregate_Skipped(t *testing.T) {
	actions := []Action{
		{Type: ActionAdd, Record: catalog.Record{Author: "Frank Herbert", Title: "Dune"}},
		{Type: ActionUpdatePath, Record: catalog.Record{SourceID: "7"}},
	}
	results := []ExecutionResult{
		Skipped("dry_run"),
		Skipped("dry_run"),
	}

	report := NewReport()
	report.Aggregate(actions, results)

	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Added)
	assert.Equal(t, 0, report.Failed)

	// Skipped Adds stay visible as missing; skipped path updates do not.
	require.Len(t, report.MissingRecords, 1)
	assert.Equal(t, "Dune", report.MissingRecords[0].Title)
}

// TestAggregate_MissingResult verifies that an undersized result slice counts
// the uncovered actions as failures instead of dropping them.
func TestAggregate_MissingResult(t *testing.T) {
	actions := []Action{
		{Type: ActionAdd, Record: catalog.Record{Author: "A", Title: "a"}},
		{Type: ActionAdd, Record: catalog.Record{Author: "B", Title: "b"}},
	}

	report := NewReport()
	report.Aggregate(actions, []ExecutionResult{Success()})

	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "no execution result")
}

func TestPhaseTrace(t *testing.T) {
	report := NewReport()
	report.enter(PhaseIndexed)
	report.enter(PhaseDiffed)

	assert.Equal(t, PhaseDiffed, report.Phase())
	assert.Equal(t, []string{PhaseIdle, PhaseIndexed, PhaseDiffed}, report.Phases)
}
