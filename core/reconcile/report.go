package reconcile

import (
	"fmt"

	"booksync/core/catalog"

	"github.com/google/uuid"
)

// Run phases, in order. A run never skips a transition; executing is entered
// zero times in dry-run mode.
const (
	PhaseIdle      = "idle"
	PhaseIndexed   = "indexed"
	PhaseDiffed    = "diffed"
	PhasePlanned   = "planned"
	PhaseExecuting = "executing"
	PhaseReported  = "reported"
)

// SyncReport accumulates the outcome of a single sync run. It is built
// monotonically during the run and returned at the end; nothing persists
// across runs.
type SyncReport struct {
	// RunID correlates the report with log entries of the same run.
	RunID string `json:"run_id"`

	// Scanned is the number of records listed from the source catalog.
	Scanned int `json:"scanned"`

	// Matched is the number of keys present in both catalogs.
	Matched int `json:"matched"`

	// Missing is the number of records still absent from the target when the
	// run reported, i.e. len(MissingRecords). A record planned as an Add and
	// applied successfully does not count.
	Missing int `json:"missing"`

	// Added counts successfully applied Add actions.
	Added int `json:"added"`

	// Updated counts successfully applied UpdatePath actions.
	Updated int `json:"updated"`

	// Skipped counts actions that were planned but not applied.
	Skipped int `json:"skipped"`

	// Failed counts actions whose execution failed.
	Failed int `json:"failed"`

	// MissingRecords holds the records that failed or remain unmatched in
	// the target, so callers can retry or display them.
	MissingRecords []catalog.Record `json:"missing_records"`

	// FormatSkips holds the dedup decisions made when one-file mode collapsed
	// format variants of the same work.
	FormatSkips []Skip `json:"format_skips,omitempty"`

	// Errors holds run-level failures and per-record warnings.
	Errors []string `json:"errors"`

	// Phases traces the run's state transitions in order.
	Phases []string `json:"phases"`
}

// NewReport returns an empty report with a fresh run ID, in the idle phase.
func NewReport() *SyncReport {
	return &SyncReport{
		RunID:          uuid.NewString(),
		MissingRecords: []catalog.Record{},
		Errors:         []string{},
		Phases:         []string{PhaseIdle},
	}
}

// Aggregate folds one execution result per action into the report. It
// tolerates any mix of outcomes and an undersized result slice; a missing
// result counts as a failure. Partial failure of a batch never aborts
// accumulation of the remaining results.
func (r *SyncReport) Aggregate(actions []Action, results []ExecutionResult) {
	for i, action := range actions {
		result := Failed("no execution result")
		if i < len(results) {
			result = results[i]
		}

		switch result.Status {
		case StatusSuccess:
			switch action.Type {
			case ActionAdd:
				r.Added++
			case ActionUpdatePath:
				r.Updated++
			}
		case StatusSkipped:
			r.Skipped++
			if action.Type == ActionAdd {
				r.MissingRecords = append(r.MissingRecords, action.Record)
			}
		case StatusFailed:
			r.Failed++
			r.Errors = append(r.Errors, fmt.Sprintf("%s %q: %s", action.Type, action.Record.Key(), result.Reason))
			r.MissingRecords = append(r.MissingRecords, action.Record)
		}
	}
}

// enter appends the next phase to the trace.
func (r *SyncReport) enter(phase string) {
	r.Phases = append(r.Phases, phase)
}

// Phase returns the phase the run is currently in.
func (r *SyncReport) Phase() string {
	return r.Phases[len(r.Phases)-1]
}
