package reconcile

import "booksync/core/catalog"

// ActionType identifies the kind of corrective action.
type ActionType string

const (
	// ActionAdd creates the record in the target catalog.
	ActionAdd ActionType = "add"
	// ActionUpdatePath repoints an existing target entry at a new path.
	ActionUpdatePath ActionType = "update_path"
	// ActionNoOp marks a record that needs nothing. Planners may emit it or
	// omit it; the two are equivalent.
	ActionNoOp ActionType = "noop"
)

// Action is one planned mutation of the target catalog. Produced by Plan,
// consumed by an Executor; the engine itself never applies actions.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Record is the source record for Add actions and the target record for
	// UpdatePath actions (its SourceID addresses the target entry).
	Record catalog.Record `json:"record"`

	// OldPath is the path currently stored by the target. UpdatePath only.
	OldPath string `json:"old_path,omitempty"`

	// NewPath is the path the target should store. UpdatePath only.
	NewPath string `json:"new_path,omitempty"`

	// Reason explains why this action was planned.
	Reason string `json:"reason"`
}

// Plan turns a diff into an ordered action list: one Add per key missing from
// the target, one UpdatePath per matched key whose target path drifted from
// the source path. Keys needing nothing are omitted. Plan is a pure transform
// over its inputs and performs no I/O.
func Plan(diff DiffResult, source, target *catalog.Index) []Action {
	actions := make([]Action, 0, len(diff.MissingFromTarget))

	for _, key := range diff.MissingFromTarget {
		record, ok := source.First(key)
		if !ok {
			continue
		}
		actions = append(actions, Action{
			Type:   ActionAdd,
			Record: record,
			Reason: "missing from target",
		})
	}

	for _, key := range diff.Matched {
		src, _ := source.First(key)
		tgt, _ := target.First(key)
		if src.Path == "" || tgt.Path == src.Path {
			continue
		}
		actions = append(actions, Action{
			Type:    ActionUpdatePath,
			Record:  tgt,
			OldPath: tgt.Path,
			NewPath: src.Path,
			Reason:  "path drift",
		})
	}

	return actions
}
