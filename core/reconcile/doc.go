// Package reconcile compares two book catalogs and plans the corrective
// actions that bring the target catalog in line with the source.
//
// The engine is computation-only: it consumes fully materialized record
// listings from two Provider collaborators, matches them by normalized
// author/title keys, and hands an ordered action plan to an Executor
// collaborator. It performs no I/O of its own, which makes dry-run execution
// a matter of not applying the plan.
//
// # Pipeline
//
// A single sync run moves through fixed phases:
//
//	idle -> indexed -> diffed -> planned -> executing -> reported
//
// The two catalog indices are built concurrently (one goroutine per catalog,
// joined before diffing). Dry-run skips the executing phase entirely and
// reports every action as skipped.
//
// # Failure policy
//
// A provider failure is fatal for the run: the report carries the error and
// zero actions. A single malformed record or a single failed action is
// absorbed into the report and never aborts the rest of the batch. There is
// no code path that ends a run without a report.
package reconcile
