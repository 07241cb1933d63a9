package reconcile

import (
	"context"
	"fmt"
	"sync"

	"booksync/core/catalog"

	"go.uber.org/zap"
)

// Options configures a single sync run. Passing the table and flags here
// keeps the engine free of process-wide state, so tests can run with
// alternate tables and providers without touching the environment.
type Options struct {
	// Priority ranks file formats for one-file dedup. Nil means
	// catalog.DefaultFormatPriority.
	Priority catalog.FormatPriority

	// DryRun plans actions but never applies them; every action is reported
	// as skipped with reason "dry_run".
	DryRun bool

	// OneFile collapses same-work format variants in the source catalog to
	// the single best-format file before matching.
	OneFile bool

	// Logger receives phase transitions and collision warnings. Nil means
	// no logging.
	Logger *zap.Logger
}

// RunSync is the single public entry point of the reconciliation core. It
// lists both catalogs, matches them by normalized key, plans corrective
// actions, optionally executes them, and always returns a report, even under
// partial failure.
func RunSync(ctx context.Context, source, target Provider, exec Executor, opts Options) *SyncReport {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	priority := opts.Priority
	if priority == nil {
		priority = catalog.DefaultFormatPriority()
	}

	report := NewReport()
	l = l.With(zap.String("run_id", report.RunID))

	var (
		srcListing, tgtListing *Listing
		srcIndex, tgtIndex     *catalog.Index
		srcErr, tgtErr         error
		wg                     sync.WaitGroup
	)

	// The two catalogs are independent; index them concurrently and join
	// before diffing. Each goroutine touches only its own variables.
	wg.Add(2)

	go func() {
		defer wg.Done()
		srcListing, srcErr = source.ListRecords(ctx)
		if srcErr != nil {
			return
		}
		records := srcListing.Records
		if opts.OneFile {
			records, report.FormatSkips = DedupeOneFile(records, priority)
		}
		srcIndex = catalog.BuildIndex(records, catalog.Record.Key)
	}()

	go func() {
		defer wg.Done()
		tgtListing, tgtErr = target.ListRecords(ctx)
		if tgtErr != nil {
			return
		}
		tgtIndex = catalog.BuildIndex(tgtListing.Records, catalog.Record.Key)
	}()

	wg.Wait()

	if srcErr == nil {
		report.Scanned = len(srcListing.Records)
		report.Errors = append(report.Errors, srcListing.Warnings...)
	}
	if tgtErr == nil {
		report.Errors = append(report.Errors, tgtListing.Warnings...)
	}

	if srcErr != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("source catalog %s: %v", source.Name(), srcErr))
	}
	if tgtErr != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("target catalog %s: %v", target.Name(), tgtErr))
	}
	if srcErr != nil || tgtErr != nil {
		report.enter(PhaseReported)
		l.Error("sync aborted, catalog unavailable", zap.Strings("errors", report.Errors))
		return report
	}

	for key, records := range srcIndex.Collisions() {
		l.Warn("key collision in source catalog",
			zap.String("key", key),
			zap.Int("records", len(records)),
		)
	}

	report.enter(PhaseIndexed)
	l.Debug("catalogs indexed",
		zap.Int("source_keys", srcIndex.Len()),
		zap.Int("target_keys", tgtIndex.Len()),
	)

	diff := Diff(srcIndex, tgtIndex)
	report.Matched = len(diff.Matched)
	report.enter(PhaseDiffed)
	l.Debug("catalogs diffed",
		zap.Int("matched", report.Matched),
		zap.Int("missing_from_target", len(diff.MissingFromTarget)),
		zap.Int("missing_from_source", len(diff.MissingFromSource)),
	)

	actions := Plan(diff, srcIndex, tgtIndex)
	report.enter(PhasePlanned)
	l.Debug("actions planned", zap.Int("actions", len(actions)))

	results := make([]ExecutionResult, len(actions))
	switch {
	case opts.DryRun:
		// Executing is never entered; the plan is reported as-is.
		for i := range actions {
			results[i] = Skipped("dry_run")
		}
	case exec == nil:
		for i := range actions {
			results[i] = Skipped("no executor")
		}
	default:
		report.enter(PhaseExecuting)
		for i, action := range actions {
			if ctx.Err() != nil {
				results[i] = Skipped("canceled")
				continue
			}
			results[i] = exec.Execute(ctx, action)
		}
	}

	report.Aggregate(actions, results)
	// Missing reflects what is still absent after execution, so a fully
	// successful sync reports zero.
	report.Missing = len(report.MissingRecords)
	report.enter(PhaseReported)
	l.Info("sync run reported",
		zap.Int("scanned", report.Scanned),
		zap.Int("matched", report.Matched),
		zap.Int("missing", report.Missing),
		zap.Int("added", report.Added),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	return report
}
