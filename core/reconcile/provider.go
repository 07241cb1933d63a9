package reconcile

import (
	"context"
	"errors"

	"booksync/core/catalog"
)

// ErrCatalogUnavailable marks a catalog that could not be listed at all.
// Providers wrap their transport or storage errors with it; the engine treats
// any listing error as fatal for the run.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Listing is the result of listing one catalog. Warnings describe records
// that were malformed and dropped; the run continues without them.
type Listing struct {
	Records  []catalog.Record
	Warnings []string
}

// Provider lists the records of one catalog. Implementations own all
// persistence and transport concerns; the engine only sees in-memory records.
type Provider interface {
	// Name identifies the catalog in reports and logs.
	Name() string

	// ListRecords materializes the catalog. It honors ctx for cancellation
	// and timeouts and returns an error wrapping ErrCatalogUnavailable when
	// the catalog cannot be listed.
	ListRecords(ctx context.Context) (*Listing, error)
}

// Executor applies a single planned action to the target catalog. Execution
// must be idempotent from the caller's perspective: applying the same Add
// twice must not create a duplicate entry.
type Executor interface {
	Execute(ctx context.Context, action Action) ExecutionResult
}

// Status classifies the outcome of one executed action.
type Status string

const (
	// StatusSuccess means the action was applied.
	StatusSuccess Status = "success"
	// StatusSkipped means the action was deliberately not applied.
	StatusSkipped Status = "skipped"
	// StatusFailed means the action was attempted and failed.
	StatusFailed Status = "failed"
)

// ExecutionResult is the structured outcome of one action. The engine never
// parses executor output; this struct is the whole contract.
type ExecutionResult struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Success returns a successful execution result.
func Success() ExecutionResult {
	return ExecutionResult{Status: StatusSuccess}
}

// Skipped returns a skipped execution result with the given reason.
func Skipped(reason string) ExecutionResult {
	return ExecutionResult{Status: StatusSkipped, Reason: reason}
}

// Failed returns a failed execution result with the given reason.
func Failed(reason string) ExecutionResult {
	return ExecutionResult{Status: StatusFailed, Reason: reason}
}
