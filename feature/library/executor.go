package library

import (
	"context"
	"strconv"
	"strings"

	"booksync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Executor applies planned actions to the library catalog database.
//
// Add is idempotent: a book whose work key is already present is skipped, so
// re-running a sync never creates duplicate entries.
type Executor struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewExecutor creates an executor over the given library database.
func NewExecutor(db *gorm.DB, l *zap.Logger) *Executor {
	if l == nil {
		l = zap.NewNop()
	}
	return &Executor{db: db, logger: l}
}

// Execute applies one action and reports a structured outcome. It never
// panics and never parses command output; failures are returned as values.
func (e *Executor) Execute(ctx context.Context, action reconcile.Action) reconcile.ExecutionResult {
	switch action.Type {
	case reconcile.ActionAdd:
		return e.add(ctx, action)
	case reconcile.ActionUpdatePath:
		return e.updatePath(ctx, action)
	default:
		return reconcile.Skipped("noop")
	}
}

func (e *Executor) add(ctx context.Context, action reconcile.Action) reconcile.ExecutionResult {
	key := action.Record.Key()

	var count int64
	if err := e.db.WithContext(ctx).Model(&Book{}).Where("work_key = ?", key).Count(&count).Error; err != nil {
		return reconcile.Failed(err.Error())
	}
	if count > 0 {
		return reconcile.Skipped("already present")
	}

	book := Book{
		Title:   action.Record.Title,
		Author:  action.Record.Author,
		Path:    action.Record.Path,
		Formats: strings.Join(action.Record.Formats, ","),
		WorkKey: key,
	}
	if err := e.db.WithContext(ctx).Create(&book).Error; err != nil {
		return reconcile.Failed(err.Error())
	}

	e.logger.Debug("book added",
		zap.Uint("id", book.ID),
		zap.String("title", book.Title),
		zap.String("author", book.Author),
	)
	return reconcile.Success()
}

func (e *Executor) updatePath(ctx context.Context, action reconcile.Action) reconcile.ExecutionResult {
	tx := e.db.WithContext(ctx).Model(&Book{})

	// The record's SourceID is the library row ID; fall back to the work key
	// when the record came from a catalog with non-numeric identifiers.
	if id, err := strconv.ParseUint(action.Record.SourceID, 10, 64); err == nil {
		tx = tx.Where("id = ?", id)
	} else {
		tx = tx.Where("work_key = ?", action.Record.Key())
	}

	result := tx.Update("path", action.NewPath)
	if result.Error != nil {
		return reconcile.Failed(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return reconcile.Failed("no matching library entry")
	}

	e.logger.Debug("book path updated",
		zap.String("source_id", action.Record.SourceID),
		zap.String("old_path", action.OldPath),
		zap.String("new_path", action.NewPath),
	)
	return reconcile.Success()
}
