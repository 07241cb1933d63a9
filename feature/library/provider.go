package library

import (
	"context"
	"fmt"

	"booksync/core/catalog"
	"booksync/core/database"
	"booksync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// requiredColumns are the books table columns the provider cannot work
// without. A schema missing any of them is treated as an unavailable catalog,
// not as a stream of row-level errors.
var requiredColumns = []string{"title", "author", "path"}

// Provider lists the library catalog database as records.
type Provider struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProvider creates a provider over the given library database.
func NewProvider(db *gorm.DB, l *zap.Logger) *Provider {
	if l == nil {
		l = zap.NewNop()
	}
	return &Provider{db: db, logger: l}
}

// Name identifies the catalog in reports and logs.
func (p *Provider) Name() string {
	return "library"
}

// ListRecords materializes the books table. Rows without any usable metadata
// are dropped with a warning; database-level failures mark the whole catalog
// unavailable.
func (p *Provider) ListRecords(ctx context.Context) (*reconcile.Listing, error) {
	if p.db == nil {
		return nil, fmt.Errorf("%w: no database connection", reconcile.ErrCatalogUnavailable)
	}

	ok, missing, err := database.HasColumns(p.db, Book{}.TableName(), requiredColumns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: books table missing columns %v", reconcile.ErrCatalogUnavailable, missing)
	}

	var books []Book
	if err := p.db.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, err)
	}

	listing := &reconcile.Listing{
		Records:  make([]catalog.Record, 0, len(books)),
		Warnings: []string{},
	}
	for _, b := range books {
		if b.Title == "" && b.Author == "" {
			warning := fmt.Sprintf("library: dropped malformed book id=%d (no title or author)", b.ID)
			listing.Warnings = append(listing.Warnings, warning)
			p.logger.Warn("dropped malformed book", zap.Uint("id", b.ID))
			continue
		}
		listing.Records = append(listing.Records, b.Record())
	}

	return listing, nil
}
