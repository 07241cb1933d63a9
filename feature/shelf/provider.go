// Package shelf implements the file-management catalog: a directory tree of
// book files named by the "Author - Title" convention. Walking and filtering
// live here, outside the reconcile core, which only ever sees the resulting
// records.
package shelf

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"booksync/core/catalog"
	"booksync/core/reconcile"

	"go.uber.org/zap"
)

// Provider lists a directory tree as a catalog.
type Provider struct {
	root       string
	extensions []string
	logger     *zap.Logger
}

// NewProvider creates a provider over root. extensions filters the files
// considered book files; nil means every known book format.
func NewProvider(root string, extensions []string, l *zap.Logger) *Provider {
	if l == nil {
		l = zap.NewNop()
	}
	return &Provider{root: root, extensions: extensions, logger: l}
}

// Name identifies the catalog in reports and logs.
func (p *Provider) Name() string {
	return "shelf"
}

// ListRecords walks the root directory and builds one record per book file.
// An unreadable root marks the catalog unavailable; unreadable entries below
// it are dropped with a warning and the walk continues.
func (p *Provider) ListRecords(ctx context.Context) (*reconcile.Listing, error) {
	info, err := os.Stat(p.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", reconcile.ErrCatalogUnavailable, p.root)
	}

	listing := &reconcile.Listing{
		Records:  []catalog.Record{},
		Warnings: []string{},
	}

	err = filepath.WalkDir(p.root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if walkErr != nil {
			listing.Warnings = append(listing.Warnings, fmt.Sprintf("shelf: skipped %s: %v", path, walkErr))
			p.logger.Warn("skipped unreadable entry", zap.String("path", path), zap.Error(walkErr))
			return nil
		}
		if d.IsDir() || !catalog.IsBookFile(d.Name(), p.extensions) {
			return nil
		}
		listing.Records = append(listing.Records, catalog.RecordFromPath(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, err)
	}

	return listing, nil
}
