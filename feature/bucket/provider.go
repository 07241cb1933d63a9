// Package bucket implements the object-storage catalog backed by an
// S3-compatible bucket. Object keys follow the same "Author - Title" naming
// as shelf paths, so records are built from them the same way.
package bucket

import (
	"context"
	"fmt"
	"path"

	"booksync/core/catalog"
	"booksync/core/reconcile"
	"booksync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Provider lists objects under a prefix as a catalog.
type Provider struct {
	client     storage.Client
	bucket     string
	prefix     string
	extensions []string
	logger     *zap.Logger
}

// NewProvider creates a provider over bucket/prefix. extensions filters the
// object keys considered book files; nil means every known book format.
func NewProvider(client storage.Client, bucket, prefix string, extensions []string, l *zap.Logger) *Provider {
	if l == nil {
		l = zap.NewNop()
	}
	return &Provider{client: client, bucket: bucket, prefix: prefix, extensions: extensions, logger: l}
}

// Name identifies the catalog in reports and logs.
func (p *Provider) Name() string {
	return "bucket"
}

// ListRecords lists the bucket under the configured prefix and builds one
// record per book object. A missing bucket or a listing error marks the
// catalog unavailable.
func (p *Provider) ListRecords(ctx context.Context) (*reconcile.Listing, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", reconcile.ErrCatalogUnavailable, p.bucket)
	}

	listing := &reconcile.Listing{
		Records:  []catalog.Record{},
		Warnings: []string{},
	}

	objects := p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{
		Prefix:    p.prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: %v", reconcile.ErrCatalogUnavailable, obj.Err)
		}
		if !catalog.IsBookFile(path.Base(obj.Key), p.extensions) {
			p.logger.Debug("skipped non-book object", zap.String("key", obj.Key))
			continue
		}
		listing.Records = append(listing.Records, catalog.RecordFromPath(obj.Key))
	}

	return listing, nil
}
