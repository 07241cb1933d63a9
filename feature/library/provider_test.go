package library

import (
	"context"
	"testing"

	"booksync/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestProvider_ListRecords(t *testing.T) {
	db := setupTestDB(t, "provider_list")
	require.NoError(t, db.Create(&Book{
		Title:   "Foundation",
		Author:  "Isaac Asimov",
		Path:    "/shelf/Isaac Asimov - Foundation.epub",
		Formats: ".epub,.pdf",
		WorkKey: "isaacasimov|foundation",
	}).Error)

	p := NewProvider(db, nil)
	assert.Equal(t, "library", p.Name())

	listing, err := p.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.Records, 1)
	assert.Empty(t, listing.Warnings)

	r := listing.Records[0]
	assert.Equal(t, "1", r.SourceID)
	assert.Equal(t, "Isaac Asimov", r.Author)
	assert.Equal(t, "Foundation", r.Title)
	assert.Equal(t, []string{".epub", ".pdf"}, r.Formats)
	assert.Equal(t, "isaacasimov|foundation", r.Key())
}

// TestProvider_MalformedRowDropped verifies that a row with no usable
// metadata becomes a warning, not a record and not a failure.
func TestProvider_MalformedRowDropped(t *testing.T) {
	db := setupTestDB(t, "provider_malformed")
	require.NoError(t, db.Create(&Book{Path: "/shelf/orphan.epub"}).Error)
	require.NoError(t, db.Create(&Book{Title: "Dune", Author: "Frank Herbert", WorkKey: "frankherbert|dune"}).Error)

	listing, err := NewProvider(db, nil).ListRecords(context.Background())
	require.NoError(t, err)

	require.Len(t, listing.Records, 1)
	assert.Equal(t, "Dune", listing.Records[0].Title)
	require.Len(t, listing.Warnings, 1)
	assert.Contains(t, listing.Warnings[0], "malformed book")
}

func TestProvider_NilDatabaseUnavailable(t *testing.T) {
	_, err := NewProvider(nil, nil).ListRecords(context.Background())
	assert.ErrorIs(t, err, reconcile.ErrCatalogUnavailable)
}

// TestProvider_MissingColumnsUnavailable verifies that a books table lacking
// required columns marks the whole catalog unavailable.
func TestProvider_MissingColumnsUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int", "NO", "PRI", nil, "").
		AddRow("title", "varchar(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM books").WillReturnRows(rows)

	_, err := NewProvider(db, nil).ListRecords(context.Background())
	assert.ErrorIs(t, err, reconcile.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "author")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvider_QueryErrorUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM books").WillReturnError(assert.AnError)

	_, err := NewProvider(db, nil).ListRecords(context.Background())
	assert.ErrorIs(t, err, reconcile.ErrCatalogUnavailable)
}
