package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a test table
	// SQLite specific types: INTEGER, TEXT.
	err = db.Exec("CREATE TABLE books (id INTEGER PRIMARY KEY, title TEXT, author TEXT, path TEXT)").Error
	assert.NoError(t, err)

	// Test GetTableColumns
	columns, err := GetTableColumns(db, "books")
	assert.NoError(t, err)
	assert.Len(t, columns, 4)

	// Map columns to map for easy assertion
	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["title"])
	assert.Equal(t, "text", colMap["author"])

	// Test non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	// PRAGMA table_info returns empty result for non-existent table in SQLite, implies no error but empty columns
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestHasColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE books (id INTEGER PRIMARY KEY, title TEXT, author TEXT)").Error
	assert.NoError(t, err)

	ok, missing, err := HasColumns(db, "books", "title", "author")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, missing)

	// Case-insensitive match
	ok, _, err = HasColumns(db, "books", "Title", "AUTHOR")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, missing, err = HasColumns(db, "books", "title", "path", "formats")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"path", "formats"}, missing)

	// A missing table reads as all columns missing.
	ok, missing, err = HasColumns(db, "non_existent", "title")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"title"}, missing)
}
