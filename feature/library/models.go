package library

import (
	"strconv"
	"strings"

	"booksync/core/catalog"

	"gorm.io/gorm"
)

// Book is one row of the library catalog's books table.
type Book struct {
	ID uint `gorm:"primaryKey"`

	// Title and Author are stored as entered; matching happens on WorkKey.
	Title  string `gorm:"size:255"`
	Author string `gorm:"size:255"`

	// Path is the physical file location the library believes in.
	Path string `gorm:"size:1024"`

	// Formats is a comma-joined list of file extensions (".epub,.pdf").
	Formats string `gorm:"size:255"`

	// WorkKey is the normalized author|title key, indexed so idempotent
	// inserts stay a single lookup.
	WorkKey string `gorm:"size:512;index"`
}

// TableName pins the table name regardless of GORM's pluralization settings.
func (Book) TableName() string {
	return "books"
}

// Record converts the row into a catalog record.
func (b Book) Record() catalog.Record {
	var formats []string
	for _, f := range strings.Split(b.Formats, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return catalog.Record{
		SourceID: strconv.FormatUint(uint64(b.ID), 10),
		Title:    b.Title,
		Author:   b.Author,
		Path:     b.Path,
		Formats:  formats,
	}
}

// Migrate creates or updates the books table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Book{})
}
