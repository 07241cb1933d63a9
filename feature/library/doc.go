// Package library implements the metadata-oriented library catalog.
//
// It backs two of the reconcile engine's collaborators with one GORM
// database:
//
//   - Provider: lists the books table as catalog records, dropping malformed
//     rows with a warning and reporting schema or connection problems as an
//     unavailable catalog.
//   - Executor: applies Add and UpdatePath actions. Adds are keyed on the
//     normalized work key, so replaying a plan never duplicates entries.
//
// The catalog works against MySQL for shared libraries and SQLite for local
// single-file ones; tests run on in-memory SQLite.
package library
