// Package database manages the connection to the library catalog database.
//
// It supports MySQL (network library databases) and SQLite (local single-file
// libraries) through GORM dialectors, with connection timeouts and pool
// settings applied uniformly.
//
// The inspector helpers (GetTableColumns, HasColumns) let callers verify a
// library schema before treating it as a catalog, so a misconfigured database
// surfaces as "catalog unavailable" instead of row-level scan errors.
package database
