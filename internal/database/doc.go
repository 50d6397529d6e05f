// Package database provides SQLite-based storage for analysis history.
//
// This package implements the HistoryDB, which stores one record per
// analysis run: the full report as JSON plus extracted columns for cheap
// history listings and comparisons.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
