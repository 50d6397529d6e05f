package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/docaudit/internal/model"
)

// HistoryDB provides SQLite-based storage for analysis reports.
// It manages connection pooling and provides methods for saving reports
// and retrieving the analysis history of a URL.
//
// Design decision: We store the full report as a JSON blob alongside a
// few extracted columns (suggestion count, Flesch score). The blob keeps
// the schema stable as report fields evolve; the columns make history
// listings and comparisons cheap without deserializing every report.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "docaudit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; history reads are rare enough that
	// a single connection keeps things simple.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Analysis records store one quality report per run
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total_suggestions INTEGER NOT NULL,
		high_priority INTEGER NOT NULL,
		flesch_score REAL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_url ON analyses(url);
	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// AnalysisRecord is one stored analysis run.
type AnalysisRecord struct {
	// ID is the unique record identifier (UUID).
	ID string

	// URL is the analyzed article address.
	URL string

	// Timestamp is when the analysis was stored.
	Timestamp time.Time

	// TotalSuggestions is the suggestion count across all dimensions.
	TotalSuggestions int

	// HighPriority is the number of high-priority overall recommendations.
	HighPriority int

	// FleschScore is the Flesch reading ease score, or zero when the
	// readability dimension degraded to an error.
	FleschScore float64

	// Report is the full analysis report.
	Report *model.Report
}

// SaveReport stores an analysis report and returns the new record ID.
func (hdb *HistoryDB) SaveReport(ctx context.Context, report *model.Report) (string, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	summary := report.Summarize()
	var flesch float64
	if report.Readability.Assessment != nil {
		flesch = report.Readability.Assessment.FleschReadingEase
	}

	id := uuid.NewString()
	query := `
	INSERT INTO analyses (id, url, total_suggestions, high_priority, flesch_score, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = hdb.db.ExecContext(ctx, query,
		id,
		report.URL,
		summary.TotalSuggestions,
		summary.HighPriority,
		flesch,
		string(reportJSON),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis: %w", err)
	}

	return id, nil
}

// LatestReports retrieves up to limit most recent analysis records for a URL,
// newest first. Returns an empty slice when the URL has no history.
func (hdb *HistoryDB) LatestReports(ctx context.Context, url string, limit int) ([]AnalysisRecord, error) {
	query := `
	SELECT id, url, timestamp, total_suggestions, high_priority, flesch_score, report_json
	FROM analyses
	WHERE url = ?
	ORDER BY timestamp DESC, rowid DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, url, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var timestamp string
		var reportJSON string

		if err := rows.Scan(
			&rec.ID,
			&rec.URL,
			&timestamp,
			&rec.TotalSuggestions,
			&rec.HighPriority,
			&rec.FleschScore,
			&reportJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}

		rec.Timestamp = parseTimestamp(timestamp)

		var report model.Report
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			return nil, fmt.Errorf("failed to parse report: %w", err)
		}
		rec.Report = &report

		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListURLs returns all URLs with at least one stored analysis.
func (hdb *HistoryDB) ListURLs(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT url FROM analyses
	ORDER BY url
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// HistoryEntry contains summary information about a stored analysis.
// This is used for displaying history without loading the full report.
type HistoryEntry struct {
	// ID is the unique record identifier.
	ID string

	// URL is the analyzed article address.
	URL string

	// Timestamp is when the analysis was stored.
	Timestamp time.Time

	// TotalSuggestions is the suggestion count across all dimensions.
	TotalSuggestions int

	// HighPriority is the number of high-priority overall recommendations.
	HighPriority int

	// FleschScore is the stored Flesch reading ease score.
	FleschScore float64
}

// History retrieves analysis metadata for a URL, newest first.
// This is more efficient than LatestReports when only metadata is needed.
func (hdb *HistoryDB) History(ctx context.Context, url string) ([]HistoryEntry, error) {
	query := `
	SELECT id, url, timestamp, total_suggestions, high_priority, flesch_score
	FROM analyses
	WHERE url = ?
	ORDER BY timestamp DESC, rowid DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, url)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var timestamp string

		if err := rows.Scan(
			&entry.ID,
			&entry.URL,
			&timestamp,
			&entry.TotalSuggestions,
			&entry.HighPriority,
			&entry.FleschScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		entry.Timestamp = parseTimestamp(timestamp)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetReportByID retrieves a stored report by its record ID.
// Returns nil without error when no record exists.
func (hdb *HistoryDB) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	query := `
	SELECT report_json FROM analyses
	WHERE id = ?
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
