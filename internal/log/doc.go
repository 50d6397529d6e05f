// Package log provides logging utilities for docaudit.
// It wraps log/slog handlers to truncate oversized string attributes so
// article bodies and generated paragraphs never flood the log output.
package log
