// Package report renders analysis reports and revision results in text,
// JSON, and Markdown formats.
package report
