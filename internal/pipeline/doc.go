// Package pipeline orchestrates analysis runs as ordered steps.
//
// A Run flows through fetch, analyze, and optionally persist steps; the
// BatchProcessor executes many runs concurrently under an errgroup limit.
package pipeline
