// Package config provides configuration structures and utilities for docaudit.
// It defines the main configuration options for fetching documentation
// articles, analysis behavior, assistive rewriting, and report output.
package config
