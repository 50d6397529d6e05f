// Package main provides the entry point for the docaudit CLI.
//
// docaudit is a quality analyzer and automated revision tool for HTML
// documentation articles. It grades readability, structure, completeness,
// and style guide compliance, and can apply deterministic and AI-assisted
// rewrites.
//
// Usage:
//
//	docaudit analyze <article-url>
//	docaudit revise <article-url>
//
// See --help for all available options.
package main

// main is the entry point for docaudit.
func main() {
	Execute()
}
