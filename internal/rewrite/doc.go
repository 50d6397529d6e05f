// Package rewrite is the deterministic rewrite engine: a fixed, ordered set
// of text and markup transformations applied directly to a document's tag
// tree. Contractions, verbose-phrase simplification, spacing fixes, heading
// case and punctuation fixes, Oxford-comma insertion, and long-paragraph
// splitting.
//
// The engine is pure policy over rule tables; it never consults a network
// backend. Assistive, generative rewriting lives in internal/ollama.
package rewrite
