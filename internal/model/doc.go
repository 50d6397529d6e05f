// Package model defines the core data structures for docaudit.
//
// The central type is Document: the parsed tag tree of one fetched article
// plus its derived plain-text projection. Only the tag tree is authoritative;
// the plain text is always recomputed from it. Report and RevisionResult are
// the serializable outputs of analysis and revision runs.
package model
