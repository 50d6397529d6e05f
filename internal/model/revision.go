package model

// RevisionResult describes one complete revision run: the original markup,
// what was applied, the revised markup, and the summary used for
// automation gating.
type RevisionResult struct {
	// URL is the address of the revised article.
	URL string `json:"url"`

	// OriginalContent is the markup exactly as fetched.
	OriginalContent string `json:"original_content"`

	// SuggestionsApplied lists the improvement categories that were applied,
	// as human-readable statements.
	SuggestionsApplied []string `json:"suggestions_applied"`

	// RevisedContent is the mutated markup in the same dialect.
	RevisedContent string `json:"revised_content"`

	// RevisionSummary reconciles attempted vs. applied work.
	RevisionSummary RevisionSummary `json:"revision_summary"`
}

// RevisionSummary carries the counts and the fixed two-bucket classification
// of what automation covers versus what needs a human.
type RevisionSummary struct {
	// TotalSuggestionsAnalyzed is the suggestion count across all four
	// analysis dimensions.
	TotalSuggestionsAnalyzed int `json:"total_suggestions_analyzed"`

	// SuggestionsApplied is the number of applied improvement categories.
	SuggestionsApplied int `json:"suggestions_applied"`

	// RevisionCategories describes each revision tier's coverage.
	RevisionCategories RevisionCategories `json:"revision_categories"`

	// AutomatedVsManual is a static policy statement, not derived
	// per-document.
	AutomatedVsManual AutomatedVsManual `json:"automated_vs_manual"`
}

// RevisionCategories describes what each revision tier covers.
type RevisionCategories struct {
	// StyleGuide covers the deterministic text-level fixes.
	StyleGuide string `json:"style_guide"`

	// StructureImprovements covers paragraph and heading mutations.
	StructureImprovements string `json:"structure_improvements"`

	// AssistedEnhancements covers the generative second pass, or states
	// that the backend was unavailable.
	AssistedEnhancements string `json:"assisted_enhancements"`
}

// AutomatedVsManual is the fixed classification of work buckets.
type AutomatedVsManual struct {
	// Automated names what the tool handles without human judgment.
	Automated string `json:"automated"`

	// RequiresManual names what still needs a content author.
	RequiresManual string `json:"requires_manual"`
}
