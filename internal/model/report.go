package model

import "strings"

// Priority tags embedded in suggestion and recommendation strings.
// Suggestions carry the tag inline; callers count or filter on it.
const (
	// HighPriority marks issues that block comprehension for the audience.
	HighPriority = "HIGH PRIORITY"

	// MediumPriority marks issues worth fixing but not blocking.
	MediumPriority = "MEDIUM PRIORITY"
)

// NoContentError is the distinguished error marker every dimension returns
// when analysis is requested before a document has been fetched.
const NoContentError = "No content to analyze"

// Report is the complete quality report for one article.
// Every dimension key is always present; on partial failure a dimension's
// value degrades to an error marker rather than disappearing.
//
// Design decision: Each field is JSON-tagged to match the interchange
// format consumed by downstream automation. The report must round-trip
// through JSON without loss, so no field holds a non-serializable value.
type Report struct {
	// URL is the address of the analyzed article.
	URL string `json:"url"`

	// AnalysisTimestamp is the RFC 3339 time the analysis ran.
	AnalysisTimestamp string `json:"analysis_timestamp"`

	// Readability grades whether the target audience can understand the text.
	Readability ReadabilityResult `json:"readability"`

	// Structure grades organization: headings, paragraphs, lists.
	Structure StructureResult `json:"structure"`

	// Completeness grades examples, visuals, and prerequisite coverage.
	Completeness CompletenessResult `json:"completeness"`

	// StyleGuidelines grades compliance with the writing style guide.
	StyleGuidelines StyleResult `json:"style_guidelines"`

	// OverallRecommendations are prioritized cross-cutting recommendations
	// derived from the four dimension assessments.
	OverallRecommendations []string `json:"overall_recommendations"`
}

// ReadabilityResult is the readability dimension's judgment.
type ReadabilityResult struct {
	// Assessment holds the measured readability facts. Nil when Error is set.
	Assessment *ReadabilityAssessment `json:"assessment,omitempty"`

	// Explanation is a canned sentence interpreting the readability level.
	Explanation string `json:"explanation,omitempty"`

	// Suggestions are human-readable improvement suggestions in generation
	// order. Duplicates are accepted as emphasis; nothing is deduplicated.
	Suggestions []string `json:"suggestions,omitempty"`

	// Error is the no-content marker when analysis had nothing to work on.
	Error string `json:"error,omitempty"`
}

// ReadabilityAssessment holds measured readability facts.
type ReadabilityAssessment struct {
	// FleschReadingEase is the Flesch score: 0-100, higher reads easier.
	FleschReadingEase float64 `json:"flesch_reading_ease"`

	// GunningFogIndex estimates years of education needed to follow the text.
	GunningFogIndex float64 `json:"gunning_fog_index"`

	// AverageSentenceLength is the mean sentence length in words.
	AverageSentenceLength float64 `json:"average_sentence_length"`

	// ReadabilityLevel is the named bucket for the Flesch score.
	ReadabilityLevel string `json:"readability_level"`

	// TechnicalTermsCount is the number of distinct technical terms found.
	TechnicalTermsCount int `json:"technical_terms_count"`
}

// StructureResult is the structure dimension's judgment.
type StructureResult struct {
	Assessment  *StructureAssessment `json:"assessment,omitempty"`
	Suggestions []string             `json:"suggestions,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// StructureAssessment holds measured structural facts.
type StructureAssessment struct {
	HeadingsCount          int            `json:"headings_count"`
	ParagraphsCount        int            `json:"paragraphs_count"`
	ListsCount             int            `json:"lists_count"`
	CodeBlocksCount        int            `json:"code_blocks_count"`
	ImagesCount            int            `json:"images_count"`
	AverageParagraphLength float64        `json:"average_paragraph_length"`
	HeadingHierarchy       HierarchyCheck `json:"heading_hierarchy"`
}

// HierarchyCheck is the result of validating heading levels.
// Only the first level skip is reported; the scan stops there.
type HierarchyCheck struct {
	// IsValid is true when no adjacent heading pair skips more than one level.
	IsValid bool `json:"is_valid"`

	// Issue describes the first violation found, empty when valid.
	Issue string `json:"issue,omitempty"`
}

// CompletenessResult is the completeness dimension's judgment.
type CompletenessResult struct {
	Assessment  *CompletenessAssessment `json:"assessment,omitempty"`
	Suggestions []string                `json:"suggestions,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

// CompletenessAssessment holds measured completeness facts.
type CompletenessAssessment struct {
	CodeExamplesCount int  `json:"code_examples_count"`
	ImagesCount       int  `json:"images_count"`
	ExampleMentions   int  `json:"example_mentions"`
	HasStepByStep     bool `json:"has_step_by_step"`
	AlertsCount       int  `json:"alerts_count"`
}

// StyleResult is the style dimension's judgment.
type StyleResult struct {
	Assessment  *StyleAssessment `json:"assessment,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// StyleAssessment holds measured style facts.
type StyleAssessment struct {
	// VoiceTone covers passive voice and first-person usage.
	VoiceTone VoiceToneAnalysis `json:"voice_tone"`

	// Clarity lists conciseness issues (wordy phrases, very long words).
	Clarity []string `json:"clarity"`

	// ActionOrientation covers weak modals and imperative usage.
	ActionOrientation ActionAnalysis `json:"action_orientation"`

	// StyleGuide holds the eight style-guide sub-check results.
	StyleGuide StyleGuideAssessment `json:"style_guide"`
}

// VoiceToneAnalysis measures voice and tone.
type VoiceToneAnalysis struct {
	PassiveVoicePercentage float64  `json:"passive_voice_percentage"`
	PassiveExamples        []string `json:"passive_examples"`
	FirstPersonCount       int      `json:"first_person_count"`
}

// ActionAnalysis measures action-oriented language.
type ActionAnalysis struct {
	WeakVerbsCount   int      `json:"weak_verbs_count"`
	WeakVerbExamples []string `json:"weak_verb_examples"`
	HasClearActions  bool     `json:"has_clear_actions"`
}

// CheckResult is one style-guide sub-check outcome.
type CheckResult struct {
	// Count is the number of rule hits.
	Count int `json:"count"`

	// Examples holds up to five illustrative hits.
	Examples []string `json:"examples"`

	// Message summarizes the check for report rendering.
	Message string `json:"message"`
}

// StyleGuideAssessment holds the eight style-guide sub-checks.
// Field order matches the fixed generation order of suggestions.
type StyleGuideAssessment struct {
	VerbosePhrases         CheckResult `json:"verbose_phrases"`
	MissingContractions    CheckResult `json:"missing_contractions"`
	TitleCapitalization    CheckResult `json:"title_capitalization"`
	UnnecessaryPunctuation CheckResult `json:"unnecessary_punctuation"`
	OxfordComma            CheckResult `json:"oxford_comma"`
	SpacingIssues          CheckResult `json:"spacing_issues"`
	WeakConstructions      CheckResult `json:"weak_constructions"`
	JargonUsage            CheckResult `json:"jargon_usage"`
}

// NamedCheck pairs a sub-check's category name with its result.
type NamedCheck struct {
	// Category is the snake_case category name used in reports.
	Category string

	// Result is the sub-check outcome.
	Result CheckResult
}

// Categories returns the sub-checks in their fixed evaluation order.
// Iterating this slice instead of struct fields keeps suggestion generation
// order stable and lets rendering code treat the checks uniformly.
func (s StyleGuideAssessment) Categories() []NamedCheck {
	return []NamedCheck{
		{"verbose_phrases", s.VerbosePhrases},
		{"missing_contractions", s.MissingContractions},
		{"title_capitalization", s.TitleCapitalization},
		{"unnecessary_punctuation", s.UnnecessaryPunctuation},
		{"oxford_comma", s.OxfordComma},
		{"spacing_issues", s.SpacingIssues},
		{"weak_constructions", s.WeakConstructions},
		{"jargon_usage", s.JargonUsage},
	}
}

// TotalCount returns the summed hit count across all sub-checks.
func (s StyleGuideAssessment) TotalCount() int {
	total := 0
	for _, c := range s.Categories() {
		total += c.Result.Count
	}
	return total
}

// TotalSuggestions returns the number of suggestions across all four
// dimensions. Used as the denominator for revision success rates.
func (r *Report) TotalSuggestions() int {
	return len(r.Readability.Suggestions) +
		len(r.Structure.Suggestions) +
		len(r.Completeness.Suggestions) +
		len(r.StyleGuidelines.Suggestions)
}

// Summary is a compact rollup used by the HTTP API and history store.
type Summary struct {
	// TotalSuggestions is the suggestion count across all dimensions.
	TotalSuggestions int `json:"total_suggestions"`

	// HighPriority is the number of high-priority overall recommendations.
	HighPriority int `json:"high_priority"`

	// Sections maps dimension names to their suggestion counts.
	Sections map[string]int `json:"sections"`
}

// Summarize computes the rollup for this report.
func (r *Report) Summarize() Summary {
	s := Summary{
		TotalSuggestions: r.TotalSuggestions(),
		Sections: map[string]int{
			"readability":      len(r.Readability.Suggestions),
			"structure":        len(r.Structure.Suggestions),
			"completeness":     len(r.Completeness.Suggestions),
			"style_guidelines": len(r.StyleGuidelines.Suggestions),
		},
	}

	for _, rec := range r.OverallRecommendations {
		if strings.Contains(rec, HighPriority) {
			s.HighPriority++
		}
	}

	return s
}
