package analyze

import (
	"time"

	"github.com/nao1215/docaudit/internal/model"
)

// Recommendation rule thresholds. Rules read already-computed assessment
// fields only; they never re-measure the document.
const (
	// minTotalExampleMentions is the example-mention floor for rule 2.
	minTotalExampleMentions = 2

	// highStyleIssueTotal is the total style-guide hit count above which
	// rule 3 fires high priority.
	highStyleIssueTotal = 15

	// mediumStyleIssueTotal is the total style-guide hit count above which
	// rule 3 fires medium priority.
	mediumStyleIssueTotal = 5

	// minOverallHeadings is the heading floor for rule 4.
	minOverallHeadings = 3

	// maxOverallWeakConstructions is the weak-construction ceiling for rule 5.
	maxOverallWeakConstructions = 5

	// maxOverallPassive is the passive-voice percentage ceiling for rule 6.
	maxOverallPassive = 20
)

// recommendationRule inspects a report and emits at most one recommendation.
type recommendationRule func(*model.Report) (string, bool)

// recommendationRules are the six fixed policy rules, evaluated in order.
// Rules are independent and may co-fire; each contributes zero or one line.
var recommendationRules = []recommendationRule{
	// Rule 1: readability floor. A missing assessment passes the rule; an
	// unreadable document is a fetch problem, not a readability one.
	func(r *model.Report) (string, bool) {
		flesch := 100.0
		if a := r.Readability.Assessment; a != nil {
			flesch = a.FleschReadingEase
		}
		return model.HighPriority + ": Improve readability by simplifying language and sentence structure.",
			flesch < fleschFloor
	},
	// Rule 2: example-mention floor. A missing assessment counts as zero
	// mentions, so this rule fires on analysis failure too.
	func(r *model.Report) (string, bool) {
		mentions := 0
		if a := r.Completeness.Assessment; a != nil {
			mentions = a.ExampleMentions
		}
		return model.HighPriority + ": Add practical examples to illustrate concepts.",
			mentions < minTotalExampleMentions
	},
	// Rule 3: total style-guide hits, tiered at >15 and >5.
	func(r *model.Report) (string, bool) {
		total := 0
		if a := r.StyleGuidelines.Assessment; a != nil {
			total = a.StyleGuide.TotalCount()
		}
		switch {
		case total > highStyleIssueTotal:
			return model.HighPriority + ": Address style guide violations for better user experience.", true
		case total > mediumStyleIssueTotal:
			return model.MediumPriority + ": Improve compliance with style guide principles.", true
		default:
			return "", false
		}
	},
	// Rule 4: heading floor.
	func(r *model.Report) (string, bool) {
		headings := 0
		if a := r.Structure.Assessment; a != nil {
			headings = a.HeadingsCount
		}
		return model.MediumPriority + ": Improve article structure with more headings and sections.",
			headings < minOverallHeadings
	},
	// Rule 5: weak-construction ceiling.
	func(r *model.Report) (string, bool) {
		weak := 0
		if a := r.StyleGuidelines.Assessment; a != nil {
			weak = a.StyleGuide.WeakConstructions.Count
		}
		return model.MediumPriority + ": Replace weak writing constructions with direct, action-oriented language.",
			weak > maxOverallWeakConstructions
	},
	// Rule 6: passive-voice ceiling.
	func(r *model.Report) (string, bool) {
		passive := 0.0
		if a := r.StyleGuidelines.Assessment; a != nil {
			passive = a.VoiceTone.PassiveVoicePercentage
		}
		return model.MediumPriority + ": Revise passive voice constructions to active voice.",
			passive > maxOverallPassive
	},
}

// GenerateReport runs all four dimension analyzers against the document and
// derives the overall recommendations. Every dimension key is always present
// in the result; a dimension that could not run carries its error marker.
func GenerateReport(doc *model.Document) *model.Report {
	report := &model.Report{
		URL:               doc.URL,
		AnalysisTimestamp: time.Now().Format(time.RFC3339),
		Readability:       Readability(doc),
		Structure:         Structure(doc),
		Completeness:      Completeness(doc),
		StyleGuidelines:   Style(doc),
	}

	report.OverallRecommendations = OverallRecommendations(report)
	return report
}

// OverallRecommendations evaluates the six policy rules against the report's
// assessments, in fixed order.
func OverallRecommendations(report *model.Report) []string {
	recommendations := make([]string, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if rec, fire := rule(report); fire {
			recommendations = append(recommendations, rec)
		}
	}
	return recommendations
}
