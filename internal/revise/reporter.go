package revise

import (
	"fmt"
	"strings"

	"github.com/nao1215/docaudit/internal/model"
)

// longParagraphWords is the paragraph length that counts as needing a split
// when reporting structure improvements.
const longParagraphWords = 100

// AppliedSuggestions lists the improvement categories the revision run
// addressed, as human-readable statements: one per style-guide category with
// hits, one for paragraph splitting when the original needed it, and one for
// the assistive pass when it ran.
func AppliedSuggestions(report *model.Report, hadLongParagraphs, assisted bool) []string {
	applied := make([]string, 0)

	if report != nil && report.StyleGuidelines.Assessment != nil {
		for _, check := range report.StyleGuidelines.Assessment.StyleGuide.Categories() {
			if check.Result.Count == 0 {
				continue
			}
			applied = append(applied, fmt.Sprintf("Applied %s fixes: %s",
				strings.ReplaceAll(check.Category, "_", " "), check.Result.Message))
		}
	}

	if hadLongParagraphs {
		applied = append(applied, "Applied structure improvements: broke up long paragraphs")
	}

	if assisted {
		applied = append(applied, "Applied AI-assisted improvements: enhanced active voice and clarity")
	}

	return applied
}

// Summarize builds the revision summary: the counts plus the fixed
// classification of automated versus manual work. The classification is a
// policy statement about the tool, not a per-document judgment.
func Summarize(report *model.Report, appliedCount int, assisted bool) model.RevisionSummary {
	total := 0
	if report != nil {
		total = report.TotalSuggestions()
	}

	assistedSummary := "Not available (no Ollama)"
	if assisted {
		assistedSummary = "Enhanced clarity and active voice"
	}

	return model.RevisionSummary{
		TotalSuggestionsAnalyzed: total,
		SuggestionsApplied:       appliedCount,
		RevisionCategories: model.RevisionCategories{
			StyleGuide:            "Applied contractions, simplified phrases, fixed capitalization",
			StructureImprovements: "Broke up long paragraphs, improved heading hierarchy",
			AssistedEnhancements:  assistedSummary,
		},
		AutomatedVsManual: model.AutomatedVsManual{
			Automated:      "Style guide fixes, structure improvements",
			RequiresManual: "Adding examples, technical content updates, major restructuring",
		},
	}
}

// hasLongParagraphs reports whether the document has any paragraph over the
// split threshold.
func hasLongParagraphs(doc *model.Document) bool {
	for _, p := range doc.FindAll("p") {
		if len(strings.Fields(model.NodeText(p))) > longParagraphWords {
			return true
		}
	}
	return false
}
