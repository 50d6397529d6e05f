package analyze

import (
	"fmt"
	"strings"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

const (
	// minHeadings is the heading count below which the article is flagged
	// as lacking structure.
	minHeadings = 3

	// maxParagraphWords is the average paragraph length (words) above which
	// splitting is suggested.
	maxParagraphWords = 100

	// minParagraphsForList is the paragraph count above which a list-free
	// article is flagged.
	minParagraphsForList = 5

	// minHeadingsForConclusion is the heading count above which a missing
	// conclusion section is flagged.
	minHeadingsForConclusion = 5
)

// Structure grades how the article is organized: headings, hierarchy,
// paragraph sizing, list usage, and logical section flow.
func Structure(doc *model.Document) model.StructureResult {
	if !doc.HasContent() {
		return model.StructureResult{Error: model.NoContentError}
	}

	headings := doc.Headings()
	paragraphs := doc.FindAll("p")
	lists := doc.FindAll("ul", "ol")
	codeBlocks := doc.FindAll("code", "pre")
	images := doc.FindAll("img")

	hierarchy := metrics.CheckHeadingHierarchy(headings)
	avgParagraphLength := metrics.AverageParagraphLength(doc)

	assessment := &model.StructureAssessment{
		HeadingsCount:          len(headings),
		ParagraphsCount:        len(paragraphs),
		ListsCount:             len(lists),
		CodeBlocksCount:        len(codeBlocks),
		ImagesCount:            len(images),
		AverageParagraphLength: avgParagraphLength,
		HeadingHierarchy:       hierarchy,
	}

	suggestions := make([]string, 0)

	if len(headings) < minHeadings {
		suggestions = append(suggestions,
			"This article needs more headings! Add subheadings to break up the content and make it easier to skim.")
	}

	if !hierarchy.IsValid {
		suggestions = append(suggestions, "Heading hierarchy is inconsistent. "+hierarchy.Issue)
	}

	if avgParagraphLength > maxParagraphWords {
		suggestions = append(suggestions, fmt.Sprintf(
			"Average paragraph length is %.0f words, which is quite long. "+
				"Consider breaking up long paragraphs into smaller chunks (aim for 50-75 words).",
			avgParagraphLength))
	}

	if len(lists) == 0 && len(paragraphs) > minParagraphsForList {
		suggestions = append(suggestions,
			"No lists found in the article. Consider using bullet points or numbered "+
				"lists to present steps, features, or options more clearly.")
	}

	suggestions = append(suggestions, flowSuggestions(headings)...)

	return model.StructureResult{
		Assessment:  assessment,
		Suggestions: suggestions,
	}
}

// flowSuggestions checks the logical ordering of sections by scanning
// heading text: setup material should precede usage, and long articles
// should close with a summary or next steps.
func flowSuggestions(headings []model.Heading) []string {
	hasSetup := false
	hasUsage := false
	hasConclusion := false
	for _, h := range headings {
		text := metrics.Fold(h.Text)
		if strings.Contains(text, "setup") || strings.Contains(text, "configure") {
			hasSetup = true
		}
		if strings.Contains(text, "use") || strings.Contains(text, "using") {
			hasUsage = true
		}
		if strings.Contains(text, "conclusion") || strings.Contains(text, "next") ||
			strings.Contains(text, "summary") {
			hasConclusion = true
		}
	}

	suggestions := make([]string, 0)
	if hasUsage && !hasSetup {
		suggestions = append(suggestions,
			"Consider adding a 'Setup' or 'Configuration' section before explaining usage.")
	}
	if len(headings) > minHeadingsForConclusion && !hasConclusion {
		suggestions = append(suggestions,
			"Consider adding a 'Next Steps' or 'Summary' section to conclude the article.")
	}
	return suggestions
}
