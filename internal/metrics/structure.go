package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nao1215/docaudit/internal/model"
)

// alertClassPattern matches class names that mark alert/callout blocks.
var alertClassPattern = regexp.MustCompile(`alert|note|tip|warning`)

// stepPattern matches explicit "step N" instructions in prose.
var stepPattern = regexp.MustCompile(`(?i)step \d+`)

// CheckHeadingHierarchy validates that adjacent heading levels never
// increase by more than one. Only the first violation is reported; the scan
// stops there. Documents with no headings are valid with no issue text.
func CheckHeadingHierarchy(headings []model.Heading) model.HierarchyCheck {
	if len(headings) == 0 {
		return model.HierarchyCheck{IsValid: true}
	}

	prev := headings[0].Level
	for _, h := range headings[1:] {
		if h.Level > prev+1 {
			return model.HierarchyCheck{
				IsValid: false,
				Issue: fmt.Sprintf(
					"Heading hierarchy jumps from H%d to H%d. Use sequential heading levels.",
					prev, h.Level),
			}
		}
		prev = h.Level
	}

	return model.HierarchyCheck{IsValid: true}
}

// ParagraphLengths returns the word count of each non-empty paragraph in
// document order.
func ParagraphLengths(doc *model.Document) []int {
	lengths := make([]int, 0)
	for _, p := range doc.FindAll("p") {
		text := strings.TrimSpace(model.NodeText(p))
		if text == "" {
			continue
		}
		lengths = append(lengths, len(strings.Fields(text)))
	}
	return lengths
}

// AverageParagraphLength returns the mean paragraph length in words, or 0
// when there are no non-empty paragraphs.
func AverageParagraphLength(doc *model.Document) float64 {
	lengths := ParagraphLengths(doc)
	if len(lengths) == 0 {
		return 0
	}

	total := 0
	for _, l := range lengths {
		total += l
	}
	return float64(total) / float64(len(lengths))
}

// AlertCount counts alert/callout blocks: div or aside elements whose class
// attribute matches the alert class pattern.
func AlertCount(doc *model.Document) int {
	count := 0
	for _, n := range doc.FindAll("div", "aside") {
		if alertClassPattern.MatchString(model.GetAttr(n, "class")) {
			count++
		}
	}
	return count
}

// HasStepByStep reports whether the article gives step-by-step instructions:
// either a numbered list exists or the prose mentions "step N".
func HasStepByStep(doc *model.Document, plainText string) bool {
	if len(doc.FindAll("ol")) > 0 {
		return true
	}
	return stepPattern.MatchString(plainText)
}

// HasConfigurationExample reports whether any code block mentions "config".
// Used to flag articles that discuss configuration without showing one.
func HasConfigurationExample(doc *model.Document) bool {
	for _, n := range doc.FindAll("code", "pre") {
		if strings.Contains(Fold(model.NodeText(n)), "config") {
			return true
		}
	}
	return false
}
