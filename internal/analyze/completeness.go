package analyze

import (
	"strings"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

const (
	// minExampleMentions is the example-mention count below which (combined
	// with a missing code block) the article is flagged as example-poor.
	minExampleMentions = 2

	// minCodeForAPI is the <code> element count an article mentioning APIs
	// or integrations is expected to reach.
	minCodeForAPI = 2
)

// Completeness grades whether the article covers what a reader needs:
// examples, visuals, prerequisites, use cases, and step-by-step guidance.
func Completeness(doc *model.Document) model.CompletenessResult {
	if !doc.HasContent() {
		return model.CompletenessResult{Error: model.NoContentError}
	}

	text := doc.PlainText()
	folded := metrics.Fold(text)

	codeExamples := doc.FindAll("code", "pre")
	images := doc.FindAll("img")
	exampleMentions := metrics.CountPresent(folded, metrics.ExampleIndicators)
	hasSteps := metrics.HasStepByStep(doc, text)
	alerts := metrics.AlertCount(doc)

	assessment := &model.CompletenessAssessment{
		CodeExamplesCount: len(codeExamples),
		ImagesCount:       len(images),
		ExampleMentions:   exampleMentions,
		HasStepByStep:     hasSteps,
		AlertsCount:       alerts,
	}

	suggestions := make([]string, 0)

	if exampleMentions < minExampleMentions && len(codeExamples) < 1 {
		suggestions = append(suggestions,
			"The article lacks concrete examples. Add practical examples showing how "+
				"marketers would actually use this feature in real scenarios.")
	}

	if len(images) == 0 {
		suggestions = append(suggestions,
			"No images or screenshots found. Consider adding visual aids to illustrate "+
				"the UI, workflow, or results. Screenshots are especially helpful for non-technical users.")
	}

	if !metrics.ContainsAny(folded, metrics.PrerequisiteKeywords) {
		suggestions = append(suggestions,
			"The article doesn't clearly state prerequisites or required knowledge. "+
				"Add a 'Prerequisites' or 'Before you begin' section.")
	}

	if !metrics.ContainsAny(folded, metrics.UseCaseKeywords) {
		suggestions = append(suggestions,
			"Consider adding a 'Common Use Cases' section to help marketers understand "+
				"when and why they would use this feature.")
	}

	if strings.Contains(folded, "configure") && !metrics.HasConfigurationExample(doc) {
		suggestions = append(suggestions,
			"Add a configuration example showing actual values a marketer would use.")
	}

	mentionsAPI := strings.Contains(folded, "api") || strings.Contains(folded, "integration")
	if mentionsAPI && len(doc.FindAll("code")) < minCodeForAPI {
		suggestions = append(suggestions,
			"API or integration mentioned but lacks code examples. "+
				"Add practical examples with sample data.")
	}

	return model.CompletenessResult{
		Assessment:  assessment,
		Suggestions: suggestions,
	}
}
