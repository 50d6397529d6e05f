package analyze

import (
	"fmt"
	"strings"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

// Readability judgment thresholds.
// These are fixed constants, not runtime configuration: downstream
// automation depends on identical judgments for identical input.
const (
	// fleschFloor is the Flesch score below which readability is flagged.
	fleschFloor = 60

	// maxAvgSentenceLength is the average sentence length (words) above
	// which the article is flagged.
	maxAvgSentenceLength = 20

	// maxTechnicalTerms is the technical-term count above which a glossary
	// is suggested.
	maxTechnicalTerms = 10

	// difficultSentenceWords is the per-sentence word count that marks a
	// sentence as difficult.
	difficultSentenceWords = 30

	// difficultSentenceFlesch is the per-sentence Flesch score below which
	// a sentence is marked difficult.
	difficultSentenceFlesch = 30

	// maxDifficultSentences is how many difficult sentences are kept.
	maxDifficultSentences = 5
)

// readabilityLevel is one rung of the descending Flesch threshold ladder.
type readabilityLevel struct {
	// floor is the inclusive lower bound of the bucket.
	floor float64

	// name is the bucket's label.
	name string

	// explanation is the canned reader-facing interpretation.
	explanation string
}

// readabilityLadder buckets Flesch scores into named levels. Bounds are
// inclusive on the lower side: exactly 60.0 is Standard, not Fairly Easy.
var readabilityLadder = []readabilityLevel{
	{90, "Very Easy", "The content is very easy to read and understand, suitable for all marketers regardless of technical background."},
	{80, "Easy", "The content is easy to read with simple language that most marketers will find accessible."},
	{70, "Fairly Easy", "The content is reasonably easy to read, though some sections may require careful attention."},
	{60, "Standard", "The content has average readability. Non-technical marketers may need to read some sections twice."},
	{50, "Fairly Difficult", "The content is somewhat difficult to read. Consider simplifying language and sentence structure."},
	{30, "Difficult", "The content is difficult to read and may be too technical for many marketers."},
}

// veryDifficultLevel is the bottom of the ladder for scores below 30.
var veryDifficultLevel = readabilityLevel{
	name:        "Very Difficult",
	explanation: "The content is very difficult to read and likely too complex for non-technical marketers.",
}

// interpretFlesch returns the named level for a Flesch score.
func interpretFlesch(score float64) readabilityLevel {
	for _, level := range readabilityLadder {
		if score >= level.floor {
			return level
		}
	}
	return veryDifficultLevel
}

// Readability grades whether the target audience can understand the text.
// It applies standard readability formulas plus a technical-term scan.
func Readability(doc *model.Document) model.ReadabilityResult {
	if !doc.HasContent() {
		return model.ReadabilityResult{Error: model.NoContentError}
	}

	text := doc.PlainText()
	if text == "" {
		return model.ReadabilityResult{Error: model.NoContentError}
	}

	flesch := metrics.FleschReadingEase(text)
	fog := metrics.GunningFog(text)
	avgSentenceLength := metrics.AverageSentenceLength(text)
	terms := metrics.TechnicalTerms(text)
	level := interpretFlesch(flesch)

	assessment := &model.ReadabilityAssessment{
		FleschReadingEase:     flesch,
		GunningFogIndex:       fog,
		AverageSentenceLength: avgSentenceLength,
		ReadabilityLevel:      level.name,
		TechnicalTermsCount:   len(terms),
	}

	suggestions := make([]string, 0)

	if flesch < fleschFloor {
		suggestions = append(suggestions, fmt.Sprintf(
			"The content has a low readability score (Flesch: %.1f). "+
				"Consider simplifying sentences and using more common words to make it easier for marketers to understand.",
			flesch))
	}

	if avgSentenceLength > maxAvgSentenceLength {
		suggestions = append(suggestions, fmt.Sprintf(
			"Average sentence length is %.1f words - that's pretty long! "+
				"Try breaking sentences up. Aim for 15-20 words max.",
			avgSentenceLength))
	}

	if len(terms) > maxTechnicalTerms {
		sample := terms
		if len(sample) > 5 {
			sample = sample[:5]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Found %d technical terms that might confuse marketers. "+
				"Maybe add a glossary or explain terms like: %s",
			len(terms), strings.Join(sample, ", ")))
	}

	if difficult := difficultSentences(text); len(difficult) > 0 {
		cited := difficult
		if len(cited) > 3 {
			cited = cited[:3]
		}
		lines := make([]string, 0, len(cited))
		for _, sent := range cited {
			lines = append(lines, fmt.Sprintf("- %q", metrics.Snippet(sent, 100)))
		}
		suggestions = append(suggestions,
			"These sentences are particularly gnarly and should be simplified:\n"+
				strings.Join(lines, "\n"))
	}

	return model.ReadabilityResult{
		Assessment:  assessment,
		Explanation: fmt.Sprintf("%s (Flesch score: %.1f)", level.explanation, flesch),
		Suggestions: suggestions,
	}
}

// difficultSentences finds sentences that are particularly hard to read:
// over 30 words, or a per-sentence Flesch score below 30. The top 5 are kept.
func difficultSentences(text string) []string {
	difficult := make([]string, 0)
	for _, sent := range metrics.SplitSentences(text) {
		if len(strings.Fields(sent)) > difficultSentenceWords {
			difficult = append(difficult, sent)
		} else if metrics.FleschReadingEase(sent) < difficultSentenceFlesch {
			difficult = append(difficult, sent)
		}
		if len(difficult) == maxDifficultSentences {
			break
		}
	}
	return difficult
}
