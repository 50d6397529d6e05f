package analyze

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

const (
	// maxPassivePercentage is the passive-voice sentence share (percent)
	// above which the article is flagged.
	maxPassivePercentage = 20

	// maxFirstPerson is the first-person marker count above which the
	// article is flagged.
	maxFirstPerson = 5

	// maxWeakVerbs is the weak-modal hit count above which the article is
	// flagged.
	maxWeakVerbs = 5

	// minImperatives is the imperative sentence count above which the
	// article is considered action-oriented.
	minImperatives = 3

	// maxComplexWords is the long-word occurrence count above which a
	// clarity issue is raised.
	maxComplexWords = 10

	// highPriorityCategoryHits is the per-category hit count above which a
	// style-guide category suggestion is tagged high priority.
	highPriorityCategoryHits = 5
)

// longWordPattern matches occurrences of words of 15+ characters.
// Occurrences, not distinct words: repetition compounds the clarity cost.
var longWordPattern = regexp.MustCompile(`\b\w{15,}\b`)

// Style grades voice, clarity, action orientation, and style-guide
// compliance.
func Style(doc *model.Document) model.StyleResult {
	if !doc.HasContent() {
		return model.StyleResult{Error: model.NoContentError}
	}

	text := doc.PlainText()
	if text == "" {
		return model.StyleResult{Error: model.NoContentError}
	}

	folded := metrics.Fold(text)
	sentences := metrics.SplitSentences(text)

	voice := analyzeVoiceTone(sentences, folded)
	clarity := clarityIssues(text, folded)
	action := analyzeActionOrientation(sentences)
	guide := checkStyleGuide(doc, text, folded, sentences)

	assessment := &model.StyleAssessment{
		VoiceTone:         voice,
		Clarity:           clarity,
		ActionOrientation: action,
		StyleGuide:        guide,
	}

	return model.StyleResult{
		Assessment:  assessment,
		Suggestions: styleSuggestions(voice, clarity, action, guide),
	}
}

// analyzeVoiceTone measures passive voice share and first-person usage.
// A sentence counts as passive when it contains any auxiliary-participle
// marker; up to three examples are kept.
func analyzeVoiceTone(sentences []string, folded string) model.VoiceToneAnalysis {
	passiveCount := 0
	passiveExamples := make([]string, 0)
	for _, sent := range sentences {
		if metrics.ContainsAny(metrics.Fold(sent), metrics.PassiveMarkers) {
			passiveCount++
			if len(passiveExamples) < 3 {
				passiveExamples = append(passiveExamples, metrics.Snippet(sent, 50))
			}
		}
	}

	percentage := 0.0
	if len(sentences) > 0 {
		percentage = float64(passiveCount) / float64(len(sentences)) * 100
	}

	return model.VoiceToneAnalysis{
		PassiveVoicePercentage: percentage,
		PassiveExamples:        passiveExamples,
		FirstPersonCount:       metrics.CountPresent(folded, metrics.FirstPersonMarkers),
	}
}

// clarityIssues lists conciseness problems: wordy phrases present in the
// text and an overall long-word count check.
func clarityIssues(text, folded string) []string {
	issues := make([]string, 0)

	for _, pair := range metrics.WordyPhrases {
		if strings.Contains(folded, pair.From) {
			issues = append(issues, fmt.Sprintf(
				"Replace '%s' with '%s' for conciseness.", pair.From, pair.To))
		}
	}

	if complexWords := longWordPattern.FindAllString(text, -1); len(complexWords) > maxComplexWords {
		issues = append(issues, fmt.Sprintf(
			"Found %d very long words (15+ characters). "+
				"Consider using simpler alternatives where possible.",
			len(complexWords)))
	}

	return issues
}

// analyzeActionOrientation counts weak modal verbs and imperative openers.
// Each weak modal in a sentence counts separately; up to five examples are
// kept. A sentence is imperative when its first word starts with an
// uppercase letter and is not an abbreviation ending in a period.
func analyzeActionOrientation(sentences []string) model.ActionAnalysis {
	weakCount := 0
	weakExamples := make([]string, 0)
	imperativeCount := 0

	for _, sent := range sentences {
		foldedSent := metrics.Fold(sent)
		for _, verb := range metrics.WeakModals {
			if strings.Contains(foldedSent, " "+verb+" ") {
				weakCount++
				if len(weakExamples) < 5 {
					weakExamples = append(weakExamples,
						fmt.Sprintf("'%s' in: %s", verb, metrics.Snippet(sent, 50)))
				}
			}
		}

		fields := strings.Fields(sent)
		if len(fields) == 0 {
			continue
		}
		first := fields[0]
		if r := []rune(first); unicode.IsUpper(r[0]) && !strings.HasSuffix(first, ".") {
			imperativeCount++
		}
	}

	return model.ActionAnalysis{
		WeakVerbsCount:   weakCount,
		WeakVerbExamples: weakExamples,
		HasClearActions:  imperativeCount > minImperatives,
	}
}

// styleSuggestions assembles the dimension's suggestions in fixed order:
// voice, first person, clarity, weak verbs, imperatives, then one entry per
// style-guide category with hits (plus an indented examples line).
func styleSuggestions(voice model.VoiceToneAnalysis, clarity []string,
	action model.ActionAnalysis, guide model.StyleGuideAssessment) []string {

	suggestions := make([]string, 0)

	if voice.PassiveVoicePercentage > maxPassivePercentage {
		examples := voice.PassiveExamples
		if len(examples) > 2 {
			examples = examples[:2]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"%s: High use of passive voice (%.1f%%). "+
				"Convert passive constructions to active voice for clearer, more direct communication. "+
				"Examples: %s",
			model.HighPriority, voice.PassiveVoicePercentage, strings.Join(examples, ", ")))
	}

	if voice.FirstPersonCount > maxFirstPerson {
		suggestions = append(suggestions, model.MediumPriority+
			": Avoid first-person pronouns (I, we, our). Use second-person (you, your) "+
			"to speak directly to the reader.")
	}

	for _, issue := range clarity {
		suggestions = append(suggestions, model.MediumPriority+": "+issue)
	}

	if action.WeakVerbsCount > maxWeakVerbs {
		examples := action.WeakVerbExamples
		if len(examples) > 3 {
			examples = examples[:3]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"%s: Replace weak verbs with strong, action-oriented alternatives. Examples: %s",
			model.MediumPriority, strings.Join(examples, ", ")))
	}

	if !action.HasClearActions {
		suggestions = append(suggestions, model.HighPriority+
			": Add clear action statements. Start sentences with imperative verbs "+
			"(Click, Select, Navigate, Configure) to guide users effectively.")
	}

	for _, check := range guide.Categories() {
		if check.Result.Count == 0 {
			continue
		}
		priority := model.MediumPriority
		if check.Result.Count > highPriorityCategoryHits {
			priority = model.HighPriority
		}
		suggestions = append(suggestions, priority+": "+check.Result.Message)
		if len(check.Result.Examples) > 0 {
			examples := check.Result.Examples
			if len(examples) > 3 {
				examples = examples[:3]
			}
			suggestions = append(suggestions, "  Examples: "+strings.Join(examples, "; "))
		}
	}

	return suggestions
}
