package analyze

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

// maxCheckExamples caps how many illustrative hits a sub-check keeps.
const maxCheckExamples = 5

// shortHeadingWords is the word count at or below which end punctuation on
// a heading is considered unnecessary.
const shortHeadingWords = 3

// headingCaseExceptions are acronyms allowed to stay capitalized mid-heading
// without the heading counting as title case.
var headingCaseExceptions = map[string]bool{"api": true, "ui": true, "id": true}

// oxfordCommaPattern matches three-item lists whose last item lacks a comma
// before "and". Matching is case-sensitive on purpose: a capitalized "And"
// opens a new sentence, not a list tail.
var oxfordCommaPattern = regexp.MustCompile(`\b\w+,\s+\w+\s+and\s+\w+\b`)

// doubleSpacePattern matches sentence punctuation followed by two or more
// spaces.
var doubleSpacePattern = regexp.MustCompile(`[.!?]\s{2,}`)

// spacedDashPattern matches dashes surrounded by whitespace.
var spacedDashPattern = regexp.MustCompile(`\s+—\s+|\s+-\s+`)

// weakConstruction is one weak-writing pattern with the canned advice for it.
type weakConstruction struct {
	pattern    *regexp.Regexp
	suggestion string
}

// weakConstructions are the hedging and indirect constructions the style
// guide asks writers to revise into direct commands.
var weakConstructions = []weakConstruction{
	{regexp.MustCompile(`(?i)\byou can\b`), "Start with action verb instead of 'you can'"},
	{regexp.MustCompile(`(?i)\bthere is\b|\bthere are\b|\bthere were\b`), "Replace 'there is/are/were' with active construction"},
	{regexp.MustCompile(`(?i)\bit is possible to\b`), "Replace 'it is possible to' with direct action"},
	{regexp.MustCompile(`(?i)\bit is important to\b`), "Replace 'it is important to' with direct instruction"},
	{regexp.MustCompile(`(?i)\byou should\b`), "Use imperative: replace 'you should' with direct command"},
	{regexp.MustCompile(`(?i)\byou need to\b`), "Use imperative: replace 'you need to' with direct command"},
}

// checkStyleGuide runs the eight style-guide sub-checks. Heading checks use
// original casing; everything else scans folded text except the Oxford comma
// check, which is case-sensitive.
func checkStyleGuide(doc *model.Document, text, folded string, sentences []string) model.StyleGuideAssessment {
	headings := doc.Headings()
	return model.StyleGuideAssessment{
		VerbosePhrases:         checkVerbosePhrases(folded),
		MissingContractions:    checkContractions(sentences),
		TitleCapitalization:    checkCapitalization(headings),
		UnnecessaryPunctuation: checkHeadingPunctuation(headings),
		OxfordComma:            checkOxfordComma(text),
		SpacingIssues:          checkSpacing(text),
		WeakConstructions:      checkWeakConstructions(text),
		JargonUsage:            checkJargon(text),
	}
}

// checkVerbosePhrases counts verbose phrases present in the text, once per
// table entry regardless of repetition.
func checkVerbosePhrases(folded string) model.CheckResult {
	issues := make([]string, 0)
	count := 0
	for _, pair := range metrics.VerboseReplacements {
		if !strings.Contains(folded, pair.From) {
			continue
		}
		count++
		replacement := "remove entirely"
		if pair.To != "" {
			replacement = "'" + pair.To + "'"
		}
		issues = append(issues, fmt.Sprintf("Replace '%s' with %s", pair.From, replacement))
	}

	return model.CheckResult{
		Count:    count,
		Examples: capExamples(issues),
		Message:  fmt.Sprintf("Found %d verbose phrases that can be simplified for clearer communication.", count),
	}
}

// checkContractions flags sentences using a formal phrasing where the
// contraction is absent. At most one hit per sentence.
func checkContractions(sentences []string) model.CheckResult {
	issues := make([]string, 0)
	count := 0
	for _, sent := range sentences {
		foldedSent := metrics.Fold(sent)
		for _, pair := range metrics.ContractionPairs {
			if strings.Contains(foldedSent, pair.From) && !strings.Contains(foldedSent, pair.To) {
				count++
				issues = append(issues, fmt.Sprintf(
					"Use '%s' instead of '%s' in: %s", pair.To, pair.From, metrics.Snippet(sent, 50)))
				break
			}
		}
	}

	return model.CheckResult{
		Count:    count,
		Examples: capExamples(issues),
		Message:  fmt.Sprintf("Found %d opportunities to use contractions for a friendlier tone.", count),
	}
}

// checkCapitalization flags multi-word headings written in title case.
// A heading counts when more than one word is capitalized, ignoring the
// acronym exceptions; one-word headings are skipped.
func checkCapitalization(headings []model.Heading) model.CheckResult {
	issues := make([]string, 0)
	count := 0
	for _, h := range headings {
		words := strings.Fields(h.Text)
		if len(words) <= 1 {
			continue
		}

		capitalized := 0
		for _, word := range words {
			r := []rune(word)
			if unicode.IsUpper(r[0]) && !headingCaseExceptions[strings.ToLower(word)] {
				capitalized++
			}
		}

		if capitalized > 1 {
			count++
			issues = append(issues, fmt.Sprintf(
				"Use sentence case: '%s' → '%s'", h.Text, sentenceCase(h.Text)))
		}
	}

	return model.CheckResult{
		Count:    count,
		Examples: capExamples(issues),
		Message:  fmt.Sprintf("Found %d headings using title case instead of sentence case.", count),
	}
}

// checkHeadingPunctuation flags short headings that end in punctuation.
func checkHeadingPunctuation(headings []model.Heading) model.CheckResult {
	issues := make([]string, 0)
	count := 0
	for _, h := range headings {
		if len(strings.Fields(h.Text)) > shortHeadingWords {
			continue
		}
		if !strings.HasSuffix(h.Text, ".") && !strings.HasSuffix(h.Text, "!") &&
			!strings.HasSuffix(h.Text, "?") && !strings.HasSuffix(h.Text, ":") {
			continue
		}
		count++
		issues = append(issues, fmt.Sprintf(
			"Remove punctuation: '%s' → '%s'", h.Text, strings.TrimRight(h.Text, ".!?:")))
	}

	return model.CheckResult{
		Count:    count,
		Examples: capExamples(issues),
		Message:  fmt.Sprintf("Found %d headings with unnecessary end punctuation.", count),
	}
}

// checkOxfordComma flags three-item lists missing the comma before "and".
func checkOxfordComma(text string) model.CheckResult {
	matches := oxfordCommaPattern.FindAllString(text, -1)
	issues := make([]string, 0, len(matches))
	for _, match := range matches {
		corrected := strings.Replace(match, " and ", ", and ", 1)
		issues = append(issues, fmt.Sprintf("Add Oxford comma: '%s' → '%s'", match, corrected))
	}

	return model.CheckResult{
		Count:    len(matches),
		Examples: capExamples(issues),
		Message:  fmt.Sprintf("Found %d lists missing Oxford commas.", len(matches)),
	}
}

// checkSpacing flags double spaces after sentence punctuation and spaces
// around dashes. Each occurrence counts; issues summarize per pattern.
func checkSpacing(text string) model.CheckResult {
	issues := make([]string, 0)
	count := 0

	if doubles := doubleSpacePattern.FindAllString(text, -1); len(doubles) > 0 {
		count += len(doubles)
		issues = append(issues, fmt.Sprintf(
			"Use single space after periods: found %d instances of double spacing", len(doubles)))
	}

	if dashes := spacedDashPattern.FindAllString(text, -1); len(dashes) > 0 {
		count += len(dashes)
		issues = append(issues, fmt.Sprintf(
			"Remove spaces around dashes: found %d instances", len(dashes)))
	}

	return model.CheckResult{
		Count:    count,
		Examples: issues,
		Message:  fmt.Sprintf("Found %d spacing issues that need correction.", count),
	}
}

// checkWeakConstructions counts hedging constructions per pattern.
func checkWeakConstructions(text string) model.CheckResult {
	issues := make([]string, 0)
	count := 0
	for _, wc := range weakConstructions {
		matches := wc.pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		count += len(matches)
		issues = append(issues, fmt.Sprintf("%s (found %d instances)", wc.suggestion, len(matches)))
	}

	return model.CheckResult{
		Count:    count,
		Examples: issues,
		Message:  fmt.Sprintf("Found %d weak writing constructions that should be revised.", count),
	}
}

// checkJargon flags distinct jargon terms that should be explained inline.
func checkJargon(text string) model.CheckResult {
	statements := metrics.FoundJargon(text)
	return model.CheckResult{
		Count:    len(statements),
		Examples: capExamples(statements),
		Message: fmt.Sprintf(
			"Found %d technical terms that need explanation for non-technical users.", len(statements)),
	}
}

// sentenceCase converts text to sentence case: first rune upper, the rest
// lower. Acronyms are deliberately not preserved here; this produces the
// suggested form shown in a report example, not a rewrite.
func sentenceCase(text string) string {
	r := []rune(text)
	if len(r) == 0 {
		return text
	}
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

// capExamples truncates an example list to the report cap.
func capExamples(examples []string) []string {
	if len(examples) > maxCheckExamples {
		return examples[:maxCheckExamples]
	}
	return examples
}
