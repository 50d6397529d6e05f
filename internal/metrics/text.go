package metrics

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// sentenceBoundary matches end-of-sentence punctuation followed by
// whitespace. Sentence boundaries are punctuation-followed-by-whitespace
// by definition here; abbreviations are accepted as a known imprecision.
var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// wordPattern matches word tokens the way \b\w+\b does.
var wordPattern = regexp.MustCompile(`\b\w+\b`)

// foldCaser performs Unicode case folding for case-insensitive scans.
// Folding is preferred over ToLower for stability across locales.
var foldCaser = cases.Fold()

// Fold returns the case-folded form of text for case-insensitive matching.
func Fold(text string) string {
	return foldCaser.String(text)
}

// SplitSentences segments text into sentences. Terminating punctuation stays
// attached to its sentence; empty segments are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sentences := make([]string, 0)
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// Keep the punctuation, drop the trailing whitespace.
		end := loc[0]
		for end < loc[1] && !unicode.IsSpace(rune(text[end])) {
			end++
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// Words returns the word tokens of text in original casing.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// CountSyllables estimates the syllable count of a single word by counting
// vowel groups, with a silent-'e' adjustment. Always at least 1 for a word
// containing letters. The heuristic is deterministic and documented here
// because readability thresholds depend on it being stable across runs.
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	hasLetter := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			prevVowel = false
			continue
		}
		hasLetter = true
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if !hasLetter {
		return 0
	}

	// Silent trailing 'e' ("make", "requite") unless it is the only vowel
	// group ("the") or part of a syllabic "-le" ("table").
	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// FleschReadingEase computes the Flesch reading-ease score: 0-100, higher
// reads easier. Returns 0 for text with no words.
func FleschReadingEase(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(SplitSentences(text))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

// GunningFog computes the Gunning fog index: an estimate of the years of
// education needed to follow the text. Complex words are those with three
// or more syllables. Returns 0 for text with no words.
func GunningFog(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(SplitSentences(text))
	if sentences == 0 {
		sentences = 1
	}

	complexWords := 0
	for _, w := range words {
		if CountSyllables(w) >= 3 {
			complexWords++
		}
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	complexRatio := 100 * float64(complexWords) / float64(len(words))

	return 0.4 * (wordsPerSentence + complexRatio)
}

// AverageSentenceLength returns the mean sentence length in words.
// Returns 0 for empty text.
func AverageSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}

	return float64(words) / float64(len(sentences))
}

// Snippet returns the first n runes of s with an ellipsis appended.
// The ellipsis is unconditional; snippets mark themselves as excerpts even
// when the source was short.
func Snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
