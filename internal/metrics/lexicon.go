package metrics

import (
	"sort"
	"strings"
)

// The closed vocabularies below are the measurement half of the style rules:
// extractors report hits against them, analyzers judge the counts, and the
// rewrite engine consumes the replacement tables. Adding a rule is a data
// change, not a code change.

// LongWordThreshold is the length beyond which any token counts as
// technical vocabulary regardless of the closed list.
const LongWordThreshold = 15

// technicalVocabulary is the closed set of terms common in marketing
// automation documentation that non-technical readers stumble on.
var technicalVocabulary = map[string]bool{
	"api": true, "sdk": true, "json": true, "webhook": true, "payload": true,
	"endpoint": true, "integration": true, "script": true, "code": true,
	"database": true, "query": true, "parameter": true, "variable": true,
	"authentication": true, "token": true, "oauth": true, "rest": true,
	"http": true, "https": true,
}

// JargonTerms maps technical jargon to the plain-language explanation a
// reader-facing suggestion should offer.
var JargonTerms = map[string]string{
	"api":            "Application Programming Interface (API)",
	"sdk":            "Software Development Kit (SDK)",
	"webhook":        "automated message sent between systems",
	"endpoint":       "connection point",
	"payload":        "data package",
	"authentication": "identity verification",
	"oauth":          "secure login method",
	"json":           "data format",
	"rest":           "web service standard",
	"crud":           "create, read, update, delete operations",
	"uuid":           "unique identifier",
	"regex":          "text pattern matching",
	"ssl":            "secure connection",
	"cdn":            "content delivery network",
}

// WeakModals is the closed list of modal verbs that soften instructions.
var WeakModals = []string{"can", "could", "may", "might", "should"}

// PassiveMarkers is the closed set of auxiliary-participle phrase markers
// used for passive-voice detection. A sentence containing any marker counts
// as passive.
var PassiveMarkers = []string{
	"is being", "was being", "has been", "have been", "had been",
	"will be", "will have been", "being", "been",
}

// FirstPersonMarkers are the first-person pronouns flagged by the style
// analyzer. Trailing spaces keep "i " from matching inside other words.
var FirstPersonMarkers = []string{"i ", "we ", "our ", "us ", "me "}

// PhrasePair is one entry of an ordered phrase→replacement table.
type PhrasePair struct {
	// From is the phrase to detect (folded form).
	From string

	// To is the suggested or applied replacement. Empty means the phrase
	// should be removed entirely.
	To string
}

// WordyPhrases maps common wordy phrases to concise alternatives for the
// clarity check.
var WordyPhrases = []PhrasePair{
	{"in order to", "to"},
	{"due to the fact that", "because"},
	{"in the event that", "if"},
	{"at this point in time", "now"},
	{"for the purpose of", "to"},
}

// VerboseReplacements is the full style-guide verbose-phrase table.
// Entries with an empty To are redundant lead-ins that should be deleted.
// Order matters: the rewrite engine applies the table top to bottom.
var VerboseReplacements = []PhrasePair{
	{"if you're ready to purchase", "ready to buy"},
	{"contact your account representative", "contact us"},
	{"in order to", "to"},
	{"due to the fact that", "because"},
	{"in the event that", "if"},
	{"at this point in time", "now"},
	{"for the purpose of", "to"},
	{"with regard to", "about"},
	{"in spite of the fact that", "although"},
	{"until such time as", "until"},
	{"as a result of", "because"},
	{"prior to", "before"},
	{"subsequent to", "after"},
	{"in addition to", "besides"},
	{"a large number of", "many"},
	{"a great deal of", "much"},
	{"on a regular basis", "regularly"},
	{"make a decision", "decide"},
	{"give consideration to", "consider"},
	{"it is important to note that", ""},
	{"please be aware that", ""},
	{"it should be noted that", ""},
}

// ContractionPairs maps formal phrasings to their contractions for the
// friendliness checks and the contraction-insertion rewrite pass.
var ContractionPairs = []PhrasePair{
	{"it is", "it's"},
	{"you are", "you're"},
	{"you will", "you'll"},
	{"we are", "we're"},
	{"let us", "let's"},
	{"do not", "don't"},
	{"will not", "won't"},
	{"cannot", "can't"},
	{"should not", "shouldn't"},
	{"would not", "wouldn't"},
	{"could not", "couldn't"},
	{"that is", "that's"},
	{"there is", "there's"},
	{"what is", "what's"},
	{"who is", "who's"},
	{"where is", "where's"},
}

// ExampleIndicators are phrases whose presence counts as an example mention.
var ExampleIndicators = []string{
	"example", "for instance", "such as", "e.g.", "sample", "scenario",
}

// PrerequisiteKeywords indicate a prerequisites section or statement.
var PrerequisiteKeywords = []string{
	"prerequisite", "before you begin", "requirements", "need to", "must have",
}

// UseCaseKeywords indicate use-case coverage.
var UseCaseKeywords = []string{
	"use case", "scenario", "when to use", "example scenario", "common uses",
}

// TechnicalTerms returns the distinct technical terms found in text:
// tokens in the closed vocabulary plus any token longer than
// LongWordThreshold characters. The result is sorted for determinism.
func TechnicalTerms(text string) []string {
	found := make(map[string]bool)
	for _, word := range Words(Fold(text)) {
		if technicalVocabulary[word] || len(word) > LongWordThreshold {
			found[word] = true
		}
	}

	terms := make([]string, 0, len(found))
	for term := range found {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// FoundJargon returns "term should be explained as explanation" statements
// for each distinct jargon term present in text, sorted for determinism.
func FoundJargon(text string) []string {
	seen := make(map[string]bool)
	for _, word := range Words(Fold(text)) {
		if _, ok := JargonTerms[word]; ok {
			seen[word] = true
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	statements := make([]string, 0, len(terms))
	for _, term := range terms {
		statements = append(statements, "'"+term+"' should be explained as '"+JargonTerms[term]+"'")
	}
	return statements
}

// ContainsAny reports whether the folded text contains any of the given
// phrases. All keyword checks are substring matches on folded text.
func ContainsAny(foldedText string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(foldedText, p) {
			return true
		}
	}
	return false
}

// CountPresent returns how many of the given phrases appear in the folded
// text at least once. Presence counts once per phrase, not per occurrence.
func CountPresent(foldedText string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(foldedText, p) {
			count++
		}
	}
	return count
}
