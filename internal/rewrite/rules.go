package rewrite

import (
	"regexp"
	"strings"
	"unicode"
)

// textRule is one compiled pattern→replacement rule.
type textRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// contractionRules convert formal phrasings into contractions for a
// friendlier tone. Patterns are word-bounded and case-insensitive.
//
// The table is intentionally shorter than the detection table in
// internal/metrics: "who is" and "where is" are too often the opening of a
// genuine question to rewrite blindly.
var contractionRules = []textRule{
	{regexp.MustCompile(`(?i)\bit is\b`), "it's"},
	{regexp.MustCompile(`(?i)\byou are\b`), "you're"},
	{regexp.MustCompile(`(?i)\byou will\b`), "you'll"},
	{regexp.MustCompile(`(?i)\bwe are\b`), "we're"},
	{regexp.MustCompile(`(?i)\blet us\b`), "let's"},
	{regexp.MustCompile(`(?i)\bdo not\b`), "don't"},
	{regexp.MustCompile(`(?i)\bwill not\b`), "won't"},
	{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
	{regexp.MustCompile(`(?i)\bshould not\b`), "shouldn't"},
	{regexp.MustCompile(`(?i)\bwould not\b`), "wouldn't"},
	{regexp.MustCompile(`(?i)\bcould not\b`), "couldn't"},
	{regexp.MustCompile(`(?i)\bthat is\b`), "that's"},
	{regexp.MustCompile(`(?i)\bthere is\b`), "there's"},
	{regexp.MustCompile(`(?i)\bwhat is\b`), "what's"},
}

// verboseRules simplify wordy phrases. The last three entries delete
// redundant lead-ins outright, swallowing the trailing whitespace so no
// double space is left behind.
var verboseRules = []textRule{
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bat this point in time\b`), "now"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "to"},
	{regexp.MustCompile(`(?i)\bwith regard to\b`), "about"},
	{regexp.MustCompile(`(?i)\bin spite of the fact that\b`), "although"},
	{regexp.MustCompile(`(?i)\buntil such time as\b`), "until"},
	{regexp.MustCompile(`(?i)\bas a result of\b`), "because"},
	{regexp.MustCompile(`(?i)\bprior to\b`), "before"},
	{regexp.MustCompile(`(?i)\bsubsequent to\b`), "after"},
	{regexp.MustCompile(`(?i)\bin addition to\b`), "besides"},
	{regexp.MustCompile(`(?i)\ba large number of\b`), "many"},
	{regexp.MustCompile(`(?i)\ba great deal of\b`), "much"},
	{regexp.MustCompile(`(?i)\bon a regular basis\b`), "regularly"},
	{regexp.MustCompile(`(?i)\bmake a decision\b`), "decide"},
	{regexp.MustCompile(`(?i)\bgive consideration to\b`), "consider"},
	{regexp.MustCompile(`(?i)\bit is important to note that\s*`), ""},
	{regexp.MustCompile(`(?i)\bplease be aware that\s*`), ""},
	{regexp.MustCompile(`(?i)\bit should be noted that\s*`), ""},
}

// Spacing fix patterns.
var (
	doubleSpaceAfterStop = regexp.MustCompile(`([.!?])\s{2,}`)
	spacedEmDash         = regexp.MustCompile(`\s+—\s+`)
	spacedHyphen         = regexp.MustCompile(`\s+-\s+`)
)

// oxfordPattern matches the last two items of a three-item list joined by a
// bare "and". Lowercase "and" only: a capitalized "And" opens a sentence.
var oxfordPattern = regexp.MustCompile(`\b(\w+),\s+(\w+)\s+and\s+(\w+)\b`)

// headingAcronyms stay fully uppercase when headings are folded to sentence
// case.
var headingAcronyms = map[string]bool{
	"API": true, "UI": true, "ID": true, "URL": true,
	"SDK": true, "HTTP": true, "JSON": true,
}

// shortHeadingWords is the word count at or below which trailing punctuation
// is stripped from a heading.
const shortHeadingWords = 3

// RewriteText applies the full text-node rule chain: contractions, verbose
// phrase simplification, then spacing fixes. Pure string in, string out.
func RewriteText(text string) string {
	text = AddContractions(text)
	text = SimplifyVerbosePhrases(text)
	text = FixSpacing(text)
	return text
}

// AddContractions rewrites formal phrasings into contractions.
func AddContractions(text string) string {
	for _, rule := range contractionRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// SimplifyVerbosePhrases replaces wordy phrases with concise alternatives
// and deletes redundant lead-ins.
func SimplifyVerbosePhrases(text string) string {
	for _, rule := range verboseRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// FixSpacing collapses double spaces after sentence punctuation and removes
// spaces around dashes.
func FixSpacing(text string) string {
	text = doubleSpaceAfterStop.ReplaceAllString(text, "$1 ")
	text = spacedEmDash.ReplaceAllString(text, "—")
	text = spacedHyphen.ReplaceAllString(text, "-")
	return text
}

// AddOxfordCommas inserts the missing comma before "and" in three-item
// lists. The second return value is the number of insertions.
func AddOxfordCommas(text string) (string, int) {
	count := len(oxfordPattern.FindAllString(text, -1))
	if count == 0 {
		return text, 0
	}
	return oxfordPattern.ReplaceAllString(text, "$1, $2, and $3"), count
}

// FixHeading folds a heading to sentence case, preserving whitelisted
// acronyms, and strips trailing punctuation from short headings. Returns the
// input unchanged (other than case/punctuation policy) when already clean.
func FixHeading(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	fixed := make([]string, 0, len(words))
	fixed = append(fixed, capitalize(words[0]))
	for _, word := range words[1:] {
		if headingAcronyms[strings.ToUpper(word)] {
			fixed = append(fixed, strings.ToUpper(word))
			continue
		}
		fixed = append(fixed, strings.ToLower(word))
	}

	result := strings.Join(fixed, " ")
	if len(words) <= shortHeadingWords {
		result = strings.TrimRight(result, ".!?:")
	}
	return result
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
