package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/docaudit/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// verbose enables per-category examples in the style section.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

const lineWidth = 70

// Write outputs the analysis report in human-readable format.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeReadability(&sb, report.Readability)
	w.writeStructure(&sb, report.Structure)
	w.writeCompleteness(&sb, report.Completeness)
	w.writeStyle(&sb, report.StyleGuidelines)
	w.writeRecommendations(&sb, report.OverallRecommendations)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteRevision outputs the revision result in human-readable format.
func (w *TextWriter) WriteRevision(result *model.RevisionResult) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString("                    DOCUMENTATION REVISION REPORT\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Article:              %s\n", result.URL)
	fmt.Fprintf(&sb, "Suggestions Analyzed: %d\n", result.RevisionSummary.TotalSuggestionsAnalyzed)
	fmt.Fprintf(&sb, "Suggestions Applied:  %d\n\n", result.RevisionSummary.SuggestionsApplied)

	w.sectionHeader(&sb, "APPLIED IMPROVEMENTS")
	if len(result.SuggestionsApplied) == 0 {
		sb.WriteString("  Nothing to fix automatically.\n")
	}
	for _, s := range result.SuggestionsApplied {
		fmt.Fprintf(&sb, "  * %s\n", s)
	}
	sb.WriteString("\n")

	w.sectionHeader(&sb, "REVISION COVERAGE")
	categories := result.RevisionSummary.RevisionCategories
	fmt.Fprintf(&sb, "  Style guide:  %s\n", categories.StyleGuide)
	fmt.Fprintf(&sb, "  Structure:    %s\n", categories.StructureImprovements)
	fmt.Fprintf(&sb, "  Assisted:     %s\n\n", categories.AssistedEnhancements)

	split := result.RevisionSummary.AutomatedVsManual
	fmt.Fprintf(&sb, "  Automated:        %s\n", split.Automated)
	fmt.Fprintf(&sb, "  Requires manual:  %s\n\n", split.RequiresManual)

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with article information.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString("                    DOCUMENTATION QUALITY REPORT\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Article:           %s\n", report.URL)
	fmt.Fprintf(sb, "Analyzed:          %s\n", report.AnalysisTimestamp)
	fmt.Fprintf(sb, "Total Suggestions: %d\n\n", report.TotalSuggestions())
}

// sectionHeader writes a dashed section header.
func (w *TextWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", lineWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", lineWidth))
	sb.WriteString("\n\n")
}

// writeSuggestions writes a dimension's suggestion list.
func (w *TextWriter) writeSuggestions(sb *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		sb.WriteString("  No suggestions.\n\n")
		return
	}
	for _, s := range suggestions {
		fmt.Fprintf(sb, "  * %s\n", s)
	}
	sb.WriteString("\n")
}

// writeReadability writes the readability dimension section.
func (w *TextWriter) writeReadability(sb *strings.Builder, r model.ReadabilityResult) {
	w.sectionHeader(sb, "READABILITY")

	if r.Error != "" {
		fmt.Fprintf(sb, "  Error: %s\n\n", r.Error)
		return
	}

	a := r.Assessment
	fmt.Fprintf(sb, "  Flesch Reading Ease:     %.1f (%s)\n", a.FleschReadingEase, a.ReadabilityLevel)
	fmt.Fprintf(sb, "  Gunning Fog Index:       %.1f\n", a.GunningFogIndex)
	fmt.Fprintf(sb, "  Avg Sentence Length:     %.1f words\n", a.AverageSentenceLength)
	fmt.Fprintf(sb, "  Technical Terms:         %d\n\n", a.TechnicalTermsCount)
	fmt.Fprintf(sb, "  %s\n\n", r.Explanation)

	w.writeSuggestions(sb, r.Suggestions)
}

// writeStructure writes the structure dimension section.
func (w *TextWriter) writeStructure(sb *strings.Builder, r model.StructureResult) {
	w.sectionHeader(sb, "STRUCTURE")

	if r.Error != "" {
		fmt.Fprintf(sb, "  Error: %s\n\n", r.Error)
		return
	}

	a := r.Assessment
	fmt.Fprintf(sb, "  Headings:                %d\n", a.HeadingsCount)
	fmt.Fprintf(sb, "  Paragraphs:              %d\n", a.ParagraphsCount)
	fmt.Fprintf(sb, "  Lists:                   %d\n", a.ListsCount)
	fmt.Fprintf(sb, "  Code Blocks:             %d\n", a.CodeBlocksCount)
	fmt.Fprintf(sb, "  Images:                  %d\n", a.ImagesCount)
	fmt.Fprintf(sb, "  Avg Paragraph Length:    %.1f words\n", a.AverageParagraphLength)
	if a.HeadingHierarchy.IsValid {
		sb.WriteString("  Heading Hierarchy:       valid\n\n")
	} else {
		fmt.Fprintf(sb, "  Heading Hierarchy:       INVALID - %s\n\n", a.HeadingHierarchy.Issue)
	}

	w.writeSuggestions(sb, r.Suggestions)
}

// writeCompleteness writes the completeness dimension section.
func (w *TextWriter) writeCompleteness(sb *strings.Builder, r model.CompletenessResult) {
	w.sectionHeader(sb, "COMPLETENESS")

	if r.Error != "" {
		fmt.Fprintf(sb, "  Error: %s\n\n", r.Error)
		return
	}

	a := r.Assessment
	fmt.Fprintf(sb, "  Code Examples:           %d\n", a.CodeExamplesCount)
	fmt.Fprintf(sb, "  Images:                  %d\n", a.ImagesCount)
	fmt.Fprintf(sb, "  Example Mentions:        %d\n", a.ExampleMentions)
	fmt.Fprintf(sb, "  Step-by-step:            %t\n", a.HasStepByStep)
	fmt.Fprintf(sb, "  Alerts/Notes:            %d\n\n", a.AlertsCount)

	w.writeSuggestions(sb, r.Suggestions)
}

// writeStyle writes the style dimension section.
func (w *TextWriter) writeStyle(sb *strings.Builder, r model.StyleResult) {
	w.sectionHeader(sb, "STYLE GUIDELINES")

	if r.Error != "" {
		fmt.Fprintf(sb, "  Error: %s\n\n", r.Error)
		return
	}

	a := r.Assessment
	fmt.Fprintf(sb, "  Passive Voice:           %.1f%% of sentences\n", a.VoiceTone.PassiveVoicePercentage)
	fmt.Fprintf(sb, "  First Person Markers:    %d\n", a.VoiceTone.FirstPersonCount)
	fmt.Fprintf(sb, "  Weak Verbs:              %d\n", a.ActionOrientation.WeakVerbsCount)
	fmt.Fprintf(sb, "  Clear Actions:           %t\n\n", a.ActionOrientation.HasClearActions)

	sb.WriteString("  Style Guide Checks:\n")
	for _, check := range a.StyleGuide.Categories() {
		fmt.Fprintf(sb, "    %-24s %d\n", strings.ReplaceAll(check.Category, "_", " ")+":", check.Result.Count)
		if w.verbose {
			for _, example := range check.Result.Examples {
				fmt.Fprintf(sb, "      - %s\n", example)
			}
		}
	}
	sb.WriteString("\n")

	w.writeSuggestions(sb, r.Suggestions)
}

// writeRecommendations writes the overall recommendations section.
func (w *TextWriter) writeRecommendations(sb *strings.Builder, recommendations []string) {
	w.sectionHeader(sb, "OVERALL RECOMMENDATIONS")
	if len(recommendations) == 0 {
		sb.WriteString("  Nothing major. Nice work.\n\n")
		return
	}
	for i, rec := range recommendations {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, rec)
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by docaudit\n")
	sb.WriteString("https://github.com/nao1215/docaudit\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
}
