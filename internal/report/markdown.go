package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/docaudit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeReadability(md, report.Readability)
	w.writeStructure(md, report.Structure)
	w.writeCompleteness(md, report.Completeness)
	w.writeStyle(md, report.StyleGuidelines)
	w.writeRecommendations(md, report.OverallRecommendations)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteRevision outputs the revision result in Markdown format.
func (w *MarkdownWriter) WriteRevision(result *model.RevisionResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Documentation Revision Report")
	md.PlainText("")

	summary := result.RevisionSummary
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Article", result.URL},
			{"Suggestions Analyzed", strconv.Itoa(summary.TotalSuggestionsAnalyzed)},
			{"Suggestions Applied", strconv.Itoa(summary.SuggestionsApplied)},
		},
	})
	md.PlainText("")

	md.H2("Applied Improvements")
	md.PlainText("")
	if len(result.SuggestionsApplied) == 0 {
		md.PlainText("Nothing to fix automatically.")
	} else {
		md.BulletList(result.SuggestionsApplied...)
	}
	md.PlainText("")

	md.H2("Revision Coverage")
	md.PlainText("")
	categories := summary.RevisionCategories
	md.Table(markdown.TableSet{
		Header: []string{"Tier", "Coverage"},
		Rows: [][]string{
			{"Style guide", categories.StyleGuide},
			{"Structure", categories.StructureImprovements},
			{"Assisted", categories.AssistedEnhancements},
		},
	})
	md.PlainText("")

	split := summary.AutomatedVsManual
	md.Table(markdown.TableSet{
		Header: []string{"Bucket", "Scope"},
		Rows: [][]string{
			{"Automated", split.Automated},
			{"Requires manual work", split.RequiresManual},
		},
	})
	md.PlainText("")

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeHeader writes the report header with article information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Documentation Quality Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Article", report.URL},
			{"Analyzed", report.AnalysisTimestamp},
			{"Total Suggestions", strconv.Itoa(report.TotalSuggestions())},
		},
	})
	md.PlainText("")
}

// writeSummary writes the per-dimension suggestion counts with an alert
// keyed on how much work the article needs.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	summary := report.Summarize()
	md.Table(markdown.TableSet{
		Header: []string{"Dimension", "Suggestions"},
		Rows: [][]string{
			{"Readability", strconv.Itoa(summary.Sections["readability"])},
			{"Structure", strconv.Itoa(summary.Sections["structure"])},
			{"Completeness", strconv.Itoa(summary.Sections["completeness"])},
			{"Style Guidelines", strconv.Itoa(summary.Sections["style_guidelines"])},
			{"**Total**", "**" + strconv.Itoa(summary.TotalSuggestions) + "**"},
		},
	})
	md.PlainText("")

	if summary.TotalSuggestions > 0 {
		w.writePieChart(md, summary)
	}
	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart of suggestions per dimension.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Suggestions per Dimension"),
		piechart.WithShowData(true),
	)

	// Fixed order; maps iterate randomly and the chart must be stable.
	dimensions := []struct {
		key   string
		label string
	}{
		{"readability", "Readability"},
		{"structure", "Structure"},
		{"completeness", "Completeness"},
		{"style_guidelines", "Style Guidelines"},
	}
	for _, d := range dimensions {
		if n := summary.Sections[d.key]; n > 0 {
			chart.LabelAndIntValue(d.label, uint64(n))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on suggestion counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary model.Summary) {
	switch {
	case summary.HighPriority > 0:
		md.Warningf(
			"This article has %d high priority recommendation(s) that should be addressed first.",
			summary.HighPriority,
		)
	case summary.TotalSuggestions > 10:
		md.Importantf(
			"This article accumulated %d suggestions. Plan a revision pass.",
			summary.TotalSuggestions,
		)
	case summary.TotalSuggestions > 0:
		md.Note("Only minor improvements suggested.")
	default:
		md.Tip("No issues detected. The article meets the quality bar.")
	}
	md.PlainText("")
}

// dimensionError writes the degraded-dimension marker.
func (w *MarkdownWriter) dimensionError(md *markdown.Markdown, msg string) {
	md.Cautionf("Analysis failed: %s", msg)
	md.PlainText("")
}

// writeSuggestionList writes a dimension's suggestion list.
func (w *MarkdownWriter) writeSuggestionList(md *markdown.Markdown, suggestions []string) {
	if len(suggestions) == 0 {
		md.PlainText("No suggestions.")
		md.PlainText("")
		return
	}
	md.BulletList(suggestions...)
	md.PlainText("")
}

// writeReadability writes the readability dimension section.
func (w *MarkdownWriter) writeReadability(md *markdown.Markdown, r model.ReadabilityResult) {
	md.H2("Readability")
	md.PlainText("")

	if r.Error != "" {
		w.dimensionError(md, r.Error)
		return
	}

	a := r.Assessment
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Flesch Reading Ease", fmt.Sprintf("%.1f", a.FleschReadingEase)},
			{"Readability Level", a.ReadabilityLevel},
			{"Gunning Fog Index", fmt.Sprintf("%.1f", a.GunningFogIndex)},
			{"Average Sentence Length", fmt.Sprintf("%.1f words", a.AverageSentenceLength)},
			{"Technical Terms", strconv.Itoa(a.TechnicalTermsCount)},
		},
	})
	md.PlainText("")
	md.PlainText(r.Explanation)
	md.PlainText("")

	w.writeSuggestionList(md, r.Suggestions)
}

// writeStructure writes the structure dimension section.
func (w *MarkdownWriter) writeStructure(md *markdown.Markdown, r model.StructureResult) {
	md.H2("Structure")
	md.PlainText("")

	if r.Error != "" {
		w.dimensionError(md, r.Error)
		return
	}

	a := r.Assessment
	hierarchy := "✅ Valid"
	if !a.HeadingHierarchy.IsValid {
		hierarchy = "❌ " + a.HeadingHierarchy.Issue
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Headings", strconv.Itoa(a.HeadingsCount)},
			{"Paragraphs", strconv.Itoa(a.ParagraphsCount)},
			{"Lists", strconv.Itoa(a.ListsCount)},
			{"Code Blocks", strconv.Itoa(a.CodeBlocksCount)},
			{"Images", strconv.Itoa(a.ImagesCount)},
			{"Average Paragraph Length", fmt.Sprintf("%.1f words", a.AverageParagraphLength)},
			{"Heading Hierarchy", hierarchy},
		},
	})
	md.PlainText("")

	w.writeSuggestionList(md, r.Suggestions)
}

// writeCompleteness writes the completeness dimension section.
func (w *MarkdownWriter) writeCompleteness(md *markdown.Markdown, r model.CompletenessResult) {
	md.H2("Completeness")
	md.PlainText("")

	if r.Error != "" {
		w.dimensionError(md, r.Error)
		return
	}

	a := r.Assessment
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Code Examples", strconv.Itoa(a.CodeExamplesCount)},
			{"Images", strconv.Itoa(a.ImagesCount)},
			{"Example Mentions", strconv.Itoa(a.ExampleMentions)},
			{"Step-by-step Instructions", strconv.FormatBool(a.HasStepByStep)},
			{"Alerts/Notes", strconv.Itoa(a.AlertsCount)},
		},
	})
	md.PlainText("")

	w.writeSuggestionList(md, r.Suggestions)
}

// writeStyle writes the style dimension section.
func (w *MarkdownWriter) writeStyle(md *markdown.Markdown, r model.StyleResult) {
	md.H2("Style Guidelines")
	md.PlainText("")

	if r.Error != "" {
		w.dimensionError(md, r.Error)
		return
	}

	a := r.Assessment
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Passive Voice", fmt.Sprintf("%.1f%% of sentences", a.VoiceTone.PassiveVoicePercentage)},
			{"First Person Markers", strconv.Itoa(a.VoiceTone.FirstPersonCount)},
			{"Weak Verbs", strconv.Itoa(a.ActionOrientation.WeakVerbsCount)},
			{"Clear Actions", strconv.FormatBool(a.ActionOrientation.HasClearActions)},
		},
	})
	md.PlainText("")

	md.PlainText("### Style Guide Checks")
	md.PlainText("")
	checks := a.StyleGuide.Categories()
	rows := make([][]string, len(checks))
	for i, check := range checks {
		rows[i] = []string{
			strings.ReplaceAll(check.Category, "_", " "),
			strconv.Itoa(check.Result.Count),
			truncateString(check.Result.Message, 80),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Check", "Count", "Summary"},
		Rows:   rows,
	})
	md.PlainText("")

	// Collapsible example lists keep the table scannable.
	for _, check := range checks {
		if len(check.Result.Examples) == 0 {
			continue
		}
		title := strings.ReplaceAll(check.Category, "_", " ") + " examples"
		md.Details(title, strings.Join(check.Result.Examples, "<br>"))
	}
	md.PlainText("")

	w.writeSuggestionList(md, r.Suggestions)
}

// writeRecommendations writes the overall recommendations section.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, recommendations []string) {
	md.H2("Overall Recommendations")
	md.PlainText("")

	if len(recommendations) == 0 {
		md.PlainText("No cross-cutting recommendations.")
		md.PlainText("")
		return
	}

	md.BulletList(recommendations...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [docaudit](https://github.com/nao1215/docaudit)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
