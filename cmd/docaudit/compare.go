package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/database"
)

// Quality direction labels used in comparison output.
const (
	qualityDirectionImproved  = "improved"
	qualityDirectionWorsened  = "worsened"
	qualityDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares analysis results with historical data stored in
// the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [article-url]",
		Short: "Compare analysis results with historical data",
		Long: `Compare displays differences between the two most recent analyses of an
article.

This command retrieves historical analysis data from the database and shows:
- Per-dimension suggestion count changes
- The Flesch reading ease delta
- Whether overall quality improved, worsened, or stayed the same

The comparison requires at least two saved analyses for the specified URL.
Use 'docaudit analyze --save' to save analysis results.

Examples:
  # Compare the latest two analyses of an article
  docaudit compare https://help.moengage.com/hc/en-us/articles/360035366211

  # List all analysis history for an article
  docaudit compare --list https://example.com/a

  # Output comparison in JSON format
  docaudit compare --json https://example.com/a

  # List all analyzed articles in the database
  docaudit compare --list-urls`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List analysis history for the specified article URL")
	cmd.Flags().BoolP("list-urls", "L", false,
		"List all analyzed article URLs in the database")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	// Database location
	cmd.Flags().String("db-dir", "",
		"Directory for the history database (default: XDG data directory)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listURLs, err := cmd.Flags().GetBool("list-urls")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database so validation failures
	// never leave a dangling lock.
	var articleURL string
	if !listURLs {
		if len(args) == 0 {
			return errors.New("article URL is required (use --list-urls to see saved articles)")
		}
		articleURL = args[0]
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database (run 'docaudit analyze --save' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listURLs {
		return listAnalyzedURLs(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listAnalysisHistory(ctx, db, articleURL)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, articleURL, jsonOutput)
}

// listAnalyzedURLs lists all URLs with analysis records in the database.
func listAnalyzedURLs(ctx context.Context, db *database.HistoryDB) error {
	urls, err := db.ListURLs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list URLs: %w", err)
	}

	if len(urls) == 0 {
		fmt.Println("No analyzed articles found in the database.")
		fmt.Println("\nUse 'docaudit analyze --save <url>' to analyze and save an article.")
		return nil
	}

	fmt.Printf("Analyzed articles (%d):\n\n", len(urls))
	for _, url := range urls {
		fmt.Printf("  • %s\n", url)
	}
	fmt.Println("\nUse 'docaudit compare --list <url>' to see analysis history for an article.")

	return nil
}

// listAnalysisHistory lists all analysis records for a specific URL.
func listAnalysisHistory(ctx context.Context, db *database.HistoryDB, articleURL string) error {
	entries, err := db.History(ctx, articleURL)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Printf("No analysis history found for %s\n", articleURL)
		fmt.Println("\nUse 'docaudit analyze --save' to analyze this article.")
		return nil
	}

	fmt.Printf("Analysis history for %s (%d analyses):\n\n", articleURL, len(entries))
	fmt.Printf("  %-20s  %-12s  %-14s  %s\n", "Date", "Suggestions", "High Priority", "Flesch")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, entry := range entries {
		fmt.Printf("  %-20s  %-12d  %-14d  %.1f\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.TotalSuggestions,
			entry.HighPriority,
			entry.FleschScore,
		)
	}

	fmt.Println("\nUse 'docaudit compare <url>' to compare the latest two analyses.")

	return nil
}

// ComparisonResult holds the result of comparing two analysis reports.
type ComparisonResult struct {
	// URL is the analyzed article address.
	URL string `json:"url"`

	// PreviousAnalysis contains metadata about the previous analysis.
	PreviousAnalysis AnalysisMetadata `json:"previous_analysis"`

	// CurrentAnalysis contains metadata about the current analysis.
	CurrentAnalysis AnalysisMetadata `json:"current_analysis"`

	// SectionDeltas maps dimension names to the change in suggestion counts.
	SectionDeltas map[string]int `json:"section_deltas"`

	// FleschDelta is the change in Flesch reading ease (positive reads easier).
	FleschDelta float64 `json:"flesch_delta"`

	// QualityChange describes the overall change in quality.
	QualityChange QualityChange `json:"quality_change"`
}

// AnalysisMetadata contains metadata about an analysis for comparison display.
type AnalysisMetadata struct {
	// Timestamp is when the analysis was stored.
	Timestamp time.Time `json:"timestamp"`

	// TotalSuggestions is the suggestion count across all dimensions.
	TotalSuggestions int `json:"total_suggestions"`

	// HighPriority is the number of high-priority overall recommendations.
	HighPriority int `json:"high_priority"`

	// FleschScore is the Flesch reading ease score.
	FleschScore float64 `json:"flesch_score"`

	// Sections maps dimension names to their suggestion counts.
	Sections map[string]int `json:"sections"`
}

// QualityChange describes the change in quality between analyses.
type QualityChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// SuggestionsDelta is the change in total suggestion count.
	SuggestionsDelta int `json:"suggestions_delta"`

	// HighPriorityDelta is the change in high-priority recommendations.
	HighPriorityDelta int `json:"high_priority_delta"`
}

// runComparison performs the comparison between the two most recent analyses.
func runComparison(ctx context.Context, db *database.HistoryDB, articleURL string, jsonOutput bool) error {
	records, err := db.LatestReports(ctx, articleURL, 2)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(records) == 0 {
		return fmt.Errorf("no analysis history found for %s", articleURL)
	}
	if len(records) < 2 {
		return fmt.Errorf("at least 2 analyses are required for comparison (found %d)", len(records))
	}

	// Records are newest first.
	comparison := compareReports(records[1], records[0])

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	return outputComparisonText(comparison)
}

// compareReports compares two analysis records and generates a comparison result.
func compareReports(previous, current database.AnalysisRecord) *ComparisonResult {
	result := &ComparisonResult{
		URL:              current.URL,
		PreviousAnalysis: analysisMetadata(previous),
		CurrentAnalysis:  analysisMetadata(current),
		SectionDeltas:    make(map[string]int),
	}

	for section, count := range result.CurrentAnalysis.Sections {
		result.SectionDeltas[section] = count - result.PreviousAnalysis.Sections[section]
	}

	result.FleschDelta = current.FleschScore - previous.FleschScore
	result.QualityChange = calculateQualityChange(result.PreviousAnalysis, result.CurrentAnalysis)

	return result
}

// analysisMetadata extracts comparison metadata from a stored record.
func analysisMetadata(record database.AnalysisRecord) AnalysisMetadata {
	meta := AnalysisMetadata{
		Timestamp:        record.Timestamp,
		TotalSuggestions: record.TotalSuggestions,
		HighPriority:     record.HighPriority,
		FleschScore:      record.FleschScore,
		Sections:         make(map[string]int),
	}
	if record.Report != nil {
		meta.Sections = record.Report.Summarize().Sections
	}
	return meta
}

// calculateQualityChange calculates the change in quality between analyses.
// High-priority recommendations weigh heavier than plain suggestion counts.
func calculateQualityChange(previous, current AnalysisMetadata) QualityChange {
	change := QualityChange{
		SuggestionsDelta:  current.TotalSuggestions - previous.TotalSuggestions,
		HighPriorityDelta: current.HighPriority - previous.HighPriority,
	}

	previousScore := previous.HighPriority*10 + previous.TotalSuggestions
	currentScore := current.HighPriority*10 + current.TotalSuggestions

	switch {
	case currentScore < previousScore:
		change.Direction = qualityDirectionImproved
	case currentScore > previousScore:
		change.Direction = qualityDirectionWorsened
	default:
		change.Direction = qualityDirectionUnchanged
	}

	return change
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// sectionOrder is the fixed display order of analysis dimensions.
var sectionOrder = []struct {
	key   string
	label string
}{
	{"readability", "Readability"},
	{"structure", "Structure"},
	{"completeness", "Completeness"},
	{"style_guidelines", "Style"},
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Analysis Comparison: %s\n", result.URL)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nQuality Status: %s\n", formatQualityDirection(result.QualityChange.Direction))

	fmt.Printf("\nPrevious analysis: %s\n", result.PreviousAnalysis.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current analysis:  %s\n", result.CurrentAnalysis.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Println("\nSuggestions Summary:")
	fmt.Printf("  %-14s  %-10s  %-10s  %-10s\n", "Dimension", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 48))
	for _, section := range sectionOrder {
		fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", section.label,
			result.PreviousAnalysis.Sections[section.key],
			result.CurrentAnalysis.Sections[section.key],
			formatDelta(result.SectionDeltas[section.key]))
	}
	fmt.Println("  " + strings.Repeat("-", 48))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "Total",
		result.PreviousAnalysis.TotalSuggestions,
		result.CurrentAnalysis.TotalSuggestions,
		formatDelta(result.QualityChange.SuggestionsDelta))
	fmt.Printf("  %-14s  %-10d  %-10d  %-10s\n", "High Priority",
		result.PreviousAnalysis.HighPriority,
		result.CurrentAnalysis.HighPriority,
		formatDelta(result.QualityChange.HighPriorityDelta))

	fmt.Printf("\nFlesch Reading Ease: %.1f -> %.1f (%s)\n",
		result.PreviousAnalysis.FleschScore,
		result.CurrentAnalysis.FleschScore,
		formatFleschDelta(result.FleschDelta))

	return nil
}

// formatQualityDirection formats the quality change direction for display.
func formatQualityDirection(direction string) string {
	switch direction {
	case qualityDirectionImproved:
		return "IMPROVED (fewer issues)"
	case qualityDirectionWorsened:
		return "WORSENED (more issues)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}

// formatFleschDelta formats the Flesch delta. A positive delta reads easier.
func formatFleschDelta(delta float64) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%.1f, reads easier", delta)
	case delta < 0:
		return fmt.Sprintf("%.1f, reads harder", delta)
	default:
		return "no change"
	}
}
