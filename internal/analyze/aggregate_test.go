package analyze

import (
	"strings"
	"testing"

	"github.com/nao1215/docaudit/internal/model"
)

func TestGenerateReport(t *testing.T) {
	t.Parallel()

	t.Run("all dimension keys present on empty document", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "   ")
		report := GenerateReport(doc)

		if report.URL == "" {
			t.Error("URL is empty")
		}
		if report.AnalysisTimestamp == "" {
			t.Error("AnalysisTimestamp is empty")
		}
		for name, errMsg := range map[string]string{
			"readability":      report.Readability.Error,
			"structure":        report.Structure.Error,
			"completeness":     report.Completeness.Error,
			"style_guidelines": report.StyleGuidelines.Error,
		} {
			if errMsg != model.NoContentError {
				t.Errorf("%s.Error = %q, want %q", name, errMsg, model.NoContentError)
			}
		}
	})

	t.Run("healthy article draws few recommendations", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body><article>
			<h1>Push campaigns</h1>
			<h2>Setup</h2>
			<p>Open the dashboard. Pick a channel. Save your work. For example, choose push. Such as this sample here.</p>
			<h2>Using segments</h2>
			<p>Pick a segment. Send the campaign. Check the report when done.</p>
		</article></body></html>`)

		report := GenerateReport(doc)
		for _, rec := range report.OverallRecommendations {
			if strings.Contains(rec, "Improve readability") {
				t.Errorf("unexpected readability recommendation: %q", rec)
			}
			if strings.Contains(rec, "more headings") {
				t.Errorf("unexpected structure recommendation: %q", rec)
			}
		}
	})
}

func TestOverallRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("all six rules co-fire", func(t *testing.T) {
		t.Parallel()

		report := &model.Report{
			Readability: model.ReadabilityResult{
				Assessment: &model.ReadabilityAssessment{FleschReadingEase: 40},
			},
			Structure: model.StructureResult{
				Assessment: &model.StructureAssessment{HeadingsCount: 1},
			},
			Completeness: model.CompletenessResult{
				Assessment: &model.CompletenessAssessment{ExampleMentions: 0},
			},
			StyleGuidelines: model.StyleResult{
				Assessment: &model.StyleAssessment{
					VoiceTone: model.VoiceToneAnalysis{PassiveVoicePercentage: 35},
					StyleGuide: model.StyleGuideAssessment{
						VerbosePhrases:    model.CheckResult{Count: 12},
						WeakConstructions: model.CheckResult{Count: 6},
					},
				},
			},
		}

		got := OverallRecommendations(report)
		want := []string{
			"HIGH PRIORITY: Improve readability by simplifying language and sentence structure.",
			"HIGH PRIORITY: Add practical examples to illustrate concepts.",
			"HIGH PRIORITY: Address style guide violations for better user experience.",
			"MEDIUM PRIORITY: Improve article structure with more headings and sections.",
			"MEDIUM PRIORITY: Replace weak writing constructions with direct, action-oriented language.",
			"MEDIUM PRIORITY: Revise passive voice constructions to active voice.",
		}
		if len(got) != len(want) {
			t.Fatalf("OverallRecommendations() = %v, want %v", got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("OverallRecommendations()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("style tier drops to medium between six and fifteen", func(t *testing.T) {
		t.Parallel()

		report := &model.Report{
			Readability: model.ReadabilityResult{
				Assessment: &model.ReadabilityAssessment{FleschReadingEase: 80},
			},
			Structure: model.StructureResult{
				Assessment: &model.StructureAssessment{HeadingsCount: 4},
			},
			Completeness: model.CompletenessResult{
				Assessment: &model.CompletenessAssessment{ExampleMentions: 3},
			},
			StyleGuidelines: model.StyleResult{
				Assessment: &model.StyleAssessment{
					StyleGuide: model.StyleGuideAssessment{
						OxfordComma: model.CheckResult{Count: 8},
					},
				},
			},
		}

		got := OverallRecommendations(report)
		if len(got) != 1 {
			t.Fatalf("OverallRecommendations() = %v, want exactly one", got)
		}
		want := "MEDIUM PRIORITY: Improve compliance with style guide principles."
		if got[0] != want {
			t.Errorf("OverallRecommendations()[0] = %q, want %q", got[0], want)
		}
	})

	t.Run("missing completeness assessment still asks for examples", func(t *testing.T) {
		t.Parallel()

		report := &model.Report{
			Readability: model.ReadabilityResult{
				Assessment: &model.ReadabilityAssessment{FleschReadingEase: 80},
			},
			Structure: model.StructureResult{
				Assessment: &model.StructureAssessment{HeadingsCount: 4},
			},
			Completeness: model.CompletenessResult{Error: model.NoContentError},
		}

		got := OverallRecommendations(report)
		found := false
		for _, rec := range got {
			if rec == "HIGH PRIORITY: Add practical examples to illustrate concepts." {
				found = true
			}
		}
		if !found {
			t.Errorf("OverallRecommendations() = %v, want example recommendation", got)
		}
	})
}
