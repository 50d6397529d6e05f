package revise

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/fetch"
	"github.com/nao1215/docaudit/internal/model"
	"github.com/nao1215/docaudit/internal/ollama"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const articleHTML = `<html><body><article>
<h2>Create Your First Campaign</h2>
<p>It is simple. You cannot break anything. Use emails, texts and pushes.</p>
</article></body></html>`

func newAgent(t *testing.T, cfg *config.Config) *Agent {
	t.Helper()
	fetcher := fetch.NewFetcher(cfg, discardLogger())
	shim := ollama.NewShim(context.Background(), ollama.NewClient(cfg), discardLogger(), false)
	return NewAgent(fetcher, shim, discardLogger())
}

func TestAgentRevise(t *testing.T) {
	t.Parallel()

	t.Run("unreachable assistive backend still yields a full result", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, articleHTML)
		}))
		defer server.Close()

		cfg := config.NewConfig()
		cfg.OllamaURL = "http://127.0.0.1:1" // probe must fail, not raise

		result, err := newAgent(t, cfg).Revise(context.Background(), server.URL, nil)
		if err != nil {
			t.Fatalf("Revise() error = %v", err)
		}

		if result.URL != server.URL {
			t.Errorf("URL = %q, want %q", result.URL, server.URL)
		}
		if result.OriginalContent != articleHTML {
			t.Error("OriginalContent does not match the fetched markup")
		}
		if !strings.Contains(result.RevisedContent, "it's simple") {
			t.Errorf("RevisedContent missing contraction: %s", result.RevisedContent)
		}
		if !strings.Contains(result.RevisedContent, "can't break") {
			t.Errorf("RevisedContent missing contraction: %s", result.RevisedContent)
		}
		if !strings.Contains(result.RevisedContent, "emails, texts, and pushes") {
			t.Errorf("RevisedContent missing Oxford comma: %s", result.RevisedContent)
		}
		if !strings.Contains(result.RevisedContent, "Create your first campaign") {
			t.Errorf("RevisedContent missing heading fix: %s", result.RevisedContent)
		}

		summary := result.RevisionSummary
		if summary.RevisionCategories.AssistedEnhancements != "Not available (no Ollama)" {
			t.Errorf("AssistedEnhancements = %q, want unavailable marker",
				summary.RevisionCategories.AssistedEnhancements)
		}
		for _, statement := range result.SuggestionsApplied {
			if strings.Contains(statement, "AI-assisted") {
				t.Errorf("unexpected AI statement without a backend: %q", statement)
			}
		}
	})

	t.Run("fetch failure surfaces the classified error", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.OllamaURL = "http://127.0.0.1:1"

		_, err := newAgent(t, cfg).Revise(context.Background(), "not a url", nil)
		if fetch.KindOf(err) != fetch.KindInvalidURL {
			t.Errorf("KindOf(err) = %q, want %q", fetch.KindOf(err), fetch.KindInvalidURL)
		}
	})

	t.Run("analysis under revision never mutates the original", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, articleHTML)
		}))
		defer server.Close()

		cfg := config.NewConfig()
		cfg.OllamaURL = "http://127.0.0.1:1"

		result, err := newAgent(t, cfg).Revise(context.Background(), server.URL, nil)
		if err != nil {
			t.Fatalf("Revise() error = %v", err)
		}
		if !strings.Contains(result.OriginalContent, "It is simple.") {
			t.Error("OriginalContent was mutated by the revision")
		}
	})

	t.Run("available backend contributes the assisted pass", func(t *testing.T) {
		t.Parallel()

		long := strings.TrimSpace(strings.Repeat("the campaign report can be viewed after the send completes ", 4))
		page := "<html><body><article><p>" + long + "</p></article></body></html>"

		ollamaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/tags":
				io.WriteString(w, `{"models":[{"name":"llama3.2:3b"}]}`)
			case "/api/generate":
				io.WriteString(w, `{"response":"View the campaign report after the send completes."}`)
			}
		}))
		defer ollamaServer.Close()

		docServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, page)
		}))
		defer docServer.Close()

		cfg := config.NewConfig()
		cfg.OllamaURL = ollamaServer.URL

		result, err := newAgent(t, cfg).Revise(context.Background(), docServer.URL, nil)
		if err != nil {
			t.Fatalf("Revise() error = %v", err)
		}

		if !strings.Contains(result.RevisedContent, "View the campaign report") {
			t.Errorf("RevisedContent missing assisted rewrite: %s", result.RevisedContent)
		}

		found := false
		for _, statement := range result.SuggestionsApplied {
			if statement == "Applied AI-assisted improvements: enhanced active voice and clarity" {
				found = true
			}
		}
		if !found {
			t.Errorf("SuggestionsApplied = %v, want AI statement", result.SuggestionsApplied)
		}
		if got := result.RevisionSummary.RevisionCategories.AssistedEnhancements; got != "Enhanced clarity and active voice" {
			t.Errorf("AssistedEnhancements = %q, want enabled marker", got)
		}
	})
}

func TestAppliedSuggestions(t *testing.T) {
	t.Parallel()

	report := &model.Report{
		StyleGuidelines: model.StyleResult{
			Assessment: &model.StyleAssessment{
				StyleGuide: model.StyleGuideAssessment{
					VerbosePhrases: model.CheckResult{
						Count:   2,
						Message: "Found 2 verbose phrases that can be simplified for clearer communication.",
					},
					OxfordComma: model.CheckResult{
						Count:   1,
						Message: "Found 1 lists missing Oxford commas.",
					},
				},
			},
		},
	}

	got := AppliedSuggestions(report, true, false)
	want := []string{
		"Applied verbose phrases fixes: Found 2 verbose phrases that can be simplified for clearer communication.",
		"Applied oxford comma fixes: Found 1 lists missing Oxford commas.",
		"Applied structure improvements: broke up long paragraphs",
	}
	if len(got) != len(want) {
		t.Fatalf("AppliedSuggestions() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("AppliedSuggestions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	report := &model.Report{
		Readability: model.ReadabilityResult{Suggestions: []string{"a", "b"}},
		Structure:   model.StructureResult{Suggestions: []string{"c"}},
	}

	got := Summarize(report, 3, false)
	if got.TotalSuggestionsAnalyzed != 3 {
		t.Errorf("TotalSuggestionsAnalyzed = %d, want 3", got.TotalSuggestionsAnalyzed)
	}
	if got.SuggestionsApplied != 3 {
		t.Errorf("SuggestionsApplied = %d, want 3", got.SuggestionsApplied)
	}
	if got.AutomatedVsManual.RequiresManual != "Adding examples, technical content updates, major restructuring" {
		t.Errorf("RequiresManual = %q, want the fixed policy statement", got.AutomatedVsManual.RequiresManual)
	}
}

func TestHasLongParagraphs(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 101)
	doc, err := model.NewDocument("https://help.moengage.com/hc/articles/1",
		"<html><body><p>"+long+"</p></body></html>", time.Now())
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if !hasLongParagraphs(doc) {
		t.Error("hasLongParagraphs() = false, want true")
	}

	short, err := model.NewDocument("https://help.moengage.com/hc/articles/2",
		"<html><body><p>Short.</p></body></html>", time.Now())
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if hasLongParagraphs(short) {
		t.Error("hasLongParagraphs() = true, want false")
	}
}
