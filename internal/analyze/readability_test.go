package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/nao1215/docaudit/internal/model"
)

func mustDocument(t *testing.T, raw string) *model.Document {
	t.Helper()
	doc, err := model.NewDocument("https://help.moengage.com/hc/articles/1", raw, time.Now())
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	return doc
}

func TestInterpretFlesch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "top of ladder", score: 95, want: "Very Easy"},
		{name: "exactly ninety", score: 90, want: "Very Easy"},
		{name: "easy bucket", score: 85, want: "Easy"},
		{name: "fairly easy bucket", score: 72, want: "Fairly Easy"},
		{name: "lower bound is inclusive", score: 60, want: "Standard"},
		{name: "just below standard", score: 59.9, want: "Fairly Difficult"},
		{name: "difficult bucket", score: 35, want: "Difficult"},
		{name: "below the ladder", score: 12, want: "Very Difficult"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := interpretFlesch(tt.score).name; got != tt.want {
				t.Errorf("interpretFlesch(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestReadability(t *testing.T) {
	t.Parallel()

	t.Run("no content returns error marker", func(t *testing.T) {
		t.Parallel()

		got := Readability(nil)
		if got.Error != model.NoContentError {
			t.Errorf("Readability(nil).Error = %q, want %q", got.Error, model.NoContentError)
		}
		if got.Assessment != nil {
			t.Error("Readability(nil).Assessment should be nil")
		}
	})

	t.Run("simple prose scores as easy", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "<html><body><article><p>The cat sat on the mat. The dog ran to the park. You can see it now.</p></article></body></html>")
		got := Readability(doc)
		if got.Error != "" {
			t.Fatalf("Readability() unexpected error %q", got.Error)
		}
		if got.Assessment.FleschReadingEase < 60 {
			t.Errorf("FleschReadingEase = %v, want >= 60 for simple prose", got.Assessment.FleschReadingEase)
		}
		if !strings.Contains(got.Explanation, "Flesch score:") {
			t.Errorf("Explanation = %q, want embedded Flesch score", got.Explanation)
		}
	})

	t.Run("complex prose is flagged", func(t *testing.T) {
		t.Parallel()

		sentence := "Comprehensive organizational implementations necessitate sophisticated authentication infrastructure " +
			"considerations alongside multidimensional personalization orchestration capabilities throughout " +
			"heterogeneous communication architectures and interoperability constraints."
		doc := mustDocument(t, "<html><body><article><p>"+sentence+"</p></article></body></html>")

		got := Readability(doc)
		if got.Error != "" {
			t.Fatalf("Readability() unexpected error %q", got.Error)
		}
		if got.Assessment.FleschReadingEase >= 60 {
			t.Errorf("FleschReadingEase = %v, want < 60 for complex prose", got.Assessment.FleschReadingEase)
		}

		found := false
		for _, s := range got.Suggestions {
			if strings.Contains(s, "low readability score") {
				found = true
			}
		}
		if !found {
			t.Errorf("Suggestions = %v, want low readability suggestion", got.Suggestions)
		}
	})

	t.Run("technical terms are counted", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "<html><body><article><p>Use the API with a webhook payload. The SDK sends JSON to the endpoint.</p></article></body></html>")
		got := Readability(doc)
		if got.Error != "" {
			t.Fatalf("Readability() unexpected error %q", got.Error)
		}
		if got.Assessment.TechnicalTermsCount < 5 {
			t.Errorf("TechnicalTermsCount = %d, want >= 5", got.Assessment.TechnicalTermsCount)
		}
	})
}

func TestDifficultSentences(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 31) + "end."
	got := difficultSentences("The cat sat. " + long)
	if len(got) != 1 {
		t.Fatalf("difficultSentences() returned %d sentences, want 1", len(got))
	}
	if !strings.HasPrefix(got[0], "word word") {
		t.Errorf("difficultSentences()[0] = %q, want the long sentence", got[0])
	}
}
