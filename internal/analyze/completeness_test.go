package analyze

import (
	"strings"
	"testing"

	"github.com/nao1215/docaudit/internal/model"
)

func TestCompleteness(t *testing.T) {
	t.Parallel()

	t.Run("no content returns error marker", func(t *testing.T) {
		t.Parallel()

		got := Completeness(nil)
		if got.Error != model.NoContentError {
			t.Errorf("Completeness(nil).Error = %q, want %q", got.Error, model.NoContentError)
		}
	})

	t.Run("bare article is flagged on every front", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "<html><body><article><p>Configure the integration in the dashboard.</p></article></body></html>")
		got := Completeness(doc)
		if got.Error != "" {
			t.Fatalf("Completeness() unexpected error %q", got.Error)
		}

		wantFragments := []string{
			"lacks concrete examples",
			"No images or screenshots found",
			"'Prerequisites' or 'Before you begin'",
			"'Common Use Cases'",
			"Add a configuration example",
			"lacks code examples",
		}
		for _, fragment := range wantFragments {
			found := false
			for _, s := range got.Suggestions {
				if strings.Contains(s, fragment) {
					found = true
				}
			}
			if !found {
				t.Errorf("Suggestions missing fragment %q: %v", fragment, got.Suggestions)
			}
		}
	})

	t.Run("well equipped article passes", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body><article>
			<p>Before you begin, review the example scenario below. For instance, such as this sample.</p>
			<ol><li>Step 1: open settings</li></ol>
			<pre>config: {"key": "value"}</pre>
			<code>moe.track(event)</code>
			<code>moe.flush()</code>
			<img src="ui.png">
			<div class="alert note">Heads up.</div>
		</article></body></html>`)

		got := Completeness(doc)
		if got.Error != "" {
			t.Fatalf("Completeness() unexpected error %q", got.Error)
		}

		a := got.Assessment
		if a.CodeExamplesCount != 3 {
			t.Errorf("CodeExamplesCount = %d, want 3", a.CodeExamplesCount)
		}
		if a.ImagesCount != 1 {
			t.Errorf("ImagesCount = %d, want 1", a.ImagesCount)
		}
		if a.ExampleMentions < 4 {
			t.Errorf("ExampleMentions = %d, want >= 4", a.ExampleMentions)
		}
		if !a.HasStepByStep {
			t.Error("HasStepByStep = false, want true")
		}
		if a.AlertsCount != 1 {
			t.Errorf("AlertsCount = %d, want 1", a.AlertsCount)
		}
		if len(got.Suggestions) != 0 {
			t.Errorf("Suggestions = %v, want none", got.Suggestions)
		}
	})
}
