package analyze

import (
	"strings"
	"testing"

	"github.com/nao1215/docaudit/internal/model"
)

func TestStructure(t *testing.T) {
	t.Parallel()

	t.Run("no content returns error marker", func(t *testing.T) {
		t.Parallel()

		got := Structure(nil)
		if got.Error != model.NoContentError {
			t.Errorf("Structure(nil).Error = %q, want %q", got.Error, model.NoContentError)
		}
	})

	t.Run("counts structural elements", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body><article>
			<h1>Push campaigns</h1>
			<h2>Setup</h2>
			<p>Create a campaign.</p>
			<h2>Using segments</h2>
			<p>Pick a segment.</p>
			<ul><li>One</li><li>Two</li></ul>
			<pre>config: value</pre>
			<img src="a.png">
		</article></body></html>`)

		got := Structure(doc)
		if got.Error != "" {
			t.Fatalf("Structure() unexpected error %q", got.Error)
		}

		a := got.Assessment
		if a.HeadingsCount != 3 {
			t.Errorf("HeadingsCount = %d, want 3", a.HeadingsCount)
		}
		if a.ParagraphsCount != 2 {
			t.Errorf("ParagraphsCount = %d, want 2", a.ParagraphsCount)
		}
		if a.ListsCount != 1 {
			t.Errorf("ListsCount = %d, want 1", a.ListsCount)
		}
		if a.CodeBlocksCount != 1 {
			t.Errorf("CodeBlocksCount = %d, want 1", a.CodeBlocksCount)
		}
		if a.ImagesCount != 1 {
			t.Errorf("ImagesCount = %d, want 1", a.ImagesCount)
		}
		if !a.HeadingHierarchy.IsValid {
			t.Errorf("HeadingHierarchy.IsValid = false, want true: %s", a.HeadingHierarchy.Issue)
		}
	})

	t.Run("hierarchy jump reports first violation only", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body>
			<h1>Title</h1><h3>Skipped once</h3><h1>Back</h1><h4>Skipped again</h4>
		</body></html>`)

		got := Structure(doc)
		hierarchy := got.Assessment.HeadingHierarchy
		if hierarchy.IsValid {
			t.Fatal("HeadingHierarchy.IsValid = true, want false")
		}
		want := "Heading hierarchy jumps from H1 to H3. Use sequential heading levels."
		if hierarchy.Issue != want {
			t.Errorf("HeadingHierarchy.Issue = %q, want %q", hierarchy.Issue, want)
		}

		found := false
		for _, s := range got.Suggestions {
			if strings.Contains(s, "Heading hierarchy is inconsistent. "+want) {
				found = true
			}
		}
		if !found {
			t.Errorf("Suggestions = %v, want hierarchy suggestion", got.Suggestions)
		}
	})

	t.Run("few headings and no lists are flagged", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<html><body><h1>Only heading</h1>")
		for i := 0; i < 6; i++ {
			sb.WriteString("<p>A short paragraph about campaigns.</p>")
		}
		sb.WriteString("</body></html>")

		got := Structure(mustDocument(t, sb.String()))

		wantFragments := []string{
			"needs more headings",
			"No lists found",
		}
		for _, fragment := range wantFragments {
			found := false
			for _, s := range got.Suggestions {
				if strings.Contains(s, fragment) {
					found = true
				}
			}
			if !found {
				t.Errorf("Suggestions = %v, want one containing %q", got.Suggestions, fragment)
			}
		}
	})
}

func TestFlowSuggestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headings []model.Heading
		want     []string
	}{
		{
			name: "usage without setup",
			headings: []model.Heading{
				{Text: "Using the dashboard", Level: 2},
			},
			want: []string{"Consider adding a 'Setup' or 'Configuration' section before explaining usage."},
		},
		{
			name: "setup precedes usage",
			headings: []model.Heading{
				{Text: "Configure the SDK", Level: 2},
				{Text: "Using the dashboard", Level: 2},
			},
			want: []string{},
		},
		{
			name: "long article without conclusion",
			headings: []model.Heading{
				{Text: "Overview", Level: 2},
				{Text: "Setup", Level: 2},
				{Text: "Campaigns", Level: 2},
				{Text: "Segments", Level: 2},
				{Text: "Reports", Level: 2},
				{Text: "Troubleshooting", Level: 2},
			},
			want: []string{"Consider adding a 'Next Steps' or 'Summary' section to conclude the article."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := flowSuggestions(tt.headings)
			if len(got) != len(tt.want) {
				t.Fatalf("flowSuggestions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("flowSuggestions()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
