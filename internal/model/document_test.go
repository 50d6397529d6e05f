package model

import (
	"strings"
	"testing"
	"time"
)

func newTestDocument(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := NewDocument("https://help.moengage.com/hc/articles/1", markup, time.Now())
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	return doc
}

func TestDocumentPlainText(t *testing.T) {
	t.Parallel()

	t.Run("article container excludes navigation noise", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, `<html><body>
<nav>Home Pricing Login</nav>
<article><p>The real content.</p></article>
<footer>Copyright</footer>
</body></html>`)

		text := doc.PlainText()
		if !strings.Contains(text, "The real content.") {
			t.Errorf("PlainText() = %q, want article text", text)
		}
		if strings.Contains(text, "Pricing") || strings.Contains(text, "Copyright") {
			t.Errorf("PlainText() = %q, want navigation and footer excluded", text)
		}
	})

	t.Run("article-body div is an accepted container", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, `<html><body>
<nav>Menu</nav>
<div class="article-body"><p>Body text.</p></div>
</body></html>`)

		text := doc.PlainText()
		if !strings.Contains(text, "Body text.") || strings.Contains(text, "Menu") {
			t.Errorf("PlainText() = %q, want article-body text only", text)
		}
	})

	t.Run("whole tree without a container", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, "<html><body><p>Everything counts.</p></body></html>")
		if !strings.Contains(doc.PlainText(), "Everything counts.") {
			t.Errorf("PlainText() = %q", doc.PlainText())
		}
	})

	t.Run("script and style content is excluded", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, `<html><body>
<p>Prose.</p>
<script>var secret = "hidden";</script>
<style>.cls { color: red }</style>
</body></html>`)

		text := doc.PlainText()
		if strings.Contains(text, "secret") || strings.Contains(text, "color") {
			t.Errorf("PlainText() = %q, want script/style excluded", text)
		}
	})
}

func TestDocumentHeadings(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t, `<html><body>
<h1>Title</h1>
<h2> Padded Section </h2>
<h3>Subsection</h3>
</body></html>`)

	headings := doc.Headings()
	if len(headings) != 3 {
		t.Fatalf("Headings() returned %d headings, want 3", len(headings))
	}
	if headings[0].Level != 1 || headings[0].Text != "Title" {
		t.Errorf("headings[0] = %+v", headings[0])
	}
	if headings[1].Text != "Padded Section" {
		t.Errorf("headings[1].Text = %q, want trimmed text", headings[1].Text)
	}
	if headings[2].Level != 3 {
		t.Errorf("headings[2].Level = %d, want 3", headings[2].Level)
	}
}

func TestDocumentClone(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t, "<html><body><p>Original text.</p></body></html>")

	clone, err := doc.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	// Mutating the clone's tree must leave the original untouched.
	for _, p := range clone.FindAll("p") {
		p.FirstChild.Data = "Mutated text."
	}

	original, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(original, "Mutated text.") {
		t.Error("mutating a clone changed the original document")
	}

	mutated, err := clone.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(mutated, "Mutated text.") {
		t.Error("clone mutation did not take effect")
	}
}

func TestDocumentHasContent(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t, "<html><body><p>x</p></body></html>")
	if !doc.HasContent() {
		t.Error("HasContent() = false, want true")
	}

	empty := newTestDocument(t, "   ")
	if empty.HasContent() {
		t.Error("HasContent() = true for whitespace-only markup")
	}

	var nilDoc *Document
	if nilDoc.HasContent() {
		t.Error("HasContent() = true for nil document")
	}
}

func TestDocumentHash(t *testing.T) {
	t.Parallel()

	a := newTestDocument(t, "<html><body><p>one</p></body></html>")
	b := newTestDocument(t, "<html><body><p>one</p></body></html>")
	c := newTestDocument(t, "<html><body><p>two</p></body></html>")

	if a.Hash() != b.Hash() {
		t.Error("identical markup should hash identically")
	}
	if a.Hash() == c.Hash() {
		t.Error("different markup should hash differently")
	}
}

func TestDocumentMainContent(t *testing.T) {
	t.Parallel()

	t.Run("prefers article over main", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, "<html><body><main><article><p>inner</p></article></main></body></html>")
		if got := doc.MainContent().Data; got != "article" {
			t.Errorf("MainContent().Data = %q, want article", got)
		}
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		doc := newTestDocument(t, "<html><body><p>text</p></body></html>")
		if got := doc.MainContent().Data; got != "body" {
			t.Errorf("MainContent().Data = %q, want body", got)
		}
	})
}

func TestGetAttr(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t, `<html><body><div class="alert" id="first">x</div></body></html>`)

	divs := doc.FindAll("div")
	if len(divs) != 1 {
		t.Fatalf("FindAll(div) returned %d nodes, want 1", len(divs))
	}
	if got := GetAttr(divs[0], "class"); got != "alert" {
		t.Errorf("GetAttr(class) = %q, want alert", got)
	}
	if got := GetAttr(divs[0], "missing"); got != "" {
		t.Errorf("GetAttr(missing) = %q, want empty", got)
	}
}

func TestNodeText(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t, "<html><body><p>Spaced   <b>and</b>\nnested text.</p></body></html>")

	ps := doc.FindAll("p")
	if len(ps) != 1 {
		t.Fatalf("FindAll(p) returned %d nodes, want 1", len(ps))
	}
	if got := NodeText(ps[0]); got != "Spaced and nested text." {
		t.Errorf("NodeText() = %q, want normalized text", got)
	}
}
