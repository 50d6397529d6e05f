package rewrite

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

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

// sentenceOfWords builds one sentence of n words ending in a period.
func sentenceOfWords(n int) string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("w%d", i))
	}
	return strings.Join(words, " ") + "."
}

func countElements(root *html.Node) map[string]int {
	counts := make(map[string]int)
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return counts
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all four passes report their changes", func(t *testing.T) {
		t.Parallel()

		long := sentenceOfWords(40) + " " + sentenceOfWords(40) + " " + sentenceOfWords(40)
		doc := mustDocument(t, `<html><body><article>
			<h2>Create Your First Campaign.</h2>
			<p>It is important that you do not skip this.  Use emails, texts and pushes.</p>
			<p>`+long+`</p>
		</article></body></html>`)

		stats := Apply(doc)
		if stats.TextNodesRewritten == 0 {
			t.Error("TextNodesRewritten = 0, want > 0")
		}
		if stats.HeadingsFixed != 1 {
			t.Errorf("HeadingsFixed = %d, want 1", stats.HeadingsFixed)
		}
		if stats.OxfordCommasAdded != 1 {
			t.Errorf("OxfordCommasAdded = %d, want 1", stats.OxfordCommasAdded)
		}
		if stats.ParagraphsSplit != 1 {
			t.Errorf("ParagraphsSplit = %d, want 1", stats.ParagraphsSplit)
		}
		if !stats.Any() {
			t.Error("Any() = false, want true")
		}

		rendered, err := doc.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(rendered, "it's important") {
			t.Errorf("rendered output missing contraction: %s", rendered)
		}
		if !strings.Contains(rendered, "don't skip") {
			t.Errorf("rendered output missing contraction: %s", rendered)
		}
		if !strings.Contains(rendered, "emails, texts, and pushes") {
			t.Errorf("rendered output missing Oxford comma: %s", rendered)
		}
	})

	t.Run("tags and attributes outside paragraphs and headings survive", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body><article>
			<div class="article-body">
				<p>You cannot skip the <a href="https://example.com/docs" target="_blank">linked guide</a>.</p>
				<ul><li>First</li><li>Second</li></ul>
				<img src="flow.png" alt="flow">
			</div>
		</article></body></html>`)

		before := countElements(doc.Root())
		Apply(doc)
		after := countElements(doc.Root())

		for name, count := range before {
			if after[name] != count {
				t.Errorf("element %q count changed: %d -> %d", name, count, after[name])
			}
		}

		var link *html.Node
		for _, n := range model.FindAll(doc.Root(), "a") {
			link = n
		}
		if link == nil {
			t.Fatal("link element disappeared")
		}
		if got := model.GetAttr(link, "href"); got != "https://example.com/docs" {
			t.Errorf("link href = %q, want unchanged", got)
		}
		if got := model.GetAttr(link, "target"); got != "_blank" {
			t.Errorf("link target = %q, want unchanged", got)
		}
	})

	t.Run("text rules reach a fixed point after one run", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body>
			<h2>Configure The Dashboard Now.</h2>
			<p>It is ready in order to sync.  Use emails, texts and pushes.</p>
		</body></html>`)

		Apply(doc)
		second := Apply(doc)

		if second.TextNodesRewritten != 0 {
			t.Errorf("second run TextNodesRewritten = %d, want 0", second.TextNodesRewritten)
		}
		if second.HeadingsFixed != 0 {
			t.Errorf("second run HeadingsFixed = %d, want 0", second.HeadingsFixed)
		}
		if second.OxfordCommasAdded != 0 {
			t.Errorf("second run OxfordCommasAdded = %d, want 0", second.OxfordCommasAdded)
		}
	})

	t.Run("unbalanced split halves may split again", func(t *testing.T) {
		t.Parallel()

		sentences := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			sentences = append(sentences, sentenceOfWords(40))
		}
		doc := mustDocument(t, "<html><body><p>"+strings.Join(sentences, " ")+"</p></body></html>")

		first := Apply(doc)
		if first.ParagraphsSplit != 1 {
			t.Fatalf("first run ParagraphsSplit = %d, want 1", first.ParagraphsSplit)
		}

		// Both halves are still over 100 words with 3+ sentences each, so a
		// second run keeps splitting. Accepted non-idempotence.
		second := Apply(doc)
		if second.ParagraphsSplit != 2 {
			t.Errorf("second run ParagraphsSplit = %d, want 2", second.ParagraphsSplit)
		}
	})
}

func TestSplitLongParagraphs(t *testing.T) {
	t.Parallel()

	t.Run("101 words across three sentences split into exactly two paragraphs", func(t *testing.T) {
		t.Parallel()

		text := sentenceOfWords(34) + " " + sentenceOfWords(34) + " " + sentenceOfWords(33)
		doc := mustDocument(t, "<html><body><article><p>"+text+"</p></article></body></html>")

		if got := splitLongParagraphs(doc.Root()); got != 1 {
			t.Fatalf("splitLongParagraphs() = %d, want 1", got)
		}

		paragraphs := doc.FindAll("p")
		if len(paragraphs) != 2 {
			t.Fatalf("paragraph count = %d, want 2", len(paragraphs))
		}

		joined := model.NodeText(paragraphs[0]) + " " + model.NodeText(paragraphs[1])
		if strings.Join(strings.Fields(joined), " ") != strings.Join(strings.Fields(text), " ") {
			t.Errorf("split lost content:\n got: %s\nwant: %s", joined, text)
		}
	})

	t.Run("long paragraph with two sentences is not split", func(t *testing.T) {
		t.Parallel()

		text := sentenceOfWords(60) + " " + sentenceOfWords(60)
		doc := mustDocument(t, "<html><body><p>"+text+"</p></body></html>")

		if got := splitLongParagraphs(doc.Root()); got != 0 {
			t.Fatalf("splitLongParagraphs() = %d, want 0", got)
		}
		if paragraphs := doc.FindAll("p"); len(paragraphs) != 1 {
			t.Errorf("paragraph count = %d, want 1", len(paragraphs))
		}
	})

	t.Run("short paragraph untouched", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, "<html><body><p>Short. Sweet. Done.</p></body></html>")
		if got := splitLongParagraphs(doc.Root()); got != 0 {
			t.Fatalf("splitLongParagraphs() = %d, want 0", got)
		}
	})
}
