package rewrite

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/docaudit/internal/metrics"
	"github.com/nao1215/docaudit/internal/model"
)

const (
	// maxParagraphWords is the word count above which a paragraph is split.
	maxParagraphWords = 100

	// minSentencesToSplit is the sentence count a paragraph must exceed to
	// be splittable at a sentence boundary.
	minSentencesToSplit = 2
)

// ChangeStats counts what each pass changed. The revision reporter uses it
// to reconcile attempted vs applied fixes.
type ChangeStats struct {
	// TextNodesRewritten is the number of text nodes changed by the
	// contraction/verbose/spacing pass.
	TextNodesRewritten int

	// HeadingsFixed is the number of headings whose case or punctuation
	// changed.
	HeadingsFixed int

	// OxfordCommasAdded is the number of comma insertions, not nodes.
	OxfordCommasAdded int

	// ParagraphsSplit is the number of long paragraphs broken in two.
	ParagraphsSplit int
}

// Any reports whether any pass changed anything.
func (s ChangeStats) Any() bool {
	return s.TextNodesRewritten > 0 || s.HeadingsFixed > 0 ||
		s.OxfordCommasAdded > 0 || s.ParagraphsSplit > 0
}

// Apply runs the four deterministic passes over the document's tag tree, in
// order: text-node rules, heading fixes, Oxford commas, paragraph splitting.
// Each pass completes before the next begins so later passes see the effects
// of earlier ones. The document is mutated in place; callers revise a clone,
// never the document under analysis.
//
// Every pass collects its target nodes first and mutates afterwards, so the
// traversal never iterates a tree it is changing.
func Apply(doc *model.Document) ChangeStats {
	stats := ChangeStats{}
	root := doc.Root()

	stats.TextNodesRewritten = rewriteTextNodes(root)
	stats.HeadingsFixed = fixHeadings(root)
	stats.OxfordCommasAdded = addOxfordCommas(root)
	stats.ParagraphsSplit = splitLongParagraphs(root)

	return stats
}

// rewriteTextNodes applies the text rule chain to every prose text node.
func rewriteTextNodes(root *html.Node) int {
	type change struct {
		node *html.Node
		text string
	}

	changes := make([]change, 0)
	for _, n := range textNodes(root) {
		if revised := RewriteText(n.Data); revised != n.Data {
			changes = append(changes, change{node: n, text: revised})
		}
	}

	for _, c := range changes {
		c.node.Data = c.text
	}
	return len(changes)
}

// fixHeadings folds heading text to sentence case and strips stray
// punctuation. A changed heading's children are replaced by a single text
// node; inline markup inside headings does not survive the fix.
func fixHeadings(root *html.Node) int {
	fixed := 0
	for _, h := range model.FindAll(root, "h1", "h2", "h3", "h4", "h5", "h6") {
		text := strings.TrimSpace(model.NodeText(h))
		if text == "" {
			continue
		}

		revised := FixHeading(text)
		if revised == text {
			continue
		}

		replaceChildren(h, &html.Node{Type: html.TextNode, Data: revised})
		fixed++
	}
	return fixed
}

// addOxfordCommas inserts missing Oxford commas in every prose text node.
func addOxfordCommas(root *html.Node) int {
	type change struct {
		node *html.Node
		text string
	}

	total := 0
	changes := make([]change, 0)
	for _, n := range textNodes(root) {
		revised, count := AddOxfordCommas(n.Data)
		if count == 0 {
			continue
		}
		total += count
		changes = append(changes, change{node: n, text: revised})
	}

	for _, c := range changes {
		c.node.Data = c.text
	}
	return total
}

// splitLongParagraphs breaks paragraphs of over 100 words in two at the
// sentence boundary nearest the middle. Paragraphs with two or fewer
// sentences are left alone; there is no clean place to cut them.
func splitLongParagraphs(root *html.Node) int {
	split := 0
	for _, p := range model.FindAll(root, "p") {
		text := strings.TrimSpace(model.NodeText(p))
		if len(strings.Fields(text)) <= maxParagraphWords {
			continue
		}

		sentences := metrics.SplitSentences(text)
		if len(sentences) <= minSentencesToSplit {
			continue
		}

		mid := len(sentences) / 2
		first := newParagraph(strings.Join(sentences[:mid], " "))
		second := newParagraph(strings.Join(sentences[mid:], " "))

		parent := p.Parent
		parent.InsertBefore(first, p)
		parent.InsertBefore(second, p)
		parent.RemoveChild(p)
		split++
	}
	return split
}

// textNodes collects all text nodes outside script and style elements.
func textNodes(root *html.Node) []*html.Node {
	nodes := make([]*html.Node, 0)
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return nodes
}

// replaceChildren removes all children of n and appends the given node.
func replaceChildren(n *html.Node, child *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(child)
}

// newParagraph builds a <p> element holding a single text node.
func newParagraph(text string) *html.Node {
	p := &html.Node{Type: html.ElementNode, Data: "p"}
	p.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return p
}
