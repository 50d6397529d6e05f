package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Document is the normalized view of one fetched documentation article.
// It owns the parsed tag tree and derives a plain-text projection from it.
// The tag tree is authoritative: the plain-text projection is always
// recomputed from the tree and never mutated independently.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML common on documentation portals
//  2. Provides a proper DOM-like structure the rewrite engine can mutate
//  3. More maintainable than complex regex patterns
type Document struct {
	// URL is the address the article was fetched from.
	URL string

	// Raw is the original markup exactly as fetched. It is never mutated;
	// Clone re-parses it to produce a fresh tree for revision.
	Raw string

	// FetchedAt records when the article was retrieved.
	FetchedAt time.Time

	// root is the parsed tag tree.
	root *html.Node
}

// NewDocument parses raw markup into a Document.
// Any well-formed-enough markup string is accepted regardless of source;
// x/net/html repairs common defects the way browsers do.
func NewDocument(url, raw string, fetchedAt time.Time) (*Document, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return &Document{
		URL:       url,
		Raw:       raw,
		FetchedAt: fetchedAt,
		root:      root,
	}, nil
}

// Clone produces a fresh Document by re-parsing the originally fetched
// markup. Revision always operates on a clone so the document under
// analysis is never mutated.
func (d *Document) Clone() (*Document, error) {
	return NewDocument(d.URL, d.Raw, d.FetchedAt)
}

// Root returns the root node of the tag tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// HasContent reports whether the document holds any markup at all.
func (d *Document) HasContent() bool {
	return d != nil && strings.TrimSpace(d.Raw) != ""
}

// Render serializes the tag tree back to markup.
func (d *Document) Render() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, d.root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Hash returns the SHA-256 hex digest of the raw markup.
// Used for change detection between stored analyses of the same URL.
func (d *Document) Hash() string {
	sum := sha256.Sum256([]byte(d.Raw))
	return hex.EncodeToString(sum[:])
}

// PlainText returns the whitespace-normalized, tag-stripped text projection.
// If the document has an <article> container or a div with an "article-body"
// class, only that container's text is used; navigation and footer noise
// would otherwise skew every text metric.
func (d *Document) PlainText() string {
	container := d.articleContainer()
	if container == nil {
		container = d.root
	}
	return NodeText(container)
}

// articleContainer locates the main article body element, if any.
func (d *Document) articleContainer() *html.Node {
	if n := d.findFirst("article"); n != nil {
		return n
	}

	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "div" &&
			strings.Contains(GetAttr(n, "class"), "article-body") {
			found = n
			return false
		}
		return true
	})
	return found
}

// MainContent returns the container the assistive rewriter should work in:
// the first <article>, else <main>, else <body>, else the whole tree.
func (d *Document) MainContent() *html.Node {
	for _, name := range []string{"article", "main", "body"} {
		if n := d.findFirst(name); n != nil {
			return n
		}
	}
	return d.root
}

// Heading is one document heading with its level (1..6).
// Headings are ephemeral: they are recomputed on demand and never cached
// across mutations.
type Heading struct {
	// Text is the heading's trimmed text content in original casing.
	Text string

	// Level is the heading level, 1 through 6.
	Level int
}

// headingLevels maps heading element names to their levels.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// Headings extracts all headings with their levels in document order.
func (d *Document) Headings() []Heading {
	headings := make([]Heading, 0)
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if level, ok := headingLevels[n.Data]; ok {
				headings = append(headings, Heading{
					Text:  strings.TrimSpace(NodeText(n)),
					Level: level,
				})
			}
		}
		return true
	})
	return headings
}

// FindAll returns all element nodes whose tag name matches any of names,
// in document order.
func (d *Document) FindAll(names ...string) []*html.Node {
	return FindAll(d.root, names...)
}

// findFirst returns the first element with the given tag name.
func (d *Document) findFirst(name string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns all element nodes under root matching any of names.
func FindAll(root *html.Node, names ...string) []*html.Node {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	nodes := make([]*html.Node, 0)
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && wanted[n.Data] {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// NodeText returns the tag-stripped, whitespace-normalized text of a node
// and its descendants. Script and style contents are excluded; they are
// code, not prose.
func NodeText(root *html.Node) string {
	var sb strings.Builder
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return false
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		return true
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// GetAttr retrieves an attribute value from an HTML node.
func GetAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// walk traverses the tree depth-first. The visit function returns false to
// skip a node's children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
