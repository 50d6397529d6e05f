package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/docaudit/internal/model"
)

// minParagraphWords is the word count a paragraph must exceed before the
// shim spends a generation request on it. Short paragraphs rarely benefit.
const minParagraphWords = 20

// minImprovedLength is the generated-text length (in characters) a sanitized
// response must exceed to be accepted.
const minImprovedLength = 10

// improvePrompt instructs the backend to rewrite one paragraph. The closing
// line matters: it is the main defense against chatty responses.
const improvePrompt = `You are a technical writing expert who improves documentation clarity.

Improve the following documentation paragraph:
1. Use active voice instead of passive voice
2. Replace weak constructions like "you can" and "there is/are" with direct action
3. Simplify complex sentences
4. Make it more action-oriented and direct
5. Maintain the original meaning and technical accuracy

Original paragraph:
%s

Provide ONLY the improved paragraph text, no explanations or additional text:`

// responsePrefixes are chatty lead-ins stripped from generated text before
// use.
var responsePrefixes = []string{
	"Here's the improved paragraph:",
	"Here's an improved version:",
	"Improved paragraph:",
	"Here's the improved text:",
	"Revised version:",
	"Here's the revision:",
}

// metaLinePrefixes mark lines of commentary rather than rewritten prose.
var metaLinePrefixes = []string{"here", "this", "the revised"}

// Shim is the assistive rewrite capability. Availability is probed once at
// construction and may transition to permanently disabled when the backend
// reports it cannot serve the configured model. The flag is explicit state
// on this object; there is no process-wide toggle.
//
// A Shim is used by a single revision run; it is not safe for concurrent use.
type Shim struct {
	client    *Client
	logger    *slog.Logger
	available bool
}

// NewShim probes the backend and returns the capability object. A failed
// probe never returns an error: the shim simply starts unavailable and the
// caller proceeds with deterministic rewriting alone.
func NewShim(ctx context.Context, client *Client, logger *slog.Logger, disabled bool) *Shim {
	s := &Shim{client: client, logger: logger}
	if disabled {
		return s
	}

	s.available = s.probe(ctx)
	if !s.available {
		logger.Info("assistive backend not available, using rule-based revisions only",
			"hint", fmt.Sprintf("start the server and pull the model: ollama pull %s", client.Model()))
	}
	return s
}

// Available reports whether assistive rewriting can be attempted.
func (s *Shim) Available() bool {
	return s.available
}

// probe checks that the backend is reachable and has the configured model,
// accepting both the exact name and the ":latest" tagged form.
func (s *Shim) probe(ctx context.Context) bool {
	names, err := s.client.ListModels(ctx)
	if err != nil {
		s.logger.Debug("assistive backend probe failed", "error", err)
		return false
	}

	for _, name := range names {
		if name == s.client.Model() || name == s.client.Model()+":latest" {
			s.logger.Debug("assistive backend available", "model", s.client.Model())
			return true
		}
	}

	s.logger.Warn("assistive backend reachable but model not found",
		"model", s.client.Model(), "available", names)
	return false
}

// ImproveParagraphs rewrites the substantial paragraphs of the document's
// main content in place and returns how many were improved. Paragraph-level
// failures skip that paragraph; model-level failures (HTTP 400/404) disable
// the shim for the rest of the run.
func (s *Shim) ImproveParagraphs(ctx context.Context, doc *model.Document) int {
	if !s.available {
		return 0
	}

	improved := 0
	for _, p := range model.FindAll(doc.MainContent(), "p") {
		if !s.available {
			break
		}

		text := strings.TrimSpace(model.NodeText(p))
		if len(strings.Fields(text)) <= minParagraphWords {
			continue
		}

		revised, ok := s.improveParagraph(ctx, text)
		if !ok {
			continue
		}

		replaceChildren(p, &html.Node{Type: html.TextNode, Data: revised})
		improved++
	}
	return improved
}

// improveParagraph asks the backend to rewrite one paragraph and sanitizes
// the answer. The second return value is false when the paragraph should be
// left as-is.
func (s *Shim) improveParagraph(ctx context.Context, text string) (string, bool) {
	raw, err := s.client.Generate(ctx, fmt.Sprintf(improvePrompt, text))
	if err != nil {
		s.handleGenerateError(err, text)
		return "", false
	}

	revised, ok := sanitize(raw, text)
	if !ok {
		s.logger.Debug("generated text discarded by sanitizer", "paragraph", snippet(text))
		return "", false
	}

	s.logger.Debug("paragraph improved", "from", snippet(text), "to", snippet(revised))
	return revised, true
}

// handleGenerateError classifies a generation failure. A client-error status
// means every further request would fail the same way (misconfiguration), so
// the shim disables itself; rate limiting and everything else is
// paragraph-local.
func (s *Shim) handleGenerateError(err error, text string) {
	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == http.StatusTooManyRequests:
			s.logger.Warn("assistive backend rate limited, skipping paragraph")
		case se.StatusCode >= 400 && se.StatusCode < 500:
			s.available = false
			s.logger.Warn("assistive backend rejected the request, disabling assistive rewrites",
				"status", se.StatusCode)
		default:
			s.logger.Warn("assistive rewrite failed, skipping paragraph",
				"status", se.StatusCode, "body", se.Body)
		}
		return
	}
	s.logger.Warn("assistive rewrite failed, skipping paragraph",
		"error", err, "paragraph", snippet(text))
}

// sanitize extracts usable rewritten prose from a raw backend response.
// Best effort: any response may be discarded when no line survives the
// cleanup, and callers must treat discards as normal.
func sanitize(raw, original string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || text == original {
		return "", false
	}

	for _, prefix := range responsePrefixes {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}

	if strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) && len(text) >= 2 {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	// Keep only the first line of prose, skipping commentary lines.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isMetaLine(line) {
			continue
		}
		text = line
		break
	}

	if len(text) <= minImprovedLength || text == original {
		return "", false
	}
	return text, true
}

// isMetaLine reports whether a line looks like backend commentary.
func isMetaLine(line string) bool {
	folded := strings.ToLower(line)
	for _, prefix := range metaLinePrefixes {
		if strings.HasPrefix(folded, prefix) {
			return true
		}
	}
	return false
}

// replaceChildren removes all children of n and appends the given node.
func replaceChildren(n *html.Node, child *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(child)
}

// snippet shortens text for log output.
func snippet(text string) string {
	const max = 50
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
