package revise

import (
	"context"
	"log/slog"

	"github.com/nao1215/docaudit/internal/analyze"
	"github.com/nao1215/docaudit/internal/fetch"
	"github.com/nao1215/docaudit/internal/model"
	"github.com/nao1215/docaudit/internal/ollama"
	"github.com/nao1215/docaudit/internal/rewrite"
)

// Agent coordinates a complete revision run: fetch, analyze (when the caller
// has no report yet), deterministic rewriting, and the optional assistive
// pass.
type Agent struct {
	fetcher *fetch.Fetcher
	shim    *ollama.Shim
	logger  *slog.Logger
}

// NewAgent creates an Agent. The shim may be nil when assistive rewriting is
// disabled outright; a probed-but-unavailable shim works equally well.
func NewAgent(fetcher *fetch.Fetcher, shim *ollama.Shim, logger *slog.Logger) *Agent {
	return &Agent{fetcher: fetcher, shim: shim, logger: logger}
}

// Revise fetches the article at url and produces its revision. When report
// is nil the agent analyzes the document itself so it can reconcile the
// applied fixes against suggestions; callers that already analyzed pass
// their report to avoid duplicate work.
//
// Revision always operates on a clone of the fetched document: the analyzed
// tree is never mutated.
func (a *Agent) Revise(ctx context.Context, url string, report *model.Report) (*model.RevisionResult, error) {
	doc, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if report == nil {
		report = analyze.GenerateReport(doc)
	}

	// Decided against the original, not the revised tree: splitting the
	// paragraphs must not erase the fact that they needed splitting.
	hadLongParagraphs := hasLongParagraphs(doc)

	revised, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	stats := rewrite.Apply(revised)
	a.logger.Debug("deterministic passes complete",
		"url", url,
		"text_nodes_rewritten", stats.TextNodesRewritten,
		"headings_fixed", stats.HeadingsFixed,
		"oxford_commas_added", stats.OxfordCommasAdded,
		"paragraphs_split", stats.ParagraphsSplit)

	if a.shim != nil && a.shim.Available() {
		improved := a.shim.ImproveParagraphs(ctx, revised)
		a.logger.Debug("assistive pass complete", "url", url, "paragraphs_improved", improved)
	}

	// The shim may have disabled itself mid-run; report assistance only if
	// it is still standing at the end.
	assisted := a.shim != nil && a.shim.Available()

	rendered, err := revised.Render()
	if err != nil {
		return nil, err
	}

	applied := AppliedSuggestions(report, hadLongParagraphs, assisted)

	return &model.RevisionResult{
		URL:                url,
		OriginalContent:    doc.Raw,
		SuggestionsApplied: applied,
		RevisedContent:     rendered,
		RevisionSummary:    Summarize(report, len(applied), assisted),
	}, nil
}
