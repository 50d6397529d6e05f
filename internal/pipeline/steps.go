package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/docaudit/internal/analyze"
	"github.com/nao1215/docaudit/internal/database"
	"github.com/nao1215/docaudit/internal/fetch"
)

// ErrNoDocument is returned when a step needs a fetched document but no
// earlier step produced one.
var ErrNoDocument = errors.New("pipeline: no document fetched")

// ErrNoReport is returned when a step needs an analysis report but no
// earlier step produced one.
var ErrNoReport = errors.New("pipeline: no report generated")

// FetchStep downloads the article and attaches the parsed document
// to the run.
type FetchStep struct {
	fetcher *fetch.Fetcher
}

// NewFetchStep creates a FetchStep using the given fetcher.
func NewFetchStep(fetcher *fetch.Fetcher) *FetchStep {
	return &FetchStep{fetcher: fetcher}
}

// Name returns the step's name for logging purposes.
func (s *FetchStep) Name() string { return "fetch" }

// Do fetches the article at the run's URL.
func (s *FetchStep) Do(ctx context.Context, run *Run) error {
	doc, err := s.fetcher.Fetch(ctx, run.URL)
	if err != nil {
		return err
	}
	run.Document = doc
	return nil
}

// AnalyzeStep runs all four analysis dimensions over the fetched document
// and attaches the report to the run.
type AnalyzeStep struct {
	logger *slog.Logger
}

// NewAnalyzeStep creates an AnalyzeStep.
func NewAnalyzeStep(logger *slog.Logger) *AnalyzeStep {
	return &AnalyzeStep{logger: logger}
}

// Name returns the step's name for logging purposes.
func (s *AnalyzeStep) Name() string { return "analyze" }

// Do analyzes the fetched document.
func (s *AnalyzeStep) Do(_ context.Context, run *Run) error {
	if run.Document == nil {
		return ErrNoDocument
	}

	run.Report = analyze.GenerateReport(run.Document)

	s.logger.Debug("analysis complete",
		"url", run.URL,
		"suggestions", run.Report.TotalSuggestions(),
	)
	return nil
}

// PersistStep saves the analysis report to the history store.
type PersistStep struct {
	db     *database.HistoryDB
	logger *slog.Logger
}

// NewPersistStep creates a PersistStep writing to the given store.
func NewPersistStep(db *database.HistoryDB, logger *slog.Logger) *PersistStep {
	return &PersistStep{db: db, logger: logger}
}

// Name returns the step's name for logging purposes.
func (s *PersistStep) Name() string { return "persist" }

// Do saves the run's report and records the new history record ID.
func (s *PersistStep) Do(ctx context.Context, run *Run) error {
	if run.Report == nil {
		return ErrNoReport
	}

	id, err := s.db.SaveReport(ctx, run.Report)
	if err != nil {
		return err
	}
	run.RecordID = id

	s.logger.Debug("report saved",
		"url", run.URL,
		"record_id", id,
	)
	return nil
}
