package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/docaudit/internal/analyze"
	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/fetch"
	"github.com/nao1215/docaudit/internal/log"
	"github.com/nao1215/docaudit/internal/report"
)

// serveShutdownTimeout bounds graceful shutdown after a stop signal.
const serveShutdownTimeout = 5 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a small HTTP API for article analysis",
		Long: `Serve starts an HTTP server exposing article analysis as a JSON API.

Endpoints:
  POST /analyze  {"url": "https://..."} -> full report plus summary
  GET  /health   -> service status and timestamp

Examples:
  # Start the API on the default address
  docaudit serve

  # Bind to a different address
  docaudit serve --addr 0.0.0.0:8080`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultServeAddr,
		"Listen address for the HTTP API")
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Timeout for fetching each analyzed article")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docaudit in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	var err error
	cfg.ServeAddr, err = cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := loadSiteConfigs(cfg); err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runServer(ctx, cfg, logger)
}

// analyzeRequest is the body of POST /analyze.
type analyzeRequest struct {
	URL string `json:"url"`
}

// errorResponse is the JSON error body for failed API requests.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// apiServer holds the dependencies of the HTTP API handlers.
type apiServer struct {
	fetcher *fetch.Fetcher
	logger  *slog.Logger
}

// runServer starts the HTTP API and blocks until the context is cancelled.
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	api := &apiServer{
		fetcher: fetch.NewFetcher(cfg, logger),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", api.handleAnalyze)
	mux.HandleFunc("/health", api.handleHealth)

	server := &http.Server{
		Addr:              cfg.ServeAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", cfg.ServeAddr)
		fmt.Printf("docaudit API listening on http://%s\n", cfg.ServeAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleAnalyze fetches and analyzes the requested article.
func (s *apiServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "url is required"})
		return
	}

	doc, err := s.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		s.logger.Warn("fetch failed", "url", req.URL, "error", err)
		writeJSON(w, fetchStatusCode(err), errorResponse{Error: err.Error()})
		return
	}

	analysisReport := analyze.GenerateReport(doc)

	writeJSON(w, http.StatusOK, report.WrappedReport{
		Version: getVersion(),
		Report:  analysisReport,
		Summary: analysisReport.Summarize(),
	})
}

// handleHealth reports service liveness.
func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   getVersion(),
	})
}

// fetchStatusCode maps a fetch failure kind to an HTTP status code.
func fetchStatusCode(err error) int {
	switch fetch.KindOf(err) {
	case fetch.KindInvalidURL:
		return http.StatusBadRequest
	case fetch.KindTimeout:
		return http.StatusGatewayTimeout
	case fetch.KindStatus, fetch.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Response already committed
}
