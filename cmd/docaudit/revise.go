package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/fetch"
	"github.com/nao1215/docaudit/internal/log"
	"github.com/nao1215/docaudit/internal/model"
	"github.com/nao1215/docaudit/internal/ollama"
	"github.com/nao1215/docaudit/internal/report"
	"github.com/nao1215/docaudit/internal/revise"
)

// NewReviseCmd creates the revise command.
func NewReviseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revise [article-url]",
		Short: "Apply automated revisions to a documentation article",
		Long: `Revise fetches a documentation article, analyzes it, and applies
automated improvements:

- Deterministic style fixes (contractions, verbose phrases, spacing,
  Oxford commas, heading case and punctuation)
- Structure improvements (splitting overly long paragraphs)
- AI-assisted clarity rewrites when a local Ollama server is available

The original article is never modified; the revised markup is printed or
written to a file for human review.

Examples:
  # Revise an article and print the revision summary
  docaudit revise https://help.moengage.com/hc/en-us/articles/360035366211

  # Write the revised HTML to a file
  docaudit revise --html-output revised.html https://example.com/a

  # Output the full revision result as JSON
  docaudit revise --json https://example.com/a

  # Skip the AI-assisted pass even when Ollama is running
  docaudit revise --no-assist https://example.com/a

  # Use a different Ollama server or model
  docaudit revise --ollama-url http://192.168.1.10:11434 --ollama-model mistral https://example.com/a`,
		Args: cobra.ExactArgs(1),
		RunE: runReviseCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Timeout for fetching the article")

	// Assistive backend flags
	cmd.Flags().String("ollama-url", config.DefaultOllamaURL,
		"Base URL of the Ollama server for AI-assisted rewrites")
	cmd.Flags().String("ollama-model", config.DefaultOllamaModel,
		"Ollama model used for AI-assisted rewrites")
	cmd.Flags().Bool("no-assist", false,
		"Disable the AI-assisted pass (deterministic fixes still apply)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docaudit in current or home directory)")

	// Output flags
	cmd.Flags().BoolP("json", "j", false,
		"Output the full revision result as JSON")
	cmd.Flags().String("html-output", "",
		"Write the revised HTML to the specified file")
	cmd.Flags().StringP("output", "o", "",
		"Write the revision report to the specified file path")

	return cmd
}

// runReviseCmd executes the revise command.
func runReviseCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildReviseConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	htmlOutput, err := cmd.Flags().GetString("html-output")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runRevision(ctx, cfg, htmlOutput, logger)
}

// buildReviseConfig creates a Config from revise command flags.
func buildReviseConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.OllamaURL, err = cmd.Flags().GetString("ollama-url")
	if err != nil {
		return nil, err
	}

	cfg.OllamaModel, err = cmd.Flags().GetString("ollama-model")
	if err != nil {
		return nil, err
	}

	cfg.DisableAssist, err = cmd.Flags().GetBool("no-assist")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := loadSiteConfigs(cfg); err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Targets = args

	return cfg, nil
}

// runRevision executes the revision.
func runRevision(ctx context.Context, cfg *config.Config, htmlOutput string, logger *slog.Logger) error {
	target := cfg.Targets[0]

	logger.Info("starting revision",
		"target", target,
		"assistDisabled", cfg.DisableAssist,
	)

	fetcher := fetch.NewFetcher(cfg, logger)
	shim := ollama.NewShim(ctx, ollama.NewClient(cfg), logger, cfg.DisableAssist)
	agent := revise.NewAgent(fetcher, shim, logger)

	result, err := agent.Revise(ctx, target, nil)
	if err != nil {
		return fmt.Errorf("revision failed: %w", err)
	}

	if htmlOutput != "" {
		if err := writeRevisedHTML(htmlOutput, result); err != nil {
			return err
		}
		fmt.Printf("Revised HTML written to %s\n", htmlOutput)
	}

	return outputRevision(cfg, result)
}

// writeRevisedHTML writes the revised markup to a file for human review.
func writeRevisedHTML(path string, result *model.RevisionResult) error {
	if err := os.WriteFile(path, []byte(result.RevisedContent), 0600); err != nil {
		return fmt.Errorf("failed to write revised HTML: %w", err)
	}
	return nil
}

// revisionJSON is the JSON shape of a revision run. The original and revised
// markup are omitted; --html-output exists for reviewing the revised content.
type revisionJSON struct {
	URL                string                `json:"url"`
	SuggestionsApplied []string              `json:"suggestions_applied"`
	RevisionSummary    model.RevisionSummary `json:"revision_summary"`
}

// outputRevision outputs the revision result in the requested format.
func outputRevision(cfg *config.Config, result *model.RevisionResult) error {
	output, closeOutput, err := reportDestination(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	if cfg.JSONReport {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(revisionJSON{
			URL:                result.URL,
			SuggestionsApplied: result.SuggestionsApplied,
			RevisionSummary:    result.RevisionSummary,
		})
	}

	_, err = report.NewTextWriter(output).WriteRevision(result)
	return err
}
