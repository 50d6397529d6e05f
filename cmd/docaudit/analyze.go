package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/database"
	"github.com/nao1215/docaudit/internal/fetch"
	"github.com/nao1215/docaudit/internal/log"
	"github.com/nao1215/docaudit/internal/model"
	"github.com/nao1215/docaudit/internal/pipeline"
	"github.com/nao1215/docaudit/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [article-url]...",
		Short: "Analyze documentation articles for quality issues",
		Long: `Analyze fetches documentation articles and grades them on four dimensions:

- Readability (Flesch reading ease, sentence length, technical terms)
- Structure (headings, paragraphs, lists, heading hierarchy)
- Completeness (examples, images, prerequisites, step-by-step coverage)
- Style guidelines (voice, contractions, verbose phrases, Oxford commas)

Examples:
  # Analyze a single article
  docaudit analyze https://help.moengage.com/hc/en-us/articles/360035366211

  # Analyze multiple articles concurrently
  docaudit analyze https://example.com/a https://example.com/b

  # Output JSON report
  docaudit analyze --json https://example.com/a

  # Write a Markdown report to a file
  docaudit analyze --markdown --output report.md https://example.com/a

  # Save the analysis to the history store for later comparison
  docaudit analyze --save https://example.com/a

Configuration file (.docaudit) example:
  expectedHosts:
    - docs.example.com
  sites:
    docs.example.com:
      cookie: "session_id=abc123"
      headers:
        Authorization: "Bearer token"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Timeout for fetching each article")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docaudit in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().BoolP("save", "s", false,
		"Save the analysis to the history store (enables 'docaudit compare')")
	cmd.Flags().String("db-dir", "",
		"Directory for the history database (default: XDG data directory)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runAnalysis(ctx, cfg, logger)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
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

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Targets = args

	return cfg, nil
}

// loadSiteConfigs populates cfg.SiteConfigs from the configuration file.
// If the user explicitly specified a config file path, error if not found.
// If no path was specified, silently use an empty config when no file exists.
func loadSiteConfigs(cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		siteConfigs, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.SiteConfigs = siteConfigs
		return nil
	}

	if explicitConfigPath {
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.SiteConfigs = &config.File{
		Sites: make(map[string]config.SiteConfig),
	}
	return nil
}

// runAnalysis executes the analysis.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"targets", cfg.Targets,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	factory := func() *pipeline.Pipeline {
		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(
			pipeline.NewFetchStep(fetch.NewFetcher(cfg, logger)),
			pipeline.NewAnalyzeStep(logger),
		)
		if db != nil {
			p.AddStep(pipeline.NewPersistStep(db, logger))
		}
		return p
	}

	// Batch processing for multiple targets
	if len(cfg.Targets) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalysis(ctx, cfg, factory, logger)
	}

	// Single target or sequential processing
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		run := pipeline.NewRun(target)
		startTime := time.Now()

		if err := factory().Execute(ctx, run); err != nil {
			logger.Error("analysis failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", target, err)
			continue
		}

		logger.Debug("analysis finished",
			"target", target,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		if err := outputReport(cfg, run.Report); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// runBatchAnalysis analyzes multiple targets concurrently using BatchProcessor.
func runBatchAnalysis(ctx context.Context, cfg *config.Config, factory func() *pipeline.Pipeline, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d articles (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(factory,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	runs, err := bp.ProcessBatch(ctx, cfg.Targets)
	if err != nil {
		return err
	}

	for i, run := range runs {
		if run == nil {
			continue
		}
		if run.Err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] Analysis error for %s: %v\n",
				i+1, len(runs), run.URL, run.Err)
			continue
		}

		fmt.Printf("[%d/%d] Analysis completed: %s\n", i+1, len(runs), run.URL)
		if err := outputReport(cfg, run.Report); err != nil {
			logger.Error("report failed", "target", run.URL, "error", err)
		}
	}

	fmt.Printf("\nBatch analysis completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, analysisReport *model.Report) error {
	output, closeOutput, err := reportDestination(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output)
	_, err = writer.Write(analysisReport)
	return err
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output *os.File) report.Writer {
	if cfg.JSONReport {
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	}
	if cfg.MarkdownReport {
		return report.NewMarkdownWriter(output)
	}
	return report.NewTextWriter(output)
}

// reportDestination opens the report output file, or returns stdout when no
// file is configured. The returned close function is a no-op for stdout.
func reportDestination(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
