package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the behavior of the original documentation analyzer
// where applicable and are tuned for public documentation portals.
const (
	// DefaultFetchTimeout is the timeout for fetching an article.
	// Documentation portals respond quickly; a short timeout keeps failed
	// fetches from stalling batch runs.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultGenerateTimeout is the timeout for a single generation request
	// to the assistive rewrite backend. Local language models can take tens
	// of seconds per paragraph, so this is deliberately generous.
	DefaultGenerateTimeout = 60 * time.Second

	// DefaultProbeTimeout is the timeout for the backend availability probe.
	// The probe hits a local model-listing endpoint, so anything slower than
	// a few seconds means the backend is effectively unusable.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultOllamaURL is the standard address of a local Ollama server.
	DefaultOllamaURL = "http://localhost:11434"

	// DefaultOllamaModel is the model used for assistive rewriting.
	// Small instruction-tuned models are sufficient for paragraph-level
	// style rewrites and keep latency reasonable.
	DefaultOllamaModel = "llama3.2:3b"

	// DefaultBatchSize of 4 concurrent analyses balances throughput with
	// politeness toward the documentation host.
	DefaultBatchSize = 4

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is far beyond any real documentation article while preventing
	// memory exhaustion from unexpected responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent is sent with article fetches. Documentation portals
	// commonly block requests without a browser-like User-Agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultExpectedHost is the documentation host this tool was built for.
	// Other hosts are analyzed anyway; the mismatch is advisory only.
	DefaultExpectedHost = "help.moengage.com"

	// DefaultServeAddr is the listen address for the serve command.
	DefaultServeAddr = "localhost:5000"

	// AppName is the application name used for XDG directory paths.
	AppName = "docaudit"
)

// Config holds all configuration options for docaudit.
// This struct is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., FetchConfig, OllamaConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// FetchTimeout is the timeout for fetching a single article.
	FetchTimeout time.Duration

	// GenerateTimeout is the timeout for one assistive generation request.
	GenerateTimeout time.Duration

	// UserAgent is the User-Agent header sent with article fetches.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated. Zero means the default.
	MaxBodySize int64

	// ExpectedHosts are the hosts this tool expects articles to come from.
	// Fetching from other hosts logs a warning but proceeds anyway.
	ExpectedHosts []string

	// OllamaURL is the base URL of the assistive rewrite backend.
	OllamaURL string

	// OllamaModel is the model name used for assistive rewriting.
	OllamaModel string

	// DisableAssist disables the assistive rewrite shim entirely, skipping
	// the availability probe. Deterministic rewriting still runs.
	DisableAssist bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses when processing
	// multiple targets.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .docaudit in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// SiteConfigs holds site-specific configurations loaded from the config
	// file. Populated by LoadConfigFile and used when fetching articles.
	SiteConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Targets is the list of article URLs to analyze or revise.
	Targets []string

	// DBDir is the directory path for storing the SQLite history database.
	// When set, analysis reports are saved for historical comparison.
	// Defaults to the XDG data directory when SaveToDB is enabled.
	DBDir string

	// SaveToDB indicates whether to save analysis reports to the database.
	SaveToDB bool

	// ServeAddr is the listen address for the serve command.
	ServeAddr string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeouts, the
// backend address). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		FetchTimeout:    DefaultFetchTimeout,
		GenerateTimeout: DefaultGenerateTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		ExpectedHosts:   []string{DefaultExpectedHost},
		OllamaURL:       DefaultOllamaURL,
		OllamaModel:     DefaultOllamaModel,
		BatchSize:       DefaultBatchSize,
		ServeAddr:       DefaultServeAddr,
	}
}

// XDGDataDir returns the XDG data directory for docaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/docaudit
// On macOS: ~/Library/Application Support/docaudit
// On Windows: %LOCALAPPDATA%\docaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for docaudit.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
