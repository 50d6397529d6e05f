package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/docaudit/internal/config"
	"github.com/nao1215/docaudit/internal/model"
)

// Fetcher retrieves documentation articles over HTTP and parses them into
// Documents. Safe for concurrent use; batch analysis shares one Fetcher.
type Fetcher struct {
	client *http.Client
	config *config.Config
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client. Used by tests and by callers that
// need custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher from the given configuration.
func NewFetcher(cfg *config.Config, logger *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		config: cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the article at rawURL and parses it into a Document.
// Failures come back as *Error with a classified kind. An unexpected host is
// advisory only: it logs a warning and the fetch proceeds.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.Document, error) {
	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		if err == nil {
			err = errors.New("not an absolute http(s) url")
		}
		return nil, &Error{Kind: KindInvalidURL, URL: rawURL, Err: err}
	}

	if !f.expectedHost(target.Hostname()) {
		f.logger.Warn("url is outside the expected documentation hosts",
			"url", rawURL,
			"host", target.Hostname(),
			"expected", f.config.ExpectedHosts)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, URL: rawURL, Err: err}
	}
	f.decorate(req, target.Hostname())

	resp, err := f.client.Do(req)
	if err != nil {
		kind := KindTransport
		if isTimeout(err) {
			kind = KindTimeout
		}
		return nil, &Error{Kind: kind, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindStatus, URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize))
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: rawURL, Err: err}
	}

	doc, err := model.NewDocument(rawURL, string(body), time.Now())
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: rawURL, Err: err}
	}

	f.logger.Debug("fetched article", "url", rawURL, "bytes", len(body))
	return doc, nil
}

// decorate applies the User-Agent and any site-specific headers and cookie.
func (f *Fetcher) decorate(req *http.Request, host string) {
	req.Header.Set("User-Agent", f.config.UserAgent)

	if f.config.SiteConfigs == nil {
		return
	}
	site := f.config.SiteConfigs.GetSiteConfig(host)
	if site.UserAgent != "" {
		req.Header.Set("User-Agent", site.UserAgent)
	}
	for k, v := range site.Headers {
		req.Header.Set(k, v)
	}
	if site.Cookie != "" {
		req.Header.Set("Cookie", site.Cookie)
	}
}

// expectedHost reports whether host is one of the configured documentation
// hosts, including any extras from the config file.
func (f *Fetcher) expectedHost(host string) bool {
	for _, h := range f.config.ExpectedHosts {
		if host == h {
			return true
		}
	}
	if f.config.SiteConfigs != nil {
		for _, h := range f.config.SiteConfigs.ExpectedHosts {
			if host == h {
				return true
			}
		}
	}
	return false
}

// isTimeout reports whether err is a deadline or timeout error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
