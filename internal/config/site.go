package config

// SiteConfig holds site-specific configuration for a single documentation host.
// This allows fetching articles from portals that sit behind authentication
// or expect particular request headers.
type SiteConfig struct {
	// Cookie is an HTTP cookie to use when fetching from this host.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are custom HTTP headers to include in requests to this host.
	Headers map[string]string `yaml:"headers,omitempty"`

	// UserAgent overrides the global User-Agent for this host.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// File represents the structure of the .docaudit configuration file.
type File struct {
	// Sites maps documentation hosts to their site-specific configurations.
	// Keys are bare hostnames (e.g., "help.moengage.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains default site configuration applied to all hosts
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`

	// ExpectedHosts extends the list of hosts treated as expected sources.
	// Fetching from a host outside this list logs an advisory warning.
	ExpectedHosts []string `yaml:"expectedHosts,omitempty"`
}

// GetSiteConfig returns the configuration for a specific host.
// It merges the host-specific configuration with defaults.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	result := cf.Defaults

	if siteConfig, ok := cf.Sites[host]; ok {
		if siteConfig.Cookie != "" {
			result.Cookie = siteConfig.Cookie
		}
		if siteConfig.UserAgent != "" {
			result.UserAgent = siteConfig.UserAgent
		}
		if len(siteConfig.Headers) > 0 {
			if result.Headers == nil {
				result.Headers = make(map[string]string)
			}
			for k, v := range siteConfig.Headers {
				result.Headers[k] = v
			}
		}
	}

	return result
}
