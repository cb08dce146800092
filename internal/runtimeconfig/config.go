package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("postindex config: content directory is required")
var ErrGeneratorOutputDirRequired = errors.New("postindex config: generator output directory is required when generator is enabled")
var ErrSiteBaseURLInvalid = errors.New("postindex config: site base URL must be absolute")
var ErrLoggingProviderRequired = errors.New("postindex config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("postindex config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("postindex config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("postindex config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Site      SiteConfig
	Content   ContentConfig
	Index     IndexConfig
	Generator GeneratorConfig
	Logging   LoggingConfig
	Features  Features
}

// SiteConfig captures the site identity artifacts are rendered with.
type SiteConfig struct {
	Title       string
	Description string
	BaseURL     string
}

// ContentConfig locates and filters the Markdown sources.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
	// Extensions selects named goldmark extensions; empty keeps the defaults.
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// IndexConfig controls index construction.
type IndexConfig struct {
	IncludeDrafts bool
	// MetadataSchema optionally validates custom front-matter fields.
	MetadataSchema map[string]any
}

// GeneratorConfig controls the static output pipeline.
type GeneratorConfig struct {
	OutputDir string
	Feeds     bool
	Sitemap   bool
	Robots    bool
	Manifest  bool
}

// LoggingConfig selects the logging backend.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional subsystems.
type Features struct {
	Generator bool
	Logger    bool
}

// DefaultConfig returns a configuration with sensible defaults applied.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Site: SiteConfig{
			Title: "Posts",
		},
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Index: IndexConfig{},
		Generator: GeneratorConfig{
			OutputDir: "public",
			Feeds:     true,
			Sitemap:   true,
			Robots:    true,
			Manifest:  true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Generator: true,
			Logger:    true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Features.Generator && strings.TrimSpace(cfg.Generator.OutputDir) == "" {
		return ErrGeneratorOutputDirRequired
	}
	if base := strings.TrimSpace(cfg.Site.BaseURL); base != "" {
		if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
			return fmt.Errorf("%w: %s", ErrSiteBaseURLInvalid, base)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty", "text":
		return true
	default:
		return false
	}
}
