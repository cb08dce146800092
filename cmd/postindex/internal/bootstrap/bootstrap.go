package bootstrap

import (
	"fmt"
	"strings"

	postindex "github.com/goliatone/go-postindex"
	"github.com/goliatone/go-postindex/pkg/interfaces"
)

// Options captures configuration shared by the postindex CLI entry points.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	SiteTitle      string
	SiteBaseURL    string
	OutputDir      string
	IncludeDrafts  bool
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the postindex module plus the pieces CLI commands need.
type Module struct {
	Module *postindex.Module
	Logger interfaces.Logger
}

// BuildModule constructs a postindex module configured for CLI runs.
func BuildModule(opts Options) (*Module, error) {
	cfg := postindex.DefaultConfig()

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.Content.Dir = dir
	}
	if pattern := strings.TrimSpace(opts.Pattern); pattern != "" {
		cfg.Content.Pattern = pattern
	}
	cfg.Content.Recursive = opts.Recursive

	if title := strings.TrimSpace(opts.SiteTitle); title != "" {
		cfg.Site.Title = title
	}
	cfg.Site.BaseURL = strings.TrimSpace(opts.SiteBaseURL)

	if out := strings.TrimSpace(opts.OutputDir); out != "" {
		cfg.Generator.OutputDir = out
	}
	cfg.Index.IncludeDrafts = opts.IncludeDrafts

	cfg.Logging.Provider = "console"
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	moduleOpts := []postindex.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, postindex.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := postindex.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise postindex module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: module.Logger(),
	}, nil
}
