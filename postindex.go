package postindex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	indexcmd "github.com/goliatone/go-postindex/internal/commands/index"
	"github.com/goliatone/go-postindex/internal/generator"
	"github.com/goliatone/go-postindex/internal/index"
	"github.com/goliatone/go-postindex/internal/logging"
	"github.com/goliatone/go-postindex/internal/logging/gologger"
	"github.com/goliatone/go-postindex/internal/markdown"
	"github.com/goliatone/go-postindex/pkg/interfaces"
	"github.com/goliatone/go-postindex/posts"
)

// ErrModuleDisabled is returned when a disabled module is constructed.
var ErrModuleDisabled = errors.New("postindex: module is disabled")

// BuildSiteCommand exports the build command message for host applications.
type BuildSiteCommand = indexcmd.BuildSiteCommand

// CheckContentCommand exports the check command message for host applications.
type CheckContentCommand = indexcmd.CheckContentCommand

// Option overrides a module dependency during construction.
type Option func(*moduleDeps)

type moduleDeps struct {
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	writer   generator.ArtifactWriter
}

// WithLoggerProvider injects a custom logger provider, bypassing the
// configured logging backend.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithMarkdownParser overrides the default goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(d *moduleDeps) {
		d.parser = parser
	}
}

// WithArtifactWriter overrides the generator output destination. Useful for
// tests and for hosts that publish artifacts somewhere other than local disk.
func WithArtifactWriter(writer generator.ArtifactWriter) Option {
	return func(d *moduleDeps) {
		d.writer = writer
	}
}

// Module is the top level runtime facade: markdown loading, index building,
// and static generation wired together from a single Config.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	markdown interfaces.MarkdownService
	builder  interfaces.IndexBuilder
	gen      interfaces.Generator

	buildHandler *indexcmd.BuildSiteHandler
	checkHandler *indexcmd.CheckContentHandler
}

// New constructs a module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if !cfg.Enabled {
		return nil, ErrModuleDisabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	provider := deps.provider
	if provider == nil && cfg.Features.Logger {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	parser := deps.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Content.Extensions,
			Sanitize:   cfg.Content.Sanitize,
			HardWraps:  cfg.Content.HardWraps,
			SafeMode:   cfg.Content.SafeMode,
		})
	}

	markdownSvc, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
	}, parser)
	if err != nil {
		return nil, err
	}

	// The builder keeps drafts so the generator and callers decide the draft
	// policy per run instead of re-reading the content tree.
	builder := index.NewBuilder(index.Config{
		IncludeDrafts:  true,
		MetadataSchema: cfg.Index.MetadataSchema,
	}, logging.IndexLogger(provider))

	m := &Module{
		cfg:      cfg,
		provider: provider,
		markdown: markdownSvc,
		builder:  builder,
	}

	if cfg.Features.Generator {
		gen, err := generator.NewService(generator.Config{
			SiteTitle:       cfg.Site.Title,
			SiteDescription: cfg.Site.Description,
			BaseURL:         cfg.Site.BaseURL,
			OutputDir:       cfg.Generator.OutputDir,
			IncludeDrafts:   cfg.Index.IncludeDrafts,
			Feeds:           cfg.Generator.Feeds,
			Sitemap:         cfg.Generator.Sitemap,
			Robots:          cfg.Generator.Robots,
			Manifest:        cfg.Generator.Manifest,
		}, generator.Dependencies{
			Markdown: markdownSvc,
			Builder:  builder,
			Writer:   deps.writer,
			Logger:   logging.GeneratorLogger(provider),
		})
		if err != nil {
			return nil, err
		}
		m.gen = gen

		m.buildHandler = indexcmd.NewBuildSiteHandler(gen, logging.CommandsLogger(provider), indexcmd.FeatureGates{
			GeneratorEnabled: func() bool { return cfg.Features.Generator },
		})
	}

	m.checkHandler = indexcmd.NewCheckContentHandler(markdownSvc, builder, logging.CommandsLogger(provider))

	return m, nil
}

// Markdown returns the configured markdown service.
func (m *Module) Markdown() interfaces.MarkdownService {
	return m.markdown
}

// Index returns the configured index builder.
func (m *Module) Index() interfaces.IndexBuilder {
	return m.builder
}

// Generator returns the configured generator, nil when the feature is disabled.
func (m *Module) Generator() interfaces.Generator {
	return m.gen
}

// Logger returns a module-scoped logger for host applications.
func (m *Module) Logger() interfaces.Logger {
	return logging.ModuleLogger(m.provider, "")
}

// BuildIndex loads every document under dir and returns the ordered index:
// date descending, ties broken by path ascending. Drafts are excluded unless
// the configuration keeps them.
func (m *Module) BuildIndex(ctx context.Context, dir string) (posts.Index, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	docs, err := m.markdown.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}
	idx, err := m.builder.Build(ctx, docs)
	if err != nil {
		return nil, err
	}
	if !m.cfg.Index.IncludeDrafts {
		idx = idx.WithoutDrafts()
	}
	return idx, nil
}

// BuildSite executes the build command through the shared handler pipeline.
func (m *Module) BuildSite(ctx context.Context, cmd BuildSiteCommand) error {
	if m.buildHandler == nil {
		return indexcmd.ErrGeneratorFeatureDisabled
	}
	return m.buildHandler.Execute(ctx, cmd)
}

// CheckContent executes the content check command through the shared handler pipeline.
func (m *Module) CheckContent(ctx context.Context, cmd CheckContentCommand) error {
	return m.checkHandler.Execute(ctx, cmd)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return nil, nil
	case "console":
		format := cfg.Format
		if strings.TrimSpace(format) == "" {
			format = "console"
		}
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "gologger", "":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
