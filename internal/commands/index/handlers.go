package indexcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-postindex/internal/commands"
	"github.com/goliatone/go-postindex/internal/logging"
	"github.com/goliatone/go-postindex/pkg/interfaces"
)

const (
	buildSiteOperation    = "index.build_site"
	checkContentOperation = "index.check_content"
)

// ErrGeneratorFeatureDisabled is returned when the generator feature flag is disabled at runtime.
var ErrGeneratorFeatureDisabled = errors.New("index command: generator feature disabled")

var (
	_ command.Commander[BuildSiteCommand]    = (*BuildSiteHandler)(nil)
	_ command.Commander[CheckContentCommand] = (*CheckContentHandler)(nil)
)

// BuildSiteHandler orchestrates full site builds via the shared command handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied generator.
func NewBuildSiteHandler(generator interfaces.Generator, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if !gates.generatorEnabled() {
			return ErrGeneratorFeatureDisabled
		}

		result, err := generator.Build(ctx, interfaces.BuildOptions{
			Directory:     msg.Directory,
			IncludeDrafts: msg.IncludeDrafts,
			DryRun:        msg.DryRun,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"post_count":     result.Index.Len(),
			"artifact_count": len(result.Artifacts),
			"dry_run":        result.DryRun,
		}).Info("index.command.build_site.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildSiteOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.IncludeDrafts != nil {
				fields["include_drafts"] = *msg.IncludeDrafts
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CheckContentHandler validates content metadata without producing output.
type CheckContentHandler struct {
	inner *commands.Handler[CheckContentCommand]
}

// NewCheckContentHandler creates a handler bound to the supplied markdown
// service and index builder. The handler loads every document and builds the
// index in memory; malformed metadata and duplicate paths surface as errors.
func NewCheckContentHandler(markdown interfaces.MarkdownService, builder interfaces.IndexBuilder, logger interfaces.Logger, opts ...commands.HandlerOption[CheckContentCommand]) *CheckContentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CheckContentCommand) error {
		docs, err := markdown.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{})
		if err != nil {
			return err
		}
		idx, err := builder.Build(ctx, docs)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"document_count": len(docs),
			"post_count":     idx.Len(),
		}).Info("index.command.check_content.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckContentCommand]{
		commands.WithLogger[CheckContentCommand](baseLogger),
		commands.WithOperation[CheckContentCommand](checkContentOperation),
		commands.WithMessageFields(func(msg CheckContentCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CheckContentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CheckContentCommand].
func (h *CheckContentHandler) Execute(ctx context.Context, msg CheckContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
