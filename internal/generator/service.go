package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-postindex/internal/logging"
	"github.com/goliatone/go-postindex/pkg/interfaces"
)

// Config controls a generator service instance.
type Config struct {
	SiteTitle       string
	SiteDescription string
	BaseURL         string
	OutputDir       string
	IncludeDrafts   bool
	Feeds           bool
	Sitemap         bool
	Robots          bool
	Manifest        bool
}

// Dependencies carries the collaborators the generator builds on.
type Dependencies struct {
	Markdown interfaces.MarkdownService
	Builder  interfaces.IndexBuilder
	Writer   ArtifactWriter
	Logger   interfaces.Logger
	// Clock supplies the build timestamp; defaults to time.Now.
	Clock func() time.Time
}

type service struct {
	cfg    Config
	md     interfaces.MarkdownService
	index  interfaces.IndexBuilder
	writer ArtifactWriter
	logger interfaces.Logger
	clock  func() time.Time
}

var _ interfaces.Generator = (*service)(nil)

// NewService constructs the publish pipeline. When no writer is supplied an
// OS-backed writer rooted at Config.OutputDir is created.
func NewService(cfg Config, deps Dependencies) (interfaces.Generator, error) {
	if deps.Markdown == nil {
		return nil, errors.New("generator: markdown service is required")
	}
	if deps.Builder == nil {
		return nil, errors.New("generator: index builder is required")
	}

	writer := deps.Writer
	if writer == nil {
		osWriter, err := NewOSWriter(cfg.OutputDir)
		if err != nil {
			return nil, err
		}
		writer = osWriter
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &service{
		cfg:    cfg,
		md:     deps.Markdown,
		index:  deps.Builder,
		writer: writer,
		logger: logger,
		clock:  clock,
	}, nil
}

// Build runs the full pipeline: load documents, build the index, render and
// write every artifact. Either the whole site builds or the run fails with a
// reported cause; no partial index is ever published.
func (s *service) Build(ctx context.Context, opts interfaces.BuildOptions) (*interfaces.BuildResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dir := strings.TrimSpace(opts.Directory)
	if dir == "" {
		dir = "."
	}

	docs, err := s.md.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	idx, err := s.index.Build(ctx, docs)
	if err != nil {
		return nil, err
	}

	includeDrafts := s.cfg.IncludeDrafts
	if opts.IncludeDrafts != nil {
		includeDrafts = *opts.IncludeDrafts
	}
	if !includeDrafts {
		idx = idx.WithoutDrafts()
	}

	generatedAt := s.clock().UTC()
	site := SiteMetadata{
		Title:       s.cfg.SiteTitle,
		Description: s.cfg.SiteDescription,
		BaseURL:     s.cfg.BaseURL,
	}
	build := BuildMetadata{GeneratedAt: generatedAt}

	writer := s.writer
	if opts.DryRun {
		writer = noopWriter{}
	}

	result := &interfaces.BuildResult{
		GeneratedAt: generatedAt,
		Index:       idx,
		DryRun:      opts.DryRun,
	}

	emit := func(path, category, contentType, body string) error {
		checksum := contentChecksum(body)
		artifact := interfaces.Artifact{
			Path:     path,
			Category: category,
			Checksum: checksum,
			Size:     int64(len(body)),
		}
		if err := writer.WriteFile(ctx, WriteRequest{
			Path:        path,
			Content:     strings.NewReader(body),
			Size:        artifact.Size,
			Category:    category,
			ContentType: contentType,
			Checksum:    checksum,
		}); err != nil {
			return err
		}
		result.Artifacts = append(result.Artifacts, artifact)
		logging.WithArtifactContext(s.logger, path, category).Debug("generator.artifact.written")
		return nil
	}

	for _, post := range idx {
		page, err := renderPostHTML(site, build, post)
		if err != nil {
			return nil, err
		}
		if err := emit(postOutputPath(post.Slug), categoryPost, "text/html; charset=utf-8", page); err != nil {
			return nil, err
		}
	}

	indexHTML, err := renderIndexHTML(site, build, idx)
	if err != nil {
		return nil, err
	}
	if err := emit(indexPath, categoryIndex, "text/html; charset=utf-8", indexHTML); err != nil {
		return nil, err
	}

	if err := emit(indexTable, categoryIndex, "text/markdown; charset=utf-8", renderIndexMarkdown(site, idx)); err != nil {
		return nil, err
	}

	if s.cfg.Feeds {
		feed := renderFeed(site, generatedAt, buildFeedItems(s.cfg.BaseURL, idx))
		if err := emit(feedPath, categoryFeed, "application/rss+xml; charset=utf-8", feed); err != nil {
			return nil, err
		}
	}

	if s.cfg.Sitemap {
		sitemap := buildSitemap(s.cfg.BaseURL, idx, generatedAt)
		if err := emit(sitemapPath, categorySitemap, "application/xml; charset=utf-8", sitemap); err != nil {
			return nil, err
		}
	}

	if s.cfg.Robots {
		robots := buildRobots(s.cfg.BaseURL, s.cfg.Sitemap)
		if err := emit(robotsPath, categoryRobots, "text/plain; charset=utf-8", robots); err != nil {
			return nil, err
		}
	}

	if s.cfg.Manifest {
		manifest, err := renderManifest(buildManifest(site, generatedAt, idx, result.Artifacts))
		if err != nil {
			return nil, err
		}
		if err := emit(manifestPath, categoryManifest, "application/json; charset=utf-8", manifest); err != nil {
			return nil, err
		}
	}

	s.logger.Info("generator.build.completed",
		"posts", idx.Len(),
		"artifacts", len(result.Artifacts),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

func contentChecksum(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
