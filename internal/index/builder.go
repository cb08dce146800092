package index

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-postindex/internal/identity"
	"github.com/goliatone/go-postindex/internal/logging"
	"github.com/goliatone/go-postindex/pkg/interfaces"
	"github.com/goliatone/go-postindex/posts"
)

// Config controls how the builder maps documents onto the post index.
type Config struct {
	// IncludeDrafts keeps draft posts in the produced index.
	IncludeDrafts bool
	// MetadataSchema optionally validates custom front-matter fields against a
	// JSON schema. Violations surface as malformed metadata.
	MetadataSchema map[string]any
}

// Builder produces an ordered post index from a fixed snapshot of documents.
// Build performs no I/O and keeps no state between calls: the same input
// always yields the same output.
type Builder struct {
	cfg    Config
	logger interfaces.Logger
}

var _ interfaces.IndexBuilder = (*Builder)(nil)

// NewBuilder constructs a Builder. A nil logger falls back to no-op.
func NewBuilder(cfg Config, logger interfaces.Logger) *Builder {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build validates every document and returns the ordered index: date
// descending, ties broken by path ascending. The build is all-or-nothing; a
// single malformed document or duplicate path aborts with no partial output.
func (b *Builder) Build(ctx context.Context, docs []*interfaces.Document) (posts.Index, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	byPath := make(map[string]struct{}, len(docs))
	bySlug := make(map[string]string, len(docs))
	idx := make(posts.Index, 0, len(docs))

	for _, doc := range docs {
		post, err := b.buildPost(doc)
		if err != nil {
			return nil, err
		}

		if _, ok := byPath[post.Path]; ok {
			return nil, &posts.DuplicatePathError{Path: post.Path}
		}
		byPath[post.Path] = struct{}{}

		if other, ok := bySlug[post.Slug]; ok {
			return nil, &posts.SlugConflictError{Slug: post.Slug, Path: post.Path, OtherPath: other}
		}
		bySlug[post.Slug] = post.Path

		if post.Draft && !b.cfg.IncludeDrafts {
			logging.WithDocumentContext(b.logger, post.Path).Debug("index.build.draft_skipped")
			continue
		}
		idx = append(idx, post)
	}

	sort.SliceStable(idx, func(i, j int) bool {
		if !idx[i].Date.Equal(idx[j].Date) {
			return idx[i].Date.After(idx[j].Date)
		}
		return idx[i].Path < idx[j].Path
	})

	b.logger.Debug("index.build.completed", "posts", len(idx))
	return idx, nil
}

func (b *Builder) buildPost(doc *interfaces.Document) (*posts.Post, error) {
	if doc == nil || strings.TrimSpace(doc.FilePath) == "" {
		return nil, &posts.MalformedMetadataError{Field: "path", Cause: posts.ErrPathRequired}
	}

	fm := doc.FrontMatter

	date, err := ParseDate(fm.Date)
	if err != nil {
		return nil, &posts.MalformedMetadataError{Path: doc.FilePath, Field: "date", Cause: err}
	}

	slug, err := resolveSlug(doc.FilePath, fm.Slug)
	if err != nil {
		return nil, &posts.MalformedMetadataError{Path: doc.FilePath, Field: "slug", Cause: err}
	}

	if err := ValidateMetadata(b.cfg.MetadataSchema, fm.Custom); err != nil {
		return nil, &posts.MalformedMetadataError{Path: doc.FilePath, Field: "custom", Cause: err}
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = fallbackTitle(slug)
	}

	return &posts.Post{
		ID:           identity.PostUUID(doc.FilePath),
		Path:         doc.FilePath,
		Slug:         slug,
		Title:        title,
		Summary:      strings.TrimSpace(fm.Summary),
		Author:       strings.TrimSpace(fm.Author),
		Date:         date,
		Topics:       append([]string(nil), fm.Topics...),
		Draft:        fm.Draft,
		Body:         doc.Body,
		BodyHTML:     doc.BodyHTML,
		Checksum:     doc.Checksum,
		LastModified: doc.LastModified,
	}, nil
}

// dateLayouts enumerates the accepted date formats: full RFC 3339 down to the
// date-only values used by hand-written front-matter.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 front-matter date. The value is required.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, posts.ErrDateRequired
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, posts.ErrDateInvalid
}

func resolveSlug(filePath, explicit string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		base := path.Base(filePath)
		candidate = strings.TrimSuffix(base, path.Ext(base))
	}
	normalized, err := posts.NormalizeSlug(candidate)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", posts.ErrSlugRequired
	}
	if !posts.IsValidSlug(normalized) {
		return "", posts.ErrSlugInvalid
	}
	return normalized, nil
}

func fallbackTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
