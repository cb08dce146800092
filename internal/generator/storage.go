package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	categoryIndex    = "index"
	categoryPost     = "post"
	categoryFeed     = "feed"
	categorySitemap  = "sitemap"
	categoryRobots   = "robots"
	categoryManifest = "manifest"
)

// WriteRequest describes a file write operation routed through the artifact writer.
type WriteRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    string
	ContentType string
	Checksum    string
}

// ArtifactWriter abstracts output destination specifics for generator artifacts.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req WriteRequest) error
}

// NewOSWriter returns an ArtifactWriter that writes beneath root on the local
// filesystem, creating parent directories as needed.
func NewOSWriter(root string) (ArtifactWriter, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("generator: output root is required")
	}
	return &osWriter{root: filepath.Clean(root)}, nil
}

type osWriter struct {
	root string
}

func (w *osWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" || path == "." {
		path = ""
	}
	full := filepath.Join(w.root, filepath.FromSlash(path))
	if err := os.MkdirAll(full, 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir %s: %w", full, err)
	}
	return nil
}

func (w *osWriter) WriteFile(ctx context.Context, req WriteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}

	full := filepath.Join(w.root, filepath.FromSlash(req.Path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("generator: ensure parent %s: %w", full, err)
	}

	file, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("generator: create %s: %w", full, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, req.Content); err != nil {
		return fmt.Errorf("generator: write %s: %w", full, err)
	}
	return nil
}

// noopWriter drops every write, used for dry runs.
type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, WriteRequest) error { return nil }
