package postindex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-postindex/posts"
)

func writeContentFixtures(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func defaultFixtures() map[string]string {
	return map[string]string{
		"hello.md": `---
title: Hello World
date: 2024-01-05
topics:
  - meta
---
First post.
`,
		"generics.md": `---
title: Go Generics in Anger
date: 2024-03-01
topics:
  - golang
---
Type parameters in practice.
`,
		"wip.md": `---
title: Work in Progress
date: 2024-04-01
draft: true
---
Not done.
`,
	}
}

func newTestModule(t *testing.T, mutate func(*Config)) *Module {
	t.Helper()

	contentDir := t.TempDir()
	writeContentFixtures(t, contentDir, defaultFixtures())

	cfg := DefaultConfig()
	cfg.Site.Title = "Field Notes"
	cfg.Site.BaseURL = "https://example.com"
	cfg.Content.Dir = contentDir
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Logging.Provider = "noop"
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return module
}

func TestNewRejectsDisabledModule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	if _, err := New(cfg); !errors.Is(err, ErrModuleDisabled) {
		t.Fatalf("New() error = %v, want ErrModuleDisabled", err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := New(cfg); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("New() error = %v, want ErrContentDirRequired", err)
	}
}

func TestModuleBuildIndexOrdering(t *testing.T) {
	module := newTestModule(t, nil)

	idx, err := module.BuildIndex(context.Background(), ".")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("index length = %d, want 2 published posts", idx.Len())
	}
	if idx[0].Title != "Go Generics in Anger" || idx[1].Title != "Hello World" {
		t.Errorf("index order = [%s, %s], want newest first", idx[0].Title, idx[1].Title)
	}
	for _, post := range idx {
		if post.Draft {
			t.Errorf("draft %q leaked into index", post.Path)
		}
	}
}

func TestModuleBuildIndexKeepsDraftsWhenConfigured(t *testing.T) {
	module := newTestModule(t, func(cfg *Config) {
		cfg.Index.IncludeDrafts = true
	})

	idx, err := module.BuildIndex(context.Background(), ".")
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("index length = %d, want 3 with drafts", idx.Len())
	}
}

func TestModuleBuildSiteWritesArtifacts(t *testing.T) {
	outputDir := t.TempDir()
	module := newTestModule(t, func(cfg *Config) {
		cfg.Generator.OutputDir = outputDir
	})

	err := module.BuildSite(context.Background(), BuildSiteCommand{Directory: "."})
	if err != nil {
		t.Fatalf("BuildSite() error = %v", err)
	}

	for _, name := range []string{
		"index.html",
		"index.md",
		"feed.xml",
		"sitemap.xml",
		"robots.txt",
		"manifest.json",
		"posts/generics/index.html",
		"posts/hello/index.html",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	table, err := os.ReadFile(filepath.Join(outputDir, "index.md"))
	if err != nil {
		t.Fatalf("read index.md: %v", err)
	}
	if !strings.Contains(string(table), "| topics | date | title |") {
		t.Errorf("index.md missing listing header:\n%s", table)
	}
}

func TestModuleBuildSiteDisabledGenerator(t *testing.T) {
	module := newTestModule(t, func(cfg *Config) {
		cfg.Features.Generator = false
	})

	err := module.BuildSite(context.Background(), BuildSiteCommand{Directory: "."})
	if err == nil {
		t.Fatal("BuildSite() error = nil, want disabled feature failure")
	}
}

func TestModuleCheckContentReportsMalformedDate(t *testing.T) {
	contentDir := t.TempDir()
	writeContentFixtures(t, contentDir, map[string]string{
		"bad.md": `---
title: Bad Date
date: sometime soon
---
Body.
`,
	})

	cfg := DefaultConfig()
	cfg.Content.Dir = contentDir
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Logging.Provider = "noop"

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = module.CheckContent(context.Background(), CheckContentCommand{Directory: "."})
	if err == nil {
		t.Fatal("CheckContent() error = nil, want malformed metadata failure")
	}
	if !errors.Is(err, posts.ErrMalformedMetadata) {
		t.Errorf("error chain lost malformed metadata sentinel: %v", err)
	}
}

func TestModuleCheckContentReportsDuplicateSlug(t *testing.T) {
	contentDir := t.TempDir()
	writeContentFixtures(t, contentDir, map[string]string{
		"a/post.md": `---
title: One
date: 2024-01-01
slug: same
---
A.
`,
		"b/post.md": `---
title: Two
date: 2024-02-01
slug: same
---
B.
`,
	})

	cfg := DefaultConfig()
	cfg.Content.Dir = contentDir
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Logging.Provider = "noop"

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = module.CheckContent(context.Background(), CheckContentCommand{Directory: "."})
	if err == nil {
		t.Fatal("CheckContent() error = nil, want slug conflict failure")
	}
	if !errors.Is(err, posts.ErrSlugConflict) {
		t.Errorf("error chain lost slug conflict sentinel: %v", err)
	}
}
