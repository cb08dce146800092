package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	postindex "github.com/goliatone/go-postindex"
	"github.com/goliatone/go-postindex/cmd/postindex/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("postindex build: %v", err)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("postindex-build", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	directory := fs.String("directory", ".", "Directory to build, relative to the content root")
	outputDir := fs.String("output-dir", "public", "Directory the generated site is written to")
	siteTitle := fs.String("site-title", "Posts", "Site title used in generated pages and feeds")
	baseURL := fs.String("base-url", "", "Absolute base URL for feeds and sitemaps")
	includeDrafts := fs.Bool("drafts", false, "Include draft posts in the generated site")
	dryRun := fs.Bool("dry-run", false, "Plan artifacts without writing anything")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		SiteTitle:     *siteTitle,
		SiteBaseURL:   *baseURL,
		OutputDir:     *outputDir,
		IncludeDrafts: *includeDrafts,
		LogLevel:      *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	cmd := postindex.BuildSiteCommand{
		Directory: *directory,
		DryRun:    *dryRun,
	}
	if err := module.Module.BuildSite(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}
	return nil
}
