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
	if err := runCheck(os.Args[1:]); err != nil {
		log.Fatalf("postindex check: %v", err)
	}
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("postindex-check", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	directory := fs.String("directory", ".", "Directory to check, relative to the content root")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		LogLevel:   *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	cmd := postindex.CheckContentCommand{Directory: *directory}
	if err := module.Module.CheckContent(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute check command: %w", err)
	}

	fmt.Println("content check passed")
	return nil
}
