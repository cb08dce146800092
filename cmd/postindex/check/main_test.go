package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRunCheckValidContent(t *testing.T) {
	contentDir := t.TempDir()
	writeFixture(t, contentDir, "post.md", `---
title: Valid Post
date: 2024-01-01
---
Body.
`)

	err := runCheck([]string{"-content-dir", contentDir, "-log-level", "error"})
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
}

func TestRunCheckMalformedDate(t *testing.T) {
	contentDir := t.TempDir()
	writeFixture(t, contentDir, "post.md", `---
title: Broken Post
date: 01/02/2024 maybe
---
Body.
`)

	err := runCheck([]string{"-content-dir", contentDir, "-log-level", "error"})
	if err == nil {
		t.Fatal("runCheck() error = nil, want malformed metadata failure")
	}
	if !strings.Contains(err.Error(), "malformed metadata") {
		t.Errorf("error = %v, want malformed metadata mention", err)
	}
}
