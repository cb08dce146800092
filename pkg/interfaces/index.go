package interfaces

import (
	"context"
	"time"

	"github.com/goliatone/go-postindex/posts"
)

// IndexBuilder turns a fixed snapshot of loaded documents into an ordered
// post index. Build is a pure function of its input: no I/O, no shared state,
// and identical output for identical input.
type IndexBuilder interface {
	Build(ctx context.Context, docs []*Document) (posts.Index, error)
}

// Generator runs the full publish pipeline: load documents, build the index,
// and emit the rendered site artifacts.
type Generator interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// BuildOptions tunes a single generator run.
type BuildOptions struct {
	// Directory selects a sub-directory of the content root, defaulting to ".".
	Directory string
	// IncludeDrafts overrides the configured draft handling when non-nil.
	IncludeDrafts *bool
	// DryRun renders everything but skips artifact writes.
	DryRun bool
}

// Artifact identifies a single file emitted by a generator run.
type Artifact struct {
	Path     string
	Category string
	Checksum string
	Size     int64
}

// BuildResult reports the outcome of a generator run so callers can audit
// behaviour or trigger follow-up actions.
type BuildResult struct {
	GeneratedAt time.Time
	Index       posts.Index
	Artifacts   []Artifact
	DryRun      bool
}
