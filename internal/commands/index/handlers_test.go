package indexcmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-postindex/pkg/interfaces"
	"github.com/goliatone/go-postindex/posts"
)

type stubGenerator struct {
	result *interfaces.BuildResult
	err    error
	calls  []interfaces.BuildOptions
}

func (g *stubGenerator) Build(_ context.Context, opts interfaces.BuildOptions) (*interfaces.BuildResult, error) {
	g.calls = append(g.calls, opts)
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &interfaces.BuildResult{Index: posts.Index{}}, nil
}

type stubMarkdown struct {
	docs []*interfaces.Document
	err  error
}

func (s *stubMarkdown) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMarkdown) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return s.docs, s.err
}

func (s *stubMarkdown) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMarkdown) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, errors.New("not implemented")
}

type stubBuilder struct {
	idx posts.Index
	err error
}

func (s *stubBuilder) Build(context.Context, []*interfaces.Document) (posts.Index, error) {
	return s.idx, s.err
}

func TestBuildSiteHandlerExecutes(t *testing.T) {
	gen := &stubGenerator{}
	handler := NewBuildSiteHandler(gen, nil, FeatureGates{})

	include := true
	err := handler.Execute(context.Background(), BuildSiteCommand{
		Directory:     "content",
		IncludeDrafts: &include,
		DryRun:        true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(gen.calls) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.calls))
	}
	opts := gen.calls[0]
	if opts.Directory != "content" {
		t.Errorf("Directory = %q", opts.Directory)
	}
	if opts.IncludeDrafts == nil || !*opts.IncludeDrafts {
		t.Error("IncludeDrafts not forwarded")
	}
	if !opts.DryRun {
		t.Error("DryRun not forwarded")
	}
}

func TestBuildSiteHandlerRequiresDirectory(t *testing.T) {
	gen := &stubGenerator{}
	handler := NewBuildSiteHandler(gen, nil, FeatureGates{})

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if err == nil {
		t.Fatal("Execute() error = nil, want validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want validation", err)
	}
	if len(gen.calls) != 0 {
		t.Error("generator invoked despite invalid message")
	}
}

func TestBuildSiteHandlerFeatureGate(t *testing.T) {
	gen := &stubGenerator{}
	handler := NewBuildSiteHandler(gen, nil, FeatureGates{
		GeneratorEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), BuildSiteCommand{Directory: "content"})
	if err == nil {
		t.Fatal("Execute() error = nil, want feature gate failure")
	}
	if !errors.Is(err, ErrGeneratorFeatureDisabled) {
		t.Errorf("error = %v, want ErrGeneratorFeatureDisabled", err)
	}
	if len(gen.calls) != 0 {
		t.Error("generator invoked despite disabled feature")
	}
}

func TestBuildSiteHandlerPropagatesBuildError(t *testing.T) {
	cause := &posts.DuplicatePathError{Path: "posts/a.md"}
	gen := &stubGenerator{err: cause}
	handler := NewBuildSiteHandler(gen, nil, FeatureGates{})

	err := handler.Execute(context.Background(), BuildSiteCommand{Directory: "content"})
	if err == nil {
		t.Fatal("Execute() error = nil, want build failure")
	}
	if !errors.Is(err, posts.ErrDuplicatePath) {
		t.Errorf("error chain lost duplicate path sentinel: %v", err)
	}
}

func TestCheckContentHandlerExecutes(t *testing.T) {
	md := &stubMarkdown{docs: []*interfaces.Document{}}
	builder := &stubBuilder{idx: posts.Index{}}
	handler := NewCheckContentHandler(md, builder, nil)

	if err := handler.Execute(context.Background(), CheckContentCommand{Directory: "content"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestCheckContentHandlerSurfacesMalformedMetadata(t *testing.T) {
	cause := &posts.MalformedMetadataError{Path: "posts/bad.md", Field: "date", Cause: posts.ErrDateInvalid}
	md := &stubMarkdown{docs: []*interfaces.Document{{FilePath: "posts/bad.md"}}}
	builder := &stubBuilder{err: cause}
	handler := NewCheckContentHandler(md, builder, nil)

	err := handler.Execute(context.Background(), CheckContentCommand{Directory: "content"})
	if err == nil {
		t.Fatal("Execute() error = nil, want malformed metadata failure")
	}
	if !errors.Is(err, posts.ErrMalformedMetadata) {
		t.Errorf("error chain lost malformed metadata sentinel: %v", err)
	}
}

func TestCheckContentHandlerRequiresDirectory(t *testing.T) {
	handler := NewCheckContentHandler(&stubMarkdown{}, &stubBuilder{}, nil)

	err := handler.Execute(context.Background(), CheckContentCommand{})
	if err == nil {
		t.Fatal("Execute() error = nil, want validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want validation", err)
	}
}
