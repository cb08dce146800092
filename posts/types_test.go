package posts

import (
	"errors"
	"testing"
	"time"
)

func samplePost(path string, date time.Time, topics ...string) *Post {
	return &Post{
		Path:   path,
		Slug:   path,
		Title:  path,
		Date:   date,
		Topics: topics,
	}
}

func TestIndexTopics(t *testing.T) {
	when := time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)
	idx := Index{
		samplePost("a", when, "Spark", "internals"),
		samplePost("b", when, "spark", "shuffle"),
		samplePost("c", when),
	}

	topics := idx.Topics()
	if len(topics) != 3 {
		t.Fatalf("expected 3 distinct topics, got %#v", topics)
	}
	if topics[0] != "internals" || topics[1] != "shuffle" {
		t.Fatalf("expected alphabetical topic order, got %#v", topics)
	}
	// first-seen casing wins
	if topics[2] != "Spark" {
		t.Fatalf("expected first-seen casing, got %#v", topics)
	}
}

func TestIndexFilterTopic(t *testing.T) {
	when := time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)
	idx := Index{
		samplePost("a", when, "spark"),
		samplePost("b", when, "hadoop"),
		samplePost("c", when, "Spark"),
	}

	filtered := idx.FilterTopic("spark")
	if filtered.Len() != 2 {
		t.Fatalf("expected 2 spark posts, got %d", filtered.Len())
	}
	if filtered[0].Path != "a" || filtered[1].Path != "c" {
		t.Fatalf("filter should preserve ordering, got %#v", filtered.Paths())
	}
}

func TestIndexWithoutDrafts(t *testing.T) {
	when := time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)
	draft := samplePost("draft", when)
	draft.Draft = true

	idx := Index{samplePost("a", when), draft, samplePost("b", when)}
	published := idx.WithoutDrafts()
	if published.Len() != 2 {
		t.Fatalf("expected drafts removed, got %#v", published.Paths())
	}
}

func TestMalformedMetadataErrorUnwrap(t *testing.T) {
	err := &MalformedMetadataError{Path: "posts/bad.md", Field: "date", Cause: ErrDateInvalid}
	if !errors.Is(err, ErrMalformedMetadata) {
		t.Fatalf("expected error to unwrap to ErrMalformedMetadata")
	}
	msg := err.Error()
	if msg == "" || msg == ErrMalformedMetadata.Error() {
		t.Fatalf("expected contextual message, got %q", msg)
	}
}

func TestDuplicatePathErrorUnwrap(t *testing.T) {
	err := &DuplicatePathError{Path: "posts/a.md"}
	if !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("expected error to unwrap to ErrDuplicatePath")
	}
}
