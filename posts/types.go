package posts

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a single content document with its publication metadata. Path is
// the unique identifier; Date is immutable once assigned since the index is
// a historical record.
type Post struct {
	ID           uuid.UUID `json:"id"`
	Path         string    `json:"path"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Author       string    `json:"author,omitempty"`
	Date         time.Time `json:"date"`
	Topics       []string  `json:"topics,omitempty"`
	Draft        bool      `json:"draft,omitempty"`
	Body         []byte    `json:"-"`
	BodyHTML     []byte    `json:"-"`
	Checksum     []byte    `json:"-"`
	LastModified time.Time `json:"last_modified,omitempty"`
}

// HasTopic reports whether the post carries the given topic tag.
// Comparison is case-insensitive.
func (p *Post) HasTopic(topic string) bool {
	topic = strings.TrimSpace(topic)
	for _, candidate := range p.Topics {
		if strings.EqualFold(candidate, topic) {
			return true
		}
	}
	return false
}

// Index is the ordered listing of posts presented to a reader: most recent
// first, ties broken by path ascending for determinism.
type Index []*Post

// Len returns the number of posts in the index.
func (idx Index) Len() int { return len(idx) }

// Paths returns the post paths in index order.
func (idx Index) Paths() []string {
	out := make([]string, 0, len(idx))
	for _, post := range idx {
		out = append(out, post.Path)
	}
	return out
}

// Topics returns the distinct topic tags across the index, sorted
// alphabetically. Tags are reported with their first-seen casing.
func (idx Index) Topics() []string {
	seen := map[string]string{}
	for _, post := range idx {
		for _, topic := range post.Topics {
			key := strings.ToLower(strings.TrimSpace(topic))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = strings.TrimSpace(topic)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for _, display := range seen {
		out = append(out, display)
	}
	sort.Strings(out)
	return out
}

// FilterTopic returns the sub-index of posts tagged with topic, preserving
// the original ordering.
func (idx Index) FilterTopic(topic string) Index {
	var out Index
	for _, post := range idx {
		if post.HasTopic(topic) {
			out = append(out, post)
		}
	}
	return out
}

// WithoutDrafts returns the sub-index of published posts, preserving the
// original ordering.
func (idx Index) WithoutDrafts() Index {
	var out Index
	for _, post := range idx {
		if post.Draft {
			continue
		}
		out = append(out, post)
	}
	return out
}
