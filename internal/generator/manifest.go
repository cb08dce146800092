package generator

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-postindex/pkg/interfaces"
	"github.com/goliatone/go-postindex/posts"
)

// Manifest records what a build produced so deploy tooling can diff runs.
type Manifest struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Site        ManifestSite         `json:"site"`
	PostCount   int                  `json:"post_count"`
	Posts       []ManifestPost       `json:"posts"`
	Artifacts   []interfaces.Artifact `json:"artifacts"`
}

// ManifestSite captures the site identity at build time.
type ManifestSite struct {
	Title   string `json:"title"`
	BaseURL string `json:"base_url,omitempty"`
}

// ManifestPost is the per-post entry of the manifest.
type ManifestPost struct {
	Path   string    `json:"path"`
	Route  string    `json:"route"`
	Slug   string    `json:"slug"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Topics []string  `json:"topics,omitempty"`
}

func buildManifest(site SiteMetadata, generatedAt time.Time, idx posts.Index, artifacts []interfaces.Artifact) Manifest {
	entries := make([]ManifestPost, 0, len(idx))
	for _, post := range idx {
		entries = append(entries, ManifestPost{
			Path:   post.Path,
			Route:  postRoute(post.Slug),
			Slug:   post.Slug,
			Title:  post.Title,
			Date:   post.Date,
			Topics: append([]string(nil), post.Topics...),
		})
	}

	return Manifest{
		GeneratedAt: generatedAt,
		Site: ManifestSite{
			Title:   site.Title,
			BaseURL: site.BaseURL,
		},
		PostCount: len(idx),
		Posts:     entries,
		Artifacts: artifacts,
	}
}

func renderManifest(manifest Manifest) (string, error) {
	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("generator: encode manifest: %w", err)
	}
	return string(encoded) + "\n", nil
}
