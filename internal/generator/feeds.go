package generator

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goliatone/go-postindex/posts"
)

const maxFeedItems = 100

type feedItem struct {
	Title       string
	Summary     string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// buildFeedItems maps the index onto feed entries. The index is already
// ordered most recent first, so the feed simply truncates to the item cap.
func buildFeedItems(baseURL string, idx posts.Index) []feedItem {
	items := make([]feedItem, 0, len(idx))
	for _, post := range idx {
		if len(items) >= maxFeedItems {
			break
		}
		title := strings.TrimSpace(post.Title)
		if title == "" {
			title = post.Slug
		}
		items = append(items, feedItem{
			Title:       title,
			Summary:     strings.TrimSpace(post.Summary),
			Link:        absoluteURL(baseURL, postRoute(post.Slug)),
			GUID:        post.ID.String(),
			PublishedAt: post.Date,
		})
	}
	return items
}

func renderFeed(site SiteMetadata, generatedAt time.Time, items []feedItem) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(site.Title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", html.EscapeString(absoluteURL(site.BaseURL, "/"))))
	if site.Description != "" {
		builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", html.EscapeString(site.Description)))
	} else {
		builder.WriteString("    <description></description>\n")
	}
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))

	for _, item := range items {
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", html.EscapeString(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", html.EscapeString(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid isPermaLink=\"false\">%s</guid>\n", html.EscapeString(item.GUID)))
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", html.EscapeString(item.Summary)))
		}
		if !item.PublishedAt.IsZero() {
			builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", item.PublishedAt.UTC().Format(time.RFC1123Z)))
		}
		builder.WriteString("    </item>\n")
	}

	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	return builder.String()
}
