package generator

import (
	"path"
	"strings"
)

const (
	indexPath     = "index.html"
	indexTable    = "index.md"
	feedPath      = "feed.xml"
	sitemapPath   = "sitemap.xml"
	robotsPath    = "robots.txt"
	manifestPath  = "manifest.json"
	postDirPrefix = "posts"
)

// postOutputPath returns the on-disk location for a rendered post.
func postOutputPath(slug string) string {
	return path.Join(postDirPrefix, slug, "index.html")
}

// postRoute returns the site-relative route for a post.
func postRoute(slug string) string {
	return "/" + postDirPrefix + "/" + slug + "/"
}

// absoluteURL joins a base URL and a site-relative route.
func absoluteURL(baseURL, route string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	route = strings.TrimSpace(route)
	if route == "" {
		route = "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if base == "" {
		return route
	}
	return base + route
}
