// Package markdown loads blog documents from disk, splitting front-matter
// metadata from Markdown bodies and rendering them to HTML via goldmark.
package markdown
