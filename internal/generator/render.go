package generator

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/goliatone/go-postindex/posts"
)

// SiteMetadata exposes site-level information required by templates.
type SiteMetadata struct {
	Title       string
	Description string
	BaseURL     string
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
}

// IndexRenderingContext carries the data contract for the index page template.
type IndexRenderingContext struct {
	Site  SiteMetadata
	Build BuildMetadata
	Rows  []IndexRow
}

// IndexRow is a single entry of the rendered listing: topics, date, linked title.
type IndexRow struct {
	Topics string
	Date   string
	Title  string
	Route  string
}

// PostRenderingContext carries the data contract for a single post page.
type PostRenderingContext struct {
	Site  SiteMetadata
	Build BuildMetadata
	Post  *posts.Post
	Date  string
	Body  template.HTML
}

const indexTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Site.Title}}</title>
{{- if .Site.Description}}
<meta name="description" content="{{.Site.Description}}">
{{- end}}
</head>
<body>
<h1>{{.Site.Title}}</h1>
<table>
<thead>
<tr><th>topics</th><th>date</th><th>title</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Topics}}</td><td>{{.Date}}</td><td><a href="{{.Route}}">{{.Title}}</a></td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`

const postTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Post.Title}} — {{.Site.Title}}</title>
{{- if .Post.Summary}}
<meta name="description" content="{{.Post.Summary}}">
{{- end}}
</head>
<body>
<article>
<header>
<h1>{{.Post.Title}}</h1>
<p><time datetime="{{.Date}}">{{.Date}}</time>{{if .Post.Author}} · {{.Post.Author}}{{end}}</p>
</header>
{{.Body}}
</article>
<p><a href="/">Back to index</a></p>
</body>
</html>
`

var (
	indexTemplate = template.Must(template.New("index").Parse(indexTemplateSource))
	postTemplate  = template.Must(template.New("post").Parse(postTemplateSource))
)

const displayDateLayout = "2006-01-02"

func indexRows(idx posts.Index) []IndexRow {
	rows := make([]IndexRow, 0, len(idx))
	for _, post := range idx {
		rows = append(rows, IndexRow{
			Topics: strings.Join(post.Topics, ", "),
			Date:   post.Date.Format(displayDateLayout),
			Title:  post.Title,
			Route:  postRoute(post.Slug),
		})
	}
	return rows
}

func renderIndexHTML(site SiteMetadata, build BuildMetadata, idx posts.Index) (string, error) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, IndexRenderingContext{
		Site:  site,
		Build: build,
		Rows:  indexRows(idx),
	})
	if err != nil {
		return "", fmt.Errorf("generator: render index: %w", err)
	}
	return buf.String(), nil
}

func renderPostHTML(site SiteMetadata, build BuildMetadata, post *posts.Post) (string, error) {
	var buf bytes.Buffer
	err := postTemplate.Execute(&buf, PostRenderingContext{
		Site:  site,
		Build: build,
		Post:  post,
		Date:  post.Date.Format(displayDateLayout),
		Body:  template.HTML(post.BodyHTML),
	})
	if err != nil {
		return "", fmt.Errorf("generator: render post %s: %w", post.Path, err)
	}
	return buf.String(), nil
}

// renderIndexMarkdown produces the Markdown table variant of the listing so
// the repository landing page can be regenerated instead of hand-edited.
func renderIndexMarkdown(site SiteMetadata, idx posts.Index) string {
	var builder strings.Builder
	builder.WriteString("# " + site.Title + "\n\n")
	builder.WriteString("| topics | date | title |\n")
	builder.WriteString("| ------ | ---- | ----- |\n")
	for _, post := range idx {
		topics := escapeTableCell(strings.Join(post.Topics, ", "))
		date := post.Date.Format(displayDateLayout)
		title := escapeTableCell(post.Title)
		builder.WriteString(fmt.Sprintf("| %s | %s | [%s](%s) |\n", topics, date, title, postRoute(post.Slug)))
	}
	return builder.String()
}

func escapeTableCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
