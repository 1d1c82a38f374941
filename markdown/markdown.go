// Package markdown renders Markdown to HTML with goldmark, exposed both as a
// plain renderer and as a templ component for HTML responses.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is configured with GFM (tables, strikethrough, autolinks) and automatic
// heading ids so table-of-contents anchors resolve. Raw HTML in source stays
// escaped; goldmark's unsafe mode is off because post bodies are user input.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Render writes the HTML representation of source to w.
func Render(w io.Writer, source string) error {
	return md.Convert([]byte(source), w)
}

// RenderHTML returns source rendered to HTML.
func RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, source); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Markdown returns a templ.Component that renders source as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, source)
	})
}
