package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHTMLBasic(t *testing.T) {
	got, err := RenderHTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(got, "<h1") {
		t.Errorf("output missing heading: %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("output missing bold: %q", got)
	}
}

func TestRenderHTMLAutoHeadingIDs(t *testing.T) {
	got, err := RenderHTML("## Getting Started")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `id="getting-started"`) {
		t.Errorf("heading should carry an auto id: %q", got)
	}
}

func TestRenderHTMLTables(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |"
	got, err := RenderHTML(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<table>") {
		t.Errorf("GFM tables should render: %q", got)
	}
}

func TestRenderHTMLEscapesRawHTML(t *testing.T) {
	got, err := RenderHTML(`<script>alert("x")</script>`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML must stay escaped: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var sb strings.Builder
	if err := Markdown("*hi*").Render(context.Background(), &sb); err != nil {
		t.Fatalf("component render failed: %v", err)
	}
	if !strings.Contains(sb.String(), "<em>hi</em>") {
		t.Errorf("component output = %q", sb.String())
	}
}
