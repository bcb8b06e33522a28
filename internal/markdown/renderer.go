// Package markdown converts post bodies into sanitized HTML and a table of
// contents. Rendering happens on read; nothing it produces is stored.
package markdown

import (
	"bytes"
	"fmt"

	"portfolio/internal/observability"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a table of contents. Children hold the deeper
// headings that follow it.
type Heading struct {
	Level    int       `json:"level"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Children []Heading `json:"children,omitempty"`
}

// Document is the result of rendering one Markdown source.
type Document struct {
	HTML string    `json:"html"`
	TOC  []Heading `json:"toc"`
}

// Renderer is stateless and safe for concurrent use.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// newEngine builds the goldmark instance: tables, definition lists, footnotes
// and fenced code, with heading ids. Raw HTML is omitted and dangerous link
// schemes are dropped because the unsafe renderer option is never set.
func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.DefinitionList,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
	)
}

// Render converts src to HTML and extracts its heading outline.
func (r *Renderer) Render(src string) (Document, error) {
	if src == "" {
		return Document{HTML: "", TOC: []Heading{}}, nil
	}
	defer observability.TrackRender()()

	source := []byte(src)
	engine := newEngine()
	root := engine.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	if err := engine.Renderer().Render(&buf, source, root); err != nil {
		return Document{}, fmt.Errorf("markdown render: %w", err)
	}

	return Document{HTML: buf.String(), TOC: buildTOC(collectHeadings(root, source))}, nil
}

func collectHeadings(root ast.Node, source []byte) []Heading {
	var flat []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			switch val := v.(type) {
			case []byte:
				id = string(val)
			case string:
				id = val
			}
		}
		flat = append(flat, Heading{
			Level: h.Level,
			ID:    id,
			Title: string(h.Text(source)),
		})
		return ast.WalkSkipChildren, nil
	})
	return flat
}

// buildTOC nests a flat heading list: each heading becomes a child of the
// closest preceding heading with a smaller level.
func buildTOC(flat []Heading) []Heading {
	toc := []Heading{}
	// path holds the chain of open ancestors as index paths into toc.
	type frame struct {
		level int
		list  *[]Heading
		index int
	}
	var path []frame

	for _, h := range flat {
		for len(path) > 0 && path[len(path)-1].level >= h.Level {
			path = path[:len(path)-1]
		}

		target := &toc
		if len(path) > 0 {
			parent := path[len(path)-1]
			target = &(*parent.list)[parent.index].Children
		}
		*target = append(*target, h)
		path = append(path, frame{level: h.Level, list: target, index: len(*target) - 1})
	}
	return toc
}
