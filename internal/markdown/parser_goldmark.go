package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderOptions controls goldmark rendering of dataset bodies.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	// SafeMode drops raw HTML from the output.
	SafeMode bool
}

// Renderer converts Markdown bodies into HTML. A Renderer is safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer builds a renderer. Without extensions GFM and Linkify are enabled.
func NewRenderer(opts RenderOptions) *Renderer {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return &Renderer{engine: goldmark.New(engineOptions...)}
}

// Render converts markdown into HTML.
func (r *Renderer) Render(markdown []byte) (string, error) {
	if len(bytes.TrimSpace(markdown)) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
