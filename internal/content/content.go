// Package content carries the page copy as embedded markdown and renders it
// through glamour. Copy is presentational; only the rendering plumbing is
// interesting enough to test.
package content

import (
	_ "embed"

	"github.com/charmbracelet/glamour"

	"aurora/internal/store"
)

//go:embed hero.md
var heroMarkdown string

//go:embed closing.md
var closingMarkdown string

// Renderer renders the embedded copy for one theme and wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// NewRenderer builds a renderer for the given theme and wrap width. A
// renderer construction failure is survivable: Render falls back to the raw
// markdown.
func NewRenderer(theme store.ThemeMode, wrap int) *Renderer {
	style := "light"
	if theme == store.ThemeDark {
		style = "dark"
	}
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		r = nil
	}
	return &Renderer{renderer: r}
}

// Hero returns the rendered hero copy.
func (r *Renderer) Hero() string {
	return r.render(heroMarkdown)
}

// Closing returns the rendered closing copy.
func (r *Renderer) Closing() string {
	return r.render(closingMarkdown)
}

// render renders markdown, falling back to the raw text on any error or
// panic inside glamour.
func (r *Renderer) render(md string) (out string) {
	defer func() {
		if recover() != nil {
			out = md
		}
	}()

	if r.renderer == nil {
		return md
	}
	rendered, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
