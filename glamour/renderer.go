// Package glamour renders markdown for the terminal using
// github.com/charmbracelet/glamour.
package glamour

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fwojciec/pystandards"
)

// Ensure Renderer implements pystandards.Renderer at compile time.
var _ pystandards.Renderer = (*Renderer)(nil)

// DefaultWidth is the word wrap width used when none is configured.
const DefaultWidth = 100

// Config configures a Renderer.
type Config struct {
	// Width is the word wrap column. Zero means DefaultWidth.
	Width int
	// Plain disables colors and other terminal styling.
	Plain bool
}

// Renderer renders markdown with glamour.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a new Renderer.
func NewRenderer(cfg Config) (*Renderer, error) {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if cfg.Plain {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	term, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, pystandards.Errorf(pystandards.EINTERNAL, "failed to create markdown renderer: %v", err)
	}
	return &Renderer{term: term}, nil
}

// Render renders markdown for display.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.term.Render(markdown)
}
