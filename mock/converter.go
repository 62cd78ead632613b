package mock

import "github.com/fwojciec/pystandards"

var _ pystandards.Converter = (*Converter)(nil)

// Converter is a mock implementation of pystandards.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}

var _ pystandards.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pystandards.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
