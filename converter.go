package pystandards

// Converter converts Markdown to HTML.
type Converter interface {
	// Convert transforms Markdown content into an HTML fragment.
	Convert(markdown string) (string, error)
}

// Renderer renders Markdown for display on a terminal.
type Renderer interface {
	Render(markdown string) (string, error)
}
