package pystandards

import "context"

// Asker answers natural language questions using the standards as context.
type Asker interface {
	// Ask answers a question about the coding standards.
	// Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string) (string, error)
}

// TokenCounter counts tokens in text for a language model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
