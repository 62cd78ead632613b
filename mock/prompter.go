package mock

import "context"

// Prompter is a mock of the prompt builder used by the ask command.
type Prompter struct {
	PromptFn func(ctx context.Context, question string) (string, error)
}

func (p *Prompter) Prompt(ctx context.Context, question string) (string, error) {
	return p.PromptFn(ctx, question)
}
