package mock

import (
	"context"

	"github.com/fwojciec/pystandards"
)

var _ pystandards.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of pystandards.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
