package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pystandards"
)

var _ pystandards.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   pystandards.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next pystandards.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the question size and answer size.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"question_len", len(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
