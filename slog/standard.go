// Package slog provides log/slog decorators for the pystandards services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pystandards"
)

// Ensure LoggingStandardService implements pystandards.StandardService.
var _ pystandards.StandardService = (*LoggingStandardService)(nil)

// LoggingStandardService wraps a StandardService with logging.
type LoggingStandardService struct {
	next   pystandards.StandardService
	logger *slog.Logger
}

// NewLoggingStandardService creates a new LoggingStandardService.
func NewLoggingStandardService(next pystandards.StandardService, logger *slog.Logger) *LoggingStandardService {
	return &LoggingStandardService{next: next, logger: logger}
}

// ListCategories delegates to the wrapped service and logs the operation.
func (s *LoggingStandardService) ListCategories(ctx context.Context) (infos []pystandards.CategoryInfo, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list categories",
			"count", len(infos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListCategories(ctx)
}

// FindStandard delegates to the wrapped service and logs the operation.
func (s *LoggingStandardService) FindStandard(ctx context.Context, category pystandards.Category) (std *pystandards.Standard, err error) {
	defer func(begin time.Time) {
		var examples int
		if std != nil {
			examples = len(std.Examples)
		}
		s.logger.Info("find standard",
			"category", string(category),
			"examples", examples,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindStandard(ctx, category)
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingStandardService) Search(ctx context.Context, query string) (results []pystandards.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
