package mock

import (
	"context"

	"github.com/fwojciec/pystandards"
)

var _ pystandards.StandardService = (*StandardService)(nil)

// StandardService is a mock implementation of pystandards.StandardService.
type StandardService struct {
	ListCategoriesFn func(ctx context.Context) ([]pystandards.CategoryInfo, error)
	FindStandardFn   func(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error)
	SearchFn         func(ctx context.Context, query string) ([]pystandards.SearchResult, error)
}

func (s *StandardService) ListCategories(ctx context.Context) ([]pystandards.CategoryInfo, error) {
	return s.ListCategoriesFn(ctx)
}

func (s *StandardService) FindStandard(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error) {
	return s.FindStandardFn(ctx, category)
}

func (s *StandardService) Search(ctx context.Context, query string) ([]pystandards.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
