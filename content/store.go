// Package content holds the built-in Python coding standards and an
// in-memory implementation of pystandards.StandardService over them.
package content

import (
	"context"

	"github.com/fwojciec/pystandards"
)

// Ensure Store implements pystandards.StandardService at compile time.
var _ pystandards.StandardService = (*Store)(nil)

// Store serves the built-in standards from memory. The tables are never
// mutated; every method hands out copies.
type Store struct {
	standards []*pystandards.Standard
	index     map[pystandards.Category]*pystandards.Standard
}

// NewStore returns a Store over the built-in standards.
func NewStore() *Store {
	s := &Store{
		standards: tables,
		index:     make(map[pystandards.Category]*pystandards.Standard, len(tables)),
	}
	for _, std := range tables {
		s.index[std.Category] = std
	}
	return s
}

// Standards returns a copy of every built-in standard in category order.
func Standards() []*pystandards.Standard {
	out := make([]*pystandards.Standard, len(tables))
	for i, s := range tables {
		out[i] = s.Clone()
	}
	return out
}

// ListCategories returns every category with its title in declaration order.
func (s *Store) ListCategories(ctx context.Context) ([]pystandards.CategoryInfo, error) {
	infos := make([]pystandards.CategoryInfo, 0, len(s.standards))
	for _, std := range s.standards {
		infos = append(infos, pystandards.CategoryInfo{Category: std.Category, Title: std.Title})
	}
	return infos, nil
}

// FindStandard retrieves the standard for a category.
func (s *Store) FindStandard(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error) {
	if !category.Valid() {
		return nil, pystandards.Errorf(pystandards.ENOTFOUND, "unknown standard category: %s", category)
	}
	std, ok := s.index[category]
	if !ok {
		return nil, pystandards.Errorf(pystandards.ENOTFOUND, "no standard for category: %s", category)
	}
	return std.Clone(), nil
}

// Search scans every standard for text containing query.
func (s *Store) Search(ctx context.Context, query string) ([]pystandards.SearchResult, error) {
	return pystandards.SearchStandards(s.standards, query), nil
}
