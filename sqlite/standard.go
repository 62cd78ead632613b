package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pystandards"
)

// Ensure StandardService implements pystandards.StandardService.
var _ pystandards.StandardService = (*StandardService)(nil)

// StandardService implements pystandards.StandardService using SQLite.
type StandardService struct {
	db *DB
}

// NewStandardService creates a new StandardService.
func NewStandardService(db *DB) *StandardService {
	return &StandardService{db: db}
}

// ListCategories returns the indexed categories in declaration order.
func (s *StandardService) ListCategories(ctx context.Context) ([]pystandards.CategoryInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var infos []pystandards.CategoryInfo
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		infos = append(infos, pystandards.CategoryInfo{
			Category: pystandards.Category(id),
			Title:    title,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return infos, nil
}

// FindStandard loads a standard with its guidelines, examples and commands.
func (s *StandardService) FindStandard(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error) {
	if !category.Valid() {
		return nil, pystandards.Errorf(pystandards.ENOTFOUND, "unknown standard category: %s", category)
	}

	std := &pystandards.Standard{
		Category: category,
		Examples: []pystandards.Example{},
	}
	err := s.db.QueryRowContext(ctx,
		`SELECT title, description FROM categories WHERE id = ?`, string(category),
	).Scan(&std.Title, &std.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pystandards.Errorf(pystandards.ENOTFOUND, "standard category not indexed: %s", category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find standard %s: %w", category, err)
	}

	if std.Guidelines, err = s.guidelines(ctx, category); err != nil {
		return nil, err
	}
	if err := s.loadExamples(ctx, std); err != nil {
		return nil, err
	}
	return std, nil
}

// Search runs the shared keyword search over every indexed standard.
func (s *StandardService) Search(ctx context.Context, query string) ([]pystandards.SearchResult, error) {
	infos, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	standards := make([]*pystandards.Standard, 0, len(infos))
	for _, info := range infos {
		std, err := s.FindStandard(ctx, info.Category)
		if err != nil {
			return nil, err
		}
		standards = append(standards, std)
	}
	return pystandards.SearchStandards(standards, query), nil
}

// IndexedAt returns when category was last rewritten by the indexer.
func (s *StandardService) IndexedAt(ctx context.Context, category pystandards.Category) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT indexed_at FROM categories WHERE id = ?`, string(category),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, pystandards.Errorf(pystandards.ENOTFOUND, "standard category not indexed: %s", category)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read indexed_at for %s: %w", category, err)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse indexed_at for %s: %w", category, err)
	}
	return t, nil
}

func (s *StandardService) guidelines(ctx context.Context, category pystandards.Category) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM guidelines WHERE category_id = ? ORDER BY position`, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query guidelines: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan guideline: %w", err)
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

func (s *StandardService) loadExamples(ctx context.Context, std *pystandards.Standard) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, code, good_example, bad_example, field_order
		FROM examples
		WHERE category_id = ?
		ORDER BY position
	`, string(std.Category))
	if err != nil {
		return fmt.Errorf("failed to query examples: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id, order string
		var ex pystandards.Example
		if err := rows.Scan(&id, &ex.Title, &ex.Code, &ex.GoodExample, &ex.BadExample, &order); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan example: %w", err)
		}
		if order != "" {
			ex.Order = strings.Split(order, ",")
		}
		ids = append(ids, id)
		std.Examples = append(std.Examples, ex)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed to iterate examples: %w", err)
	}
	// A single connection is shared, so the cursor must be released before
	// querying commands.
	rows.Close()

	for i, id := range ids {
		cmds, err := s.commands(ctx, id)
		if err != nil {
			return err
		}
		std.Examples[i].Commands = cmds
	}
	return nil
}

func (s *StandardService) commands(ctx context.Context, exampleID string) (pystandards.Commands, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task, command FROM commands WHERE example_id = ? ORDER BY position`, exampleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commands: %w", err)
	}
	defer rows.Close()

	var out pystandards.Commands
	for rows.Next() {
		var c pystandards.Command
		if err := rows.Scan(&c.Task, &c.Command); err != nil {
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
