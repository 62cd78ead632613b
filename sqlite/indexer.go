package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pystandards"
	"github.com/google/uuid"
)

// IndexStats reports what an Index call did.
type IndexStats struct {
	Indexed   int
	Unchanged int
}

// Indexer writes standards into the database.
type Indexer struct {
	db  *DB
	now func() time.Time
}

// NewIndexer creates a new Indexer.
func NewIndexer(db *DB) *Indexer {
	return &Indexer{db: db, now: time.Now}
}

// Index stores the given standards. A standard whose content hash matches the
// stored one is left untouched; every other standard is replaced with its
// guidelines, examples and commands. All writes happen in one transaction.
func (i *Indexer) Index(ctx context.Context, standards []*pystandards.Standard) (IndexStats, error) {
	var stats IndexStats

	for _, s := range standards {
		if s == nil {
			return stats, pystandards.Errorf(pystandards.EINVALID, "standard required")
		}
		if err := s.Validate(); err != nil {
			return stats, err
		}
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	indexedAt := i.now().UTC().Format(time.RFC3339)
	for _, s := range standards {
		hash, err := hashStandard(s)
		if err != nil {
			return stats, fmt.Errorf("failed to hash standard %s: %w", s.Category, err)
		}

		var stored string
		err = tx.QueryRowContext(ctx,
			`SELECT content_hash FROM categories WHERE id = ?`, string(s.Category),
		).Scan(&stored)
		switch {
		case err == nil && stored == hash:
			stats.Unchanged++
			continue
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			return stats, fmt.Errorf("failed to read category %s: %w", s.Category, err)
		}

		if err := replaceStandard(ctx, tx, s, hash, indexedAt); err != nil {
			return stats, err
		}
		stats.Indexed++
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit index: %w", err)
	}
	return stats, nil
}

func replaceStandard(ctx context.Context, tx *sql.Tx, s *pystandards.Standard, hash, indexedAt string) error {
	id := string(s.Category)

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO categories (id, position, title, description, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, s.Category.Position(), s.Title, s.Description, hash, indexedAt)
	if err != nil {
		return fmt.Errorf("failed to insert category %s: %w", id, err)
	}

	for pos, g := range s.Guidelines {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO guidelines (category_id, position, text) VALUES (?, ?, ?)`,
			id, pos, g)
		if err != nil {
			return fmt.Errorf("failed to insert guideline %d of %s: %w", pos, id, err)
		}
	}

	for pos, ex := range s.Examples {
		exampleID := uuid.New().String()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO examples (id, category_id, position, title, code, good_example, bad_example, field_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, exampleID, id, pos, ex.Title, ex.Code, ex.GoodExample, ex.BadExample, strings.Join(ex.Order, ","))
		if err != nil {
			return fmt.Errorf("failed to insert example %q of %s: %w", ex.Title, id, err)
		}

		for cpos, c := range ex.Commands {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO commands (example_id, position, task, command) VALUES (?, ?, ?, ?)`,
				exampleID, cpos, c.Task, c.Command)
			if err != nil {
				return fmt.Errorf("failed to insert command %q: %w", c.Task, err)
			}
		}
	}
	return nil
}
