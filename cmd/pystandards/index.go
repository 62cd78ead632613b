package main

import (
	"fmt"

	"github.com/fwojciec/pystandards/content"
	"github.com/fwojciec/pystandards/sqlite"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.Path)
	if err := db.Open(); err != nil {
		return deps.report(fmt.Errorf("failed to open database at %q: %w", c.Path, err))
	}
	defer db.Close()

	stats, err := sqlite.NewIndexer(db).Index(deps.Ctx, content.Standards())
	if err != nil {
		return deps.report(err)
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d categories into %s (%d unchanged)\n", stats.Indexed, c.Path, stats.Unchanged)
	return nil
}
