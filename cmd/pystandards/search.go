package main

import (
	"fmt"

	"github.com/fwojciec/pystandards"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Standards.Search(deps.Ctx, c.Query)
	if err != nil {
		return deps.report(err)
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for query: %s\n", c.Query)
		return nil
	}

	infos, err := deps.Standards.ListCategories(deps.Ctx)
	if err != nil {
		return deps.report(err)
	}
	titles := make(map[pystandards.Category]string, len(infos))
	for _, info := range infos {
		titles[info.Category] = info.Title
	}

	fmt.Fprintf(deps.Stdout, "Found %d results for query: %s\n\n", len(results), c.Query)
	deps.printMarkdown(pystandards.FormatSearchResults(results, titles))
	return nil
}
