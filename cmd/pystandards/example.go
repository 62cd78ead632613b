package main

import (
	"github.com/fwojciec/pystandards"
)

// Run executes the example command.
func (c *ExampleCmd) Run(deps *Dependencies) error {
	category, err := pystandards.ParseCategory(c.Category)
	if err != nil {
		return deps.report(err)
	}

	text, err := deps.assistant().Example(deps.Ctx, category, c.Title)
	if err != nil {
		return deps.report(err)
	}

	deps.printText(text)
	return nil
}
