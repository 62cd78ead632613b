package main

import (
	"fmt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	infos, err := deps.Standards.ListCategories(deps.Ctx)
	if err != nil {
		return deps.report(err)
	}

	if len(infos) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found. Use 'pystandards index' to build the index.")
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{string(info.Category), info.Title})
	}
	fmt.Fprint(deps.Stdout, renderTable(deps.Styles, "Python Coding Standards Categories", []string{"Category", "Description"}, rows))
	return nil
}
