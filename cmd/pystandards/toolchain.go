package main

import (
	"fmt"

	"github.com/fwojciec/pystandards"
)

// Run executes the toolchain command.
func (c *ToolchainCmd) Run(deps *Dependencies) error {
	tc := pystandards.ProjectToolchain()

	rows := [][]string{
		{"Linter", tc.Linter},
		{"Formatter", tc.Formatter},
		{"Type Checker", tc.TypeChecker},
		{"Test Framework", tc.TestFramework},
		{"Build System", tc.BuildSystem},
	}
	fmt.Fprint(deps.Stdout, renderTable(deps.Styles, "Recommended Python Project Toolchain", []string{"Tool", "Recommendation"}, rows))

	fmt.Fprintf(deps.Stdout, "\n%s\n", deps.Styles.Title.Render("Common Commands:"))
	for _, cmd := range tc.Commands {
		fmt.Fprintf(deps.Stdout, "%s %s\n", deps.Styles.Key.Render(cmd.Task+":"), cmd.Command)
	}
	return nil
}
