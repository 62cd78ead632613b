package main

import (
	"fmt"

	"github.com/fwojciec/pystandards"
)

// Run executes the export command. Failures are reported on stderr and do
// not change the exit status.
func (c *ExportCmd) Run(deps *Dependencies) error {
	infos, err := deps.Standards.ListCategories(deps.Ctx)
	if err != nil {
		return deps.report(err)
	}

	standards := make([]*pystandards.Standard, 0, len(infos))
	for _, info := range infos {
		std, err := deps.Standards.FindStandard(deps.Ctx, info.Category)
		if err != nil {
			return deps.report(err)
		}
		standards = append(standards, std)
	}

	if err := deps.Exporter.WriteExport(deps.Ctx, c.Output, pystandards.NewExport(infos, standards)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: exporting standards: %s\n", errorText(err))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Standards exported to: %s\n", c.Output)
	return nil
}
