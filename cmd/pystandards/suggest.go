package main

import (
	"fmt"
	"io"
	"os"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	snippet, err := c.read(deps)
	if err != nil {
		return deps.report(err)
	}

	tips, err := deps.assistant().SuggestImprovements(deps.Ctx, snippet)
	if err != nil {
		return deps.report(err)
	}

	if len(tips) == 0 {
		fmt.Fprintln(deps.Stdout, "No suggestions.")
		return nil
	}
	for _, tip := range tips {
		fmt.Fprintf(deps.Stdout, "- %s\n", tip)
	}
	return nil
}

func (c *SuggestCmd) read(deps *Dependencies) (string, error) {
	if c.File == "" || c.File == "-" {
		if deps.Stdin == nil {
			return "", nil
		}
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	return string(data), nil
}
