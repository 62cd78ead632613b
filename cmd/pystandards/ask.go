package main

import (
	"fmt"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if c.Tokens {
		prompt, err := deps.Prompter.Prompt(deps.Ctx, c.Question)
		if err != nil {
			return deps.report(err)
		}
		n, err := deps.Tokens.CountTokens(deps.Ctx, prompt)
		if err != nil {
			return deps.report(err)
		}
		fmt.Fprintf(deps.Stdout, "Prompt tokens: %d\n", n)
		return nil
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		return deps.report(err)
	}

	deps.printMarkdown(answer)
	return nil
}
