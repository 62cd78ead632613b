package main

// Run executes the ai command.
func (c *AICmd) Run(deps *Dependencies) error {
	md, err := deps.assistant().StandardsMarkdown(deps.Ctx)
	if err != nil {
		return deps.report(err)
	}
	deps.printMarkdown(md)
	return nil
}
