package main

// Run executes the respond command.
func (c *RespondCmd) Run(deps *Dependencies) error {
	md, err := deps.assistant().Respond(deps.Ctx, c.Query)
	if err != nil {
		return deps.report(err)
	}
	deps.printMarkdown(md)
	return nil
}
