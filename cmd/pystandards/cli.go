package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/assistant"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Standards pystandards.StandardService
	Renderer  pystandards.Renderer
	Styles    Styles
	Exporter  pystandards.ExportWriter
	Asker     pystandards.Asker
	Prompter  Prompter
	Tokens    pystandards.TokenCounter
}

// Prompter builds the prompt sent to a language model for a question.
type Prompter interface {
	Prompt(ctx context.Context, question string) (string, error)
}

func (d *Dependencies) assistant() *assistant.Assistant {
	return assistant.New(d.Standards)
}

// printMarkdown writes markdown to stdout, rendered when a renderer is set.
func (d *Dependencies) printMarkdown(markdown string) {
	if d.Renderer != nil {
		if out, err := d.Renderer.Render(markdown); err == nil {
			fmt.Fprint(d.Stdout, out)
			return
		}
	}
	d.printText(markdown)
}

// printText writes s to stdout followed by a newline unless s ends with one.
func (d *Dependencies) printText(s string) {
	fmt.Fprint(d.Stdout, s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(d.Stdout)
	}
}

// report prints err to stderr. Lookup misses are reported but not returned,
// so they never change the exit status.
func (d *Dependencies) report(err error) error {
	fmt.Fprintf(d.Stderr, "error: %s\n", errorText(err))
	if pystandards.ErrorCode(err) == pystandards.ENOTFOUND {
		return nil
	}
	return err
}

// errorText returns the message of an application error, or the full text of
// any other error.
func errorText(err error) string {
	var e *pystandards.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Vars returns the kong variables interpolated into CLI tags.
func Vars() kong.Vars {
	ids := make([]string, 0, len(pystandards.Categories()))
	for _, c := range pystandards.Categories() {
		ids = append(ids, string(c))
	}
	return kong.Vars{"categories": strings.Join(ids, ",")}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"PYSTANDARDS_DB" help:"Read standards from this SQLite index instead of the built-in tables"`
	Verbose bool   `short:"v" help:"Log service calls to stderr"`
	Plain   bool   `help:"Disable terminal styling"`

	List      ListCmd      `cmd:"" default:"1" help:"List all standard categories"`
	Show      ShowCmd      `cmd:"" help:"Show a specific standard"`
	Search    SearchCmd    `cmd:"" help:"Search through standards"`
	Toolchain ToolchainCmd `cmd:"" help:"Show recommended project toolchain"`
	AI        AICmd        `cmd:"" name:"ai" help:"Show standards summary for AI assistants"`
	Export    ExportCmd    `cmd:"" help:"Export standards as JSON, YAML, Markdown or HTML"`
	Example   ExampleCmd   `cmd:"" help:"Print an example from a category"`
	Suggest   SuggestCmd   `cmd:"" help:"Suggest improvements for a Python snippet"`
	Respond   RespondCmd   `cmd:"" help:"Answer a question with a canned standards response"`
	Structure StructureCmd `cmd:"" help:"Print the recommended project layout"`
	Pyproject PyprojectCmd `cmd:"" help:"Print a sample pyproject.toml"`
	Index     IndexCmd     `cmd:"" help:"Write the built-in standards to a SQLite index"`
	Ask       AskCmd       `cmd:"" help:"Ask Gemini a question about the standards"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Category string `arg:"" enum:"${categories}" help:"The standard category to display (${enum})"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"The search query"`
}

// ToolchainCmd is the "toolchain" subcommand.
type ToolchainCmd struct{}

// AICmd is the "ai" subcommand.
type AICmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `arg:"" help:"Output file path; the extension picks the format (e.g., standards.json)"`
}

// ExampleCmd is the "example" subcommand.
type ExampleCmd struct {
	Category string `arg:"" enum:"${categories}" help:"The standard category (${enum})"`
	Title    string `short:"t" help:"Example title; defaults to the first example"`
}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	File string `arg:"" optional:"" help:"Python file to check; reads stdin when empty or -"`
}

// RespondCmd is the "respond" subcommand.
type RespondCmd struct {
	Query string `arg:"" help:"Question about Python coding standards"`
}

// StructureCmd is the "structure" subcommand.
type StructureCmd struct{}

// PyprojectCmd is the "pyproject" subcommand.
type PyprojectCmd struct{}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Path string `arg:"" help:"SQLite database path"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the standards"`
	Tokens   bool   `help:"Print the prompt token count instead of asking"`
}
