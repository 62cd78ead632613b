// Package assistant formats the coding standards for AI assistants: worked
// examples, improvement suggestions for code snippets, and canned markdown
// responses to free-text queries.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pystandards"
)

// Python version and typing policy handed to assistants.
const (
	PythonVersion = "3.11+"
	TypingPolicy  = "Always use type hints, including PEP 695 generics"
)

// Assistant answers assistant-facing queries from a standards service.
type Assistant struct {
	standards pystandards.StandardService
}

// New creates a new Assistant.
func New(standards pystandards.StandardService) *Assistant {
	return &Assistant{standards: standards}
}

// Summary returns the digest of the standards for AI assistants.
func (a *Assistant) Summary(ctx context.Context) (*pystandards.AISummary, error) {
	ai, err := a.standards.FindStandard(ctx, pystandards.CategoryAIGuidelines)
	if err != nil {
		return nil, err
	}
	structure, err := a.standards.FindStandard(ctx, pystandards.CategoryProjectStructure)
	if err != nil {
		return nil, err
	}
	oop, err := a.standards.FindStandard(ctx, pystandards.CategoryOOPPrinciples)
	if err != nil {
		return nil, err
	}
	modern, err := a.standards.FindStandard(ctx, pystandards.CategoryModernFeatures)
	if err != nil {
		return nil, err
	}

	return &pystandards.AISummary{
		GeneralGuidelines: ai.Guidelines,
		ProjectStructure:  structure.Guidelines,
		PythonVersion:     PythonVersion,
		Typing:            TypingPolicy,
		PreferredTools: []pystandards.Tool{
			{Name: "linter", Value: "ruff"},
			{Name: "type_checker", Value: "mypy --strict"},
			{Name: "package_manager", Value: "hatch"},
		},
		OOPPrinciples:  exampleTitles(oop),
		ModernFeatures: exampleTitles(modern),
	}, nil
}

// StandardsMarkdown returns the AI summary as a markdown document.
func (a *Assistant) StandardsMarkdown(ctx context.Context) (string, error) {
	summary, err := a.Summary(ctx)
	if err != nil {
		return "", err
	}
	return FormatSummary(summary), nil
}

// FormatSummary formats an AI summary as a markdown document.
func FormatSummary(s *pystandards.AISummary) string {
	var sb strings.Builder
	sb.WriteString("# Python Coding Standards for AI Assistants\n")

	sb.WriteString("## General Guidelines\n")
	writeNumbered(&sb, s.GeneralGuidelines)

	sb.WriteString("\n## Project Structure\n")
	writeNumbered(&sb, s.ProjectStructure)

	sb.WriteString("\n## Technical Requirements\n")
	fmt.Fprintf(&sb, "- **Python version:** %s\n", s.PythonVersion)
	fmt.Fprintf(&sb, "- **Typing:** %s\n", s.Typing)

	sb.WriteString("\n## Preferred Tools\n")
	for _, tool := range s.PreferredTools {
		fmt.Fprintf(&sb, "- **%s:** %s\n", pystandards.Capitalize(tool.Name), tool.Value)
	}

	sb.WriteString("\n## OOP Principles\n")
	writeNumbered(&sb, s.OOPPrinciples)

	sb.WriteString("\n## Modern Features\n")
	writeNumbered(&sb, s.ModernFeatures)

	return sb.String()
}

// Example returns the primary text of an example in category. An empty
// title selects the first example. The primary text is the trimmed code,
// else the trimmed good example, else the whole record.
//
// Returns ENOTFOUND if the category is unknown or has no examples, or if no
// example has the given title.
func (a *Assistant) Example(ctx context.Context, category pystandards.Category, title string) (string, error) {
	s, err := a.standards.FindStandard(ctx, category)
	if err != nil {
		return "", err
	}

	if len(s.Examples) == 0 {
		return "", pystandards.Errorf(pystandards.ENOTFOUND, "no examples available for category: %s", category)
	}

	if title == "" {
		return primaryText(s.Examples[0]), nil
	}

	for _, ex := range s.Examples {
		if ex.Title == title {
			return primaryText(ex), nil
		}
	}
	return "", pystandards.Errorf(pystandards.ENOTFOUND, "example '%s' not found in category: %s", title, category)
}

const standardLayoutTitle = "Standard project layout"

const fallbackProjectStructure = `project/
├── src/
│   └── package_name/
│       ├── __init__.py
│       ├── main.py
├── tests/
│   ├── __init__.py
│   └── test_*.py
├── pyproject.toml
├── README.md
└── .gitignore`

// ProjectStructure returns the recommended project layout tree.
func (a *Assistant) ProjectStructure(ctx context.Context) (string, error) {
	s, err := a.standards.FindStandard(ctx, pystandards.CategoryProjectStructure)
	if err != nil {
		return "", err
	}
	for _, ex := range s.Examples {
		if ex.Title == standardLayoutTitle {
			return strings.TrimSpace(ex.Code), nil
		}
	}
	return fallbackProjectStructure, nil
}

func primaryText(ex pystandards.Example) string {
	switch {
	case ex.Code != "":
		return strings.TrimSpace(ex.Code)
	case ex.GoodExample != "":
		return strings.TrimSpace(ex.GoodExample)
	default:
		return ex.String()
	}
}

func exampleTitles(s *pystandards.Standard) []string {
	titles := make([]string, 0, len(s.Examples))
	for _, ex := range s.Examples {
		titles = append(titles, ex.Title)
	}
	return titles
}

func writeNumbered(sb *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}
