package pystandards_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pystandards"
	"github.com/stretchr/testify/assert"
)

func TestFormatStandard(t *testing.T) {
	t.Parallel()

	t.Run("formats title, description and numbered guidelines", func(t *testing.T) {
		t.Parallel()

		s := &pystandards.Standard{
			Category:    pystandards.CategoryEnvironment,
			Title:       "Development Environment",
			Description: "Recommended development environment setup",
			Guidelines:  []string{"Use Python 3.11+", "Use Docker"},
		}

		result := pystandards.FormatStandard(s)

		expected := "## Development Environment\n\n" +
			"Recommended development environment setup\n\n" +
			"### Guidelines\n\n" +
			"1. Use Python 3.11+\n" +
			"2. Use Docker\n"
		assert.Equal(t, expected, result)
	})

	t.Run("formats examples as fenced python blocks", func(t *testing.T) {
		t.Parallel()

		s := &pystandards.Standard{
			Title:       "OOP",
			Description: "desc",
			Guidelines:  []string{"g"},
			Examples: []pystandards.Example{
				{Title: "SRP", GoodExample: "\nclass A: ...\n", BadExample: "\nclass B: ...\n"},
			},
		}

		result := pystandards.FormatStandard(s)

		assert.Contains(t, result, "### Examples\n\n#### SRP\n")
		assert.Contains(t, result, "**Good example:**\n\n```python\nclass A: ...\n```\n")
		assert.Contains(t, result, "**Bad example:**\n\n```python\nclass B: ...\n```\n")
	})

	t.Run("formats example fields in declared order", func(t *testing.T) {
		t.Parallel()

		s := &pystandards.Standard{
			Title:       "OOP",
			Description: "desc",
			Guidelines:  []string{"g"},
			Examples: []pystandards.Example{{
				Title:       "SRP",
				GoodExample: "class A: ...",
				BadExample:  "class B: ...",
				Order:       []string{pystandards.FieldTitle, pystandards.FieldBadExample, pystandards.FieldGoodExample},
			}},
		}

		result := pystandards.FormatStandard(s)

		assert.Less(t, strings.Index(result, "**Bad example:**"), strings.Index(result, "**Good example:**"))
	})

	t.Run("formats commands as a table", func(t *testing.T) {
		t.Parallel()

		s := &pystandards.Standard{
			Title:       "Tools",
			Description: "desc",
			Guidelines:  []string{"g"},
			Examples: []pystandards.Example{
				{Title: "Hatch", Commands: pystandards.Commands{{Task: "tests", Command: "hatch run test"}}},
			},
		}

		result := pystandards.FormatStandard(s)

		assert.Contains(t, result, "| Task | Command |\n| --- | --- |\n| tests | `hatch run test` |\n")
	})
}

func TestFormatStandards(t *testing.T) {
	t.Parallel()

	result := pystandards.FormatStandards("Python Coding Standards", testStandards())

	assert.Contains(t, result, "# Python Coding Standards\n\n")
	assert.Contains(t, result, "- [Testing and Quality](#testing-and-quality)\n")
	assert.Contains(t, result, "- [Development Tools](#development-tools)\n")
	assert.NotContains(t, result, "](#guidelines)")
}

func TestFormatSearchResults(t *testing.T) {
	t.Parallel()

	t.Run("groups results by category in first-seen order", func(t *testing.T) {
		t.Parallel()

		results := []pystandards.SearchResult{
			{Category: pystandards.CategoryTesting, Field: "title", Text: "Testing and Quality"},
			{Category: pystandards.CategoryDevelopmentTools, Field: "guideline", Text: "Use Pytest for testing"},
			{Category: pystandards.CategoryTesting, Field: "description", Text: "Best practices for testing"},
		}
		titles := map[pystandards.Category]string{
			pystandards.CategoryTesting:          "Testing and Quality",
			pystandards.CategoryDevelopmentTools: "Development Tools",
		}

		result := pystandards.FormatSearchResults(results, titles)

		expected := "## Testing and Quality\n\n" +
			"**Title:** Testing and Quality\n\n" +
			"**Description:** Best practices for testing\n" +
			"\n" +
			"## Development Tools\n\n" +
			"**Guideline:** Use Pytest for testing\n"
		assert.Equal(t, expected, result)
	})

	t.Run("renders code-like example text as a code block", func(t *testing.T) {
		t.Parallel()

		results := []pystandards.SearchResult{
			{Category: pystandards.CategoryTesting, Field: "example.code", Text: "\ndef test_user(): ...\n"},
			{Category: pystandards.CategoryTesting, Field: "example.title", Text: "Unit test"},
		}

		result := pystandards.FormatSearchResults(results, nil)

		assert.Contains(t, result, "## testing\n")
		assert.Contains(t, result, "**Example (code):**\n\n```python\ndef test_user(): ...\n```\n")
		assert.Contains(t, result, "**Example (title):** Unit test\n")
	})

	t.Run("returns empty string for no results", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pystandards.FormatSearchResults(nil, nil))
	})
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Type_checker", pystandards.Capitalize("type_checker"))
	assert.Equal(t, "Linter", pystandards.Capitalize("LINTER"))
	assert.Empty(t, pystandards.Capitalize(""))
}
