package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/assistant"
	"github.com/fwojciec/pystandards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistant_Respond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		heading  string
		contains []string
	}{
		{
			query:    "project structure",
			heading:  "## Recommended Project Structure",
			contains: []string{"Project Structure", "src-layout", "```\nproject/\n"},
		},
		{
			query:    "recommended tools",
			heading:  "## Recommended Toolchain",
			contains: []string{"Toolchain", "Ruff", "MyPy"},
		},
		{
			query:    "OOP principles",
			heading:  "## OOP Best Practices",
			contains: []string{"Single Responsibility Principle", "**Example - Single Responsibility Principle:**\n```python\n# Good: Separate responsibilities"},
		},
		{
			query:    "modern Python features",
			heading:  "## Modern Python Features",
			contains: []string{"```python\ndef process_items[T](items: list[T]) -> list[T]:"},
		},
		{
			query:    "testing",
			heading:  "## Testing Best Practices",
			contains: []string{"def test_user_creation():"},
		},
		{
			query:    "functional programming",
			heading:  "## Functional Programming in Python",
			contains: []string{"squares = [x**2 for x in range(10) if x % 2 == 0]"},
		},
		{
			query:    "error handling",
			heading:  "## Error Handling Best Practices",
			contains: []string{"'''Base exception for all domain errors.'''\n    \nclass UserNotFoundError(DomainError):"},
		},
		{
			query:   "give me some advice",
			heading: "## Python Coding Standards - Quick Reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			response, err := newAssistant().Respond(context.Background(), tt.query)

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(response, tt.heading+"\n"), response)
			for _, want := range tt.contains {
				assert.Contains(t, response, want)
			}
		})
	}

	t.Run("earlier keyword groups win", func(t *testing.T) {
		t.Parallel()

		// "class" (OOP) outranks "test" (testing).
		response, err := newAssistant().Respond(context.Background(), "How should I test a class?")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(response, "## OOP Best Practices"))
	})

	t.Run("renders without example when it is missing", func(t *testing.T) {
		t.Parallel()

		svc := &mock.StandardService{
			FindStandardFn: func(_ context.Context, c pystandards.Category) (*pystandards.Standard, error) {
				return &pystandards.Standard{Category: c, Title: "OOP"}, nil
			},
		}

		response, err := assistant.New(svc).Respond(context.Background(), "inheritance")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(response, "## OOP Best Practices"))
		assert.NotContains(t, response, "```python")
	})

	t.Run("propagates other lookup errors", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("index unavailable")
		svc := &mock.StandardService{
			FindStandardFn: func(context.Context, pystandards.Category) (*pystandards.Standard, error) {
				return nil, expectedErr
			},
		}

		_, err := assistant.New(svc).Respond(context.Background(), "dataclass")

		assert.Equal(t, expectedErr, err)
	})
}
