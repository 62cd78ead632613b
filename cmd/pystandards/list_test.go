package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pystandards"
	main "github.com/fwojciec/pystandards/cmd/pystandards"
	"github.com/fwojciec/pystandards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists categories with id and title", func(t *testing.T) {
		t.Parallel()

		standards := &mock.StandardService{
			ListCategoriesFn: func(context.Context) ([]pystandards.CategoryInfo, error) {
				return []pystandards.CategoryInfo{
					{Category: pystandards.CategoryTesting, Title: "Testing and Quality"},
					{Category: pystandards.CategoryEnvironment, Title: "Development Environment"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Standards: standards,
			Styles:    main.PlainStyles(),
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.NotContains(t, out, "\x1b")
		assert.True(t, strings.HasPrefix(out, "Python Coding Standards Categories\n\n"), out)

		lines := strings.Split(out, "\n")
		header := lineIndex(lines, "Category", "Description")
		testingRow := lineIndex(lines, "testing", "Testing and Quality")
		environment := lineIndex(lines, "environment", "Development Environment")
		require.NotEqual(t, -1, header, out)
		assert.Greater(t, testingRow, header, out)
		assert.Greater(t, environment, testingRow, out)
	})

	t.Run("shows helpful message when index is empty", func(t *testing.T) {
		t.Parallel()

		standards := &mock.StandardService{
			ListCategoriesFn: func(context.Context) ([]pystandards.CategoryInfo, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Standards: standards,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "pystandards index")
	})

	t.Run("returns service error", func(t *testing.T) {
		t.Parallel()

		standards := &mock.StandardService{
			ListCategoriesFn: func(context.Context) ([]pystandards.CategoryInfo, error) {
				return nil, pystandards.Errorf(pystandards.EINTERNAL, "database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Standards: standards,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: database error\n", stderr.String())
	})
}

// lineIndex returns the index of the first line containing every part, or -1.
func lineIndex(lines []string, parts ...string) int {
	for i, line := range lines {
		found := true
		for _, p := range parts {
			if !strings.Contains(line, p) {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}
