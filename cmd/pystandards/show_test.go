package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pystandards"
	main "github.com/fwojciec/pystandards/cmd/pystandards"
	"github.com/fwojciec/pystandards/content"
	"github.com/fwojciec/pystandards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown when renderer is set", func(t *testing.T) {
		t.Parallel()

		var rendered string
		renderer := &mock.Renderer{
			RenderFn: func(markdown string) (string, error) {
				rendered = markdown
				return "RENDERED\n", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Standards: content.NewStore(),
			Renderer:  renderer,
		}

		err := (&main.ShowCmd{Category: "design_patterns"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "RENDERED\n", stdout.String())
		assert.Contains(t, rendered, "## Design Patterns")
	})

	t.Run("reports lookup miss without failing", func(t *testing.T) {
		t.Parallel()

		standards := &mock.StandardService{
			FindStandardFn: func(_ context.Context, category pystandards.Category) (*pystandards.Standard, error) {
				return nil, pystandards.Errorf(pystandards.ENOTFOUND, "standard category not indexed: %s", category)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Standards: standards,
		}

		err := (&main.ShowCmd{Category: "testing"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "error: standard category not indexed: testing\n", stderr.String())
	})
}
