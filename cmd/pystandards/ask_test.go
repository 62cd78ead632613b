package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pystandards"
	main "github.com/fwojciec/pystandards/cmd/pystandards"
	"github.com/fwojciec/pystandards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				if question == "Which linter?" {
					return "Use Ruff.", nil
				}
				return "", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Asker:  asker,
		}

		err := (&main.AskCmd{Question: "Which linter?"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Use Ruff.\n", stdout.String())
	})

	t.Run("returns asker error", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "", pystandards.Errorf(pystandards.EINVALID, "question required")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Asker:  asker,
		}

		err := (&main.AskCmd{Question: ""}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: question required\n", stderr.String())
	})

	t.Run("counts prompt tokens without asking", func(t *testing.T) {
		t.Parallel()

		prompter := &mock.Prompter{
			PromptFn: func(_ context.Context, question string) (string, error) {
				return "<standards></standards>\n\nQuestion: " + question, nil
			},
		}
		tokens := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				assert.Contains(t, text, "Question: Which linter?")
				return 4242, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Prompter: prompter,
			Tokens:   tokens,
		}

		err := (&main.AskCmd{Question: "Which linter?", Tokens: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Prompt tokens: 4242\n", stdout.String())
	})
}
