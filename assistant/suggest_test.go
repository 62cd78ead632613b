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

// noTips is a standards service whose search finds nothing, isolating the
// pattern checks from the appended best-practice tips.
func noTips() *mock.StandardService {
	return &mock.StandardService{
		SearchFn: func(context.Context, string) ([]pystandards.SearchResult, error) {
			return nil, nil
		},
	}
}

func TestAssistant_SuggestImprovements(t *testing.T) {
	t.Parallel()

	t.Run("flags type hints, mutable defaults and bare except", func(t *testing.T) {
		t.Parallel()

		snippet := `
def process_data(items=[]):
    results = []
    for item in items:
        try:
            results.append(item * 2)
        except:
            pass
    return results
`
		suggestions, err := newAssistant().SuggestImprovements(context.Background(), snippet)

		require.NoError(t, err)
		require.GreaterOrEqual(t, len(suggestions), 3)
		joined := strings.ToLower(strings.Join(suggestions, "\n"))
		assert.Contains(t, joined, "type hints")
		assert.Contains(t, joined, "mutable default")
		assert.Contains(t, joined, "specific exceptions")
	})

	t.Run("appends two best-practice tips from the standards", func(t *testing.T) {
		t.Parallel()

		suggestions, err := newAssistant().SuggestImprovements(context.Background(), "x = 1")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Best practices for OOP in Python",
			"Best practices for handling errors and resources",
		}, suggestions)
	})

	tests := []struct {
		name    string
		snippet string
		want    []string
	}{
		{
			name:    "annotated function passes",
			snippet: "def f(x: int) -> int:\n    return x",
			want:    nil,
		},
		{
			name:    "complex lambda",
			snippet: "f = lambda x: 1 if x else 0",
			want:    []string{assistant.SuggestNamedFunctions},
		},
		{
			name: "dataclass candidate",
			snippet: "class User:\n    def __init__(self, a, b, c) -> None:\n" +
				"        self.a = a\n        self.b = b\n        self.c = c\n",
			want: []string{assistant.SuggestDataclass},
		},
		{
			name:    "two assignments are not a dataclass candidate",
			snippet: "class User:\n    def __init__(self, a, b) -> None:\n        self.a = a\n        self.b = b\n",
			want:    nil,
		},
		{
			name:    "open without context manager",
			snippet: "f = open('data.txt')",
			want:    []string{assistant.SuggestContextManagers},
		},
		{
			name:    "open inside with statement",
			snippet: "with open('data.txt') as f:\n    pass",
			want:    nil,
		},
		{
			name:    "catching Exception",
			snippet: "try:\n    run()\nexcept Exception:\n    pass",
			want:    []string{assistant.SuggestSpecificException},
		},
		{
			name:    "checks fire in fixed order",
			snippet: "def f(x = []):\n    try:\n        open('a')\n    except:\n        pass",
			want: []string{
				assistant.SuggestTypeHints,
				assistant.SuggestMutableDefaults,
				assistant.SuggestContextManagers,
				assistant.SuggestSpecificException,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			suggestions, err := assistant.New(noTips()).SuggestImprovements(context.Background(), tt.snippet)

			require.NoError(t, err)
			assert.Equal(t, tt.want, suggestions)
		})
	}

	t.Run("skips long tips", func(t *testing.T) {
		t.Parallel()

		svc := &mock.StandardService{
			SearchFn: func(context.Context, string) ([]pystandards.SearchResult, error) {
				return []pystandards.SearchResult{
					{Text: strings.Repeat("x", 200)},
					{Text: "short tip"},
					{Text: "third tip is never considered"},
				}, nil
			},
		}

		suggestions, err := assistant.New(svc).SuggestImprovements(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, []string{"short tip"}, suggestions)
	})

	t.Run("propagates search error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("search failed")
		svc := &mock.StandardService{
			SearchFn: func(context.Context, string) ([]pystandards.SearchResult, error) {
				return nil, expectedErr
			},
		}

		_, err := assistant.New(svc).SuggestImprovements(context.Background(), "def f(): pass")

		assert.Equal(t, expectedErr, err)
	})
}
