package assistant

import (
	"context"
	"strings"
)

// Suggestions produced by SuggestImprovements.
const (
	SuggestTypeHints         = "Add type hints to function return values and parameters"
	SuggestNamedFunctions    = "Replace complex lambda functions with named functions for better readability"
	SuggestDataclass         = "Consider using @dataclass to simplify this class definition"
	SuggestMutableDefaults   = "Avoid using mutable default arguments (lists, dicts, etc.)"
	SuggestContextManagers   = "Use context managers (with statement) for file operations"
	SuggestSpecificException = "Use specific exceptions instead of catching all exceptions"
)

const (
	// standardTipQuery selects the standards appended to every suggestion list.
	standardTipQuery = "best practice"
	maxStandardTips  = 2
	maxTipLength     = 200
)

// check is one textual heuristic. It reports whether its suggestion applies.
type check struct {
	suggestion string
	applies    func(snippet string) bool
}

// checks run in order; the order determines the order of suggestions.
var checks = []check{
	{SuggestTypeHints, func(s string) bool {
		return strings.Contains(s, "def ") && !strings.Contains(s, ") ->")
	}},
	{SuggestNamedFunctions, func(s string) bool {
		return strings.Contains(s, "lambda") && strings.Contains(s, "if") && strings.Contains(s, "else")
	}},
	{SuggestDataclass, func(s string) bool {
		if !strings.Contains(s, "def __init__") {
			return false
		}
		assignments := 0
		for _, line := range strings.Split(s, "\n") {
			if strings.Contains(line, "self.") && strings.Contains(line, " = ") {
				assignments++
			}
		}
		return assignments >= 3
	}},
	{SuggestMutableDefaults, func(s string) bool {
		return strings.Contains(s, "def ") && strings.Contains(s, "[]") && strings.Contains(s, " = []")
	}},
	{SuggestContextManagers, func(s string) bool {
		return strings.Contains(s, "open(") && !strings.Contains(s, "with open")
	}},
	{SuggestSpecificException, func(s string) bool {
		return strings.Contains(s, "except:") || strings.Contains(s, "except Exception:")
	}},
}

// SuggestImprovements runs a fixed sequence of pattern checks against a
// Python snippet and returns the suggestion of every check that fires,
// followed by up to two short best-practice tips from the standards.
//
// The checks look for substrings only; the snippet is never parsed.
func (a *Assistant) SuggestImprovements(ctx context.Context, snippet string) ([]string, error) {
	var suggestions []string
	for _, c := range checks {
		if c.applies(snippet) {
			suggestions = append(suggestions, c.suggestion)
		}
	}

	results, err := a.standards.Search(ctx, standardTipQuery)
	if err != nil {
		return nil, err
	}
	if len(results) > maxStandardTips {
		results = results[:maxStandardTips]
	}
	for _, r := range results {
		if len(r.Text) < maxTipLength {
			suggestions = append(suggestions, r.Text)
		}
	}

	return suggestions, nil
}
