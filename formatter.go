package pystandards

import (
	"fmt"
	"strings"
)

// FormatStandard formats a standard as markdown: a level-2 title heading,
// the description, numbered guidelines, and the examples with fenced
// Python blocks and command tables.
func FormatStandard(s *Standard) string {
	var sb strings.Builder
	sb.WriteString("## " + s.Title + "\n\n")
	sb.WriteString(s.Description + "\n\n")

	sb.WriteString("### Guidelines\n\n")
	for i, g := range s.Guidelines {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, g)
	}

	if len(s.Examples) > 0 {
		sb.WriteString("\n### Examples\n")
		for _, ex := range s.Examples {
			sb.WriteString("\n#### " + ex.Title + "\n")
			for _, key := range ex.Keys() {
				switch key {
				case FieldCode:
					writeCodeBlock(&sb, "", ex.Code)
				case FieldGoodExample:
					writeCodeBlock(&sb, "**Good example:**", ex.GoodExample)
				case FieldBadExample:
					writeCodeBlock(&sb, "**Bad example:**", ex.BadExample)
				case FieldCommands:
					sb.WriteString("\n| Task | Command |\n| --- | --- |\n")
					for _, c := range ex.Commands {
						fmt.Fprintf(&sb, "| %s | `%s` |\n", c.Task, c.Command)
					}
				}
			}
		}
	}

	return sb.String()
}

// FormatStandards formats every standard under a single document heading.
// The document starts with a table of contents linking each standard.
func FormatStandards(title string, standards []*Standard) string {
	parts := make([]string, 0, len(standards))
	for _, s := range standards {
		parts = append(parts, FormatStandard(s))
	}
	body := strings.Join(parts, "\n")

	return "# " + title + "\n\n" + FormatTableOfContents(ExtractSections(body), 2) + "\n" + body
}

// FormatSearchResults formats search results as markdown grouped by
// category in first-seen order. titles maps categories to the heading used
// for their group; the category identifier is used when a title is missing.
func FormatSearchResults(results []SearchResult, titles map[Category]string) string {
	if len(results) == 0 {
		return ""
	}

	var order []Category
	groups := make(map[Category][]SearchResult)
	for _, r := range results {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}

	parts := make([]string, 0, len(order))
	for _, cat := range order {
		heading := titles[cat]
		if heading == "" {
			heading = string(cat)
		}

		var sb strings.Builder
		sb.WriteString("## " + heading + "\n")
		for _, r := range groups[cat] {
			sb.WriteString("\n")
			switch {
			case r.Field == FieldTitle:
				sb.WriteString("**Title:** " + r.Text + "\n")
			case r.Field == FieldDescription:
				sb.WriteString("**Description:** " + r.Text + "\n")
			case strings.HasPrefix(r.Field, "example."):
				key := strings.TrimPrefix(r.Field, "example.")
				text := strings.TrimSpace(r.Text)
				if looksLikeCode(text) {
					writeCodeBlock(&sb, "**Example ("+key+"):**", text)
				} else {
					sb.WriteString("**Example (" + key + "):** " + text + "\n")
				}
			default:
				sb.WriteString("**" + Capitalize(r.Field) + ":** " + r.Text + "\n")
			}
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n")
}

// writeCodeBlock writes a fenced Python block preceded by an optional label.
// Blank code is skipped.
func writeCodeBlock(sb *strings.Builder, label, code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	if label != "" {
		sb.WriteString("\n" + label + "\n")
	}
	sb.WriteString("\n```python\n" + code + "\n```\n")
}

func looksLikeCode(text string) bool {
	for _, prefix := range []string{"#", "class", "def"} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
