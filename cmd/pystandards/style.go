package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for tables and headings.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style

	// Border frames tables. Plain output keeps only the header rule and
	// column separators.
	Border lipgloss.Border
	Plain  bool
}

// NewStyles creates styles for output written to w. Plain styles never emit
// escape sequences.
func NewStyles(w io.Writer, plain bool) Styles {
	r := lipgloss.NewRenderer(w)
	border := lipgloss.RoundedBorder()
	if plain {
		r.SetColorProfile(termenv.Ascii)
		border = lipgloss.ASCIIBorder()
	}
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Header: r.NewStyle().Bold(true),
		Key:    r.NewStyle().Foreground(lipgloss.Color("6")),
		Value:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Muted:  r.NewStyle().Faint(true),
		Border: border,
		Plain:  plain,
	}
}

// PlainStyles returns styles that leave text unchanged.
func PlainStyles() Styles {
	return NewStyles(io.Discard, true)
}

// renderTable renders rows under headers as a lipgloss table. The first
// column uses the Key style and the rest the Value style.
func renderTable(styles Styles, title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(styles.Border).
		BorderStyle(styles.Muted).
		BorderTop(!styles.Plain).
		BorderBottom(!styles.Plain).
		BorderLeft(!styles.Plain).
		BorderRight(!styles.Plain).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header.Padding(0, 1)
			case col == 0:
				return styles.Key.Padding(0, 1)
			default:
				return styles.Value.Padding(0, 1)
			}
		})

	var sb strings.Builder
	if title != "" {
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n\n")
	}
	for _, line := range strings.Split(t.String(), "\n") {
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String()
}
