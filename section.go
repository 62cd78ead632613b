package pystandards

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractSections parses markdown and returns all headings (H1-H6).
// It generates URL-safe anchors and handles duplicates with numeric suffixes.
// Lines starting with # inside fenced code blocks (Python comments in
// examples) are not headings.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	cleaned := codeBlockRe.ReplaceAllString(markdown, "")

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	anchors := NewAnchors()

	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		sections = append(sections, Section{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchors.Next(title),
		})
	}

	return sections
}

// FormatTableOfContents renders sections as a nested markdown link list.
// Sections deeper than maxLevel are skipped; maxLevel <= 0 keeps all.
func FormatTableOfContents(sections []Section, maxLevel int) string {
	if len(sections) == 0 {
		return ""
	}

	minLevel := 6
	for _, s := range sections {
		if s.Level < minLevel {
			minLevel = s.Level
		}
	}

	var sb strings.Builder
	for _, s := range sections {
		if maxLevel > 0 && s.Level > maxLevel {
			continue
		}
		sb.WriteString(strings.Repeat("  ", s.Level-minLevel))
		sb.WriteString("- [" + s.Title + "](#" + s.Anchor + ")\n")
	}
	return sb.String()
}

// Anchors hands out unique heading anchors for one document. The first use of
// a base anchor is returned as is; repeats get -1, -2, ... suffixes.
type Anchors struct {
	counts map[string]int
}

// NewAnchors returns an empty anchor set.
func NewAnchors() *Anchors {
	return &Anchors{counts: make(map[string]int)}
}

// Next returns the anchor for title and records it.
func (a *Anchors) Next(title string) string {
	base := generateAnchor(title)
	count, exists := a.counts[base]
	a.counts[base] = count + 1
	if !exists {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}

// Reserve marks anchor as taken without generating it from a title.
func (a *Anchors) Reserve(anchor string) {
	if _, exists := a.counts[anchor]; !exists {
		a.counts[anchor] = 1
	}
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
