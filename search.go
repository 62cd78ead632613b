package pystandards

import "strings"

// Search result field names for top-level standard content. Example fields
// are reported as "example.<key>".
const (
	FieldDescription = "description"
	FieldGuideline   = "guideline"
)

// SearchResult is one piece of standard content that matched a query.
type SearchResult struct {
	Category Category `json:"category"`
	Field    string   `json:"field"`
	Text     string   `json:"text"`
}

// SearchStandards scans standards for text containing query, ignoring case.
//
// Results follow standards order. Within a standard the title comes first,
// then the description, the guidelines in order, and the example fields in
// the order given by Example.Fields. An empty query matches every non-empty
// text. There is no ranking or deduplication.
func SearchStandards(standards []*Standard, query string) []SearchResult {
	query = strings.ToLower(query)

	var results []SearchResult
	match := func(category Category, field, text string) {
		if text != "" && strings.Contains(strings.ToLower(text), query) {
			results = append(results, SearchResult{Category: category, Field: field, Text: text})
		}
	}

	for _, s := range standards {
		match(s.Category, FieldTitle, s.Title)
		match(s.Category, FieldDescription, s.Description)
		for _, g := range s.Guidelines {
			match(s.Category, FieldGuideline, g)
		}
		for _, ex := range s.Examples {
			for _, f := range ex.Fields() {
				match(s.Category, "example."+f.Name, f.Text)
			}
		}
	}

	return results
}
