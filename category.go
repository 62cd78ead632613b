package pystandards

// Category identifies one bucket of coding-standard content. The set of
// categories is closed; see Categories.
type Category string

// Category constants in declaration order.
const (
	CategoryProjectStructure      Category = "project_structure"
	CategoryDevelopmentTools      Category = "development_tools"
	CategoryOOPPrinciples         Category = "oop_principles"
	CategoryDesignPatterns        Category = "design_patterns"
	CategoryDataStructures        Category = "data_structures"
	CategoryModernFeatures        Category = "modern_features"
	CategoryFunctionalProgramming Category = "functional_programming"
	CategoryErrorHandling         Category = "error_handling"
	CategoryTesting               Category = "testing"
	CategoryEnvironment           Category = "environment"
	CategoryAIGuidelines          Category = "ai_guidelines"
	CategoryProjectTypes          Category = "project_types"
)

var categories = []Category{
	CategoryProjectStructure,
	CategoryDevelopmentTools,
	CategoryOOPPrinciples,
	CategoryDesignPatterns,
	CategoryDataStructures,
	CategoryModernFeatures,
	CategoryFunctionalProgramming,
	CategoryErrorHandling,
	CategoryTesting,
	CategoryEnvironment,
	CategoryAIGuidelines,
	CategoryProjectTypes,
}

// Categories returns every category in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return c.Position() >= 0
}

// Position returns the declaration index of c, or -1 if c is unknown.
func (c Category) Position() int {
	for i, cat := range categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseCategory converts s to a Category.
// Returns ENOTFOUND if s is not a known category identifier.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", Errorf(ENOTFOUND, "unknown standard category: %s", s)
	}
	return c, nil
}
