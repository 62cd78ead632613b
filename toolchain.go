package pystandards

// Toolchain is the recommended set of tools for a Python project.
type Toolchain struct {
	Linter        string   `json:"linter"`
	Formatter     string   `json:"formatter"`
	TypeChecker   string   `json:"type_checker"`
	TestFramework string   `json:"test_framework"`
	BuildSystem   string   `json:"build_system"`
	Commands      Commands `json:"commands"`
}

// ProjectToolchain returns the recommended toolchain. The recommendation is
// fixed; nothing is detected from the environment.
func ProjectToolchain() Toolchain {
	return Toolchain{
		Linter:        "ruff",
		Formatter:     "ruff format",
		TypeChecker:   "mypy --strict",
		TestFramework: "pytest",
		BuildSystem:   "hatch",
		Commands: Commands{
			{Task: "lint", Command: "hatch run lint"},
			{Task: "format", Command: "hatch run format"},
			{Task: "type_check", Command: "hatch run type"},
			{Task: "test", Command: "hatch run test"},
			{Task: "dev", Command: "hatch run dev"},
		},
	}
}

// Tool is a named tool recommendation.
type Tool struct {
	Name  string
	Value string
}

// AISummary is the digest of the standards handed to AI assistants.
type AISummary struct {
	GeneralGuidelines []string
	ProjectStructure  []string
	PythonVersion     string
	Typing            string
	PreferredTools    []Tool
	OOPPrinciples     []string
	ModernFeatures    []string
}
