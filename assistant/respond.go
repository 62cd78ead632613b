package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pystandards"
)

// rule maps a group of query keywords to a response template.
type rule struct {
	keywords []string
	render   func(ctx context.Context, a *Assistant) (string, error)
}

// rules are evaluated in priority order; the first rule with a keyword
// contained in the lowercased query wins.
var rules = []rule{
	{[]string{"structure", "layout", "organization"}, renderStructure},
	{[]string{"tools", "toolchain", "configuration", "setup"}, renderStatic(toolchainResponse)},
	{[]string{"oop", "class", "object", "inheritance"}, renderWithExample(
		pystandards.CategoryOOPPrinciples, "Single Responsibility Principle (SRP)", oopResponse,
	)},
	{[]string{"modern", "features", "dataclass", "typing"}, renderWithExample(
		pystandards.CategoryModernFeatures, "Type Annotations and Generics", modernResponse,
	)},
	{[]string{"test", "testing", "pytest"}, renderStatic(testingResponse)},
	{[]string{"functional", "lambda", "comprehension"}, renderWithExample(
		pystandards.CategoryFunctionalProgramming, "List Comprehensions", functionalResponse,
	)},
	{[]string{"error", "exception", "handling"}, renderStatic(errorHandlingResponse)},
}

// Respond returns a canned markdown response for a free-text query about
// the standards. Queries that match no keyword group get the quick
// reference.
func (a *Assistant) Respond(ctx context.Context, query string) (string, error) {
	q := strings.ToLower(query)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.render(ctx, a)
			}
		}
	}
	return quickReferenceResponse, nil
}

func renderStructure(ctx context.Context, a *Assistant) (string, error) {
	structure, err := a.ProjectStructure(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(structureResponse, structure), nil
}

func renderStatic(response string) func(context.Context, *Assistant) (string, error) {
	return func(context.Context, *Assistant) (string, error) {
		return response, nil
	}
}

// templated is a response body with an optional example section.
type templated struct {
	body         string
	exampleTitle string
}

// renderWithExample renders t followed by the named example. A missing
// example leaves the body alone; any other lookup error is returned.
func renderWithExample(category pystandards.Category, title string, t templated) func(context.Context, *Assistant) (string, error) {
	return func(ctx context.Context, a *Assistant) (string, error) {
		example, err := a.Example(ctx, category, title)
		if pystandards.ErrorCode(err) == pystandards.ENOTFOUND {
			return t.body, nil
		} else if err != nil {
			return "", err
		}
		return t.body + "\n**Example - " + t.exampleTitle + ":**\n```python\n" + example + "\n```\n", nil
	}
}

const structureResponse = "## Recommended Project Structure\n" +
	"\n" +
	"```\n" +
	"%s\n" +
	"```\n" +
	"\n" +
	"**Key points:**\n" +
	"- Use src-layout for better packaging\n" +
	"- Keep tests separate from implementation\n" +
	"- Use pyproject.toml for configuration\n" +
	"- Group related functionality in modules\n"

const toolchainResponse = "## Recommended Toolchain\n" +
	"\n" +
	"- **Linter/Formatter:** Ruff\n" +
	"- **Type Checking:** MyPy (--strict)\n" +
	"- **Testing:** Pytest\n" +
	"- **Project Management:** Hatch\n" +
	"- **Python Version:** 3.11+\n" +
	"\n" +
	"**Common Commands:**\n" +
	"- `hatch run test`: Run tests\n" +
	"- `hatch run lint`: Run linting\n" +
	"- `hatch run type`: Run type checking\n" +
	"- `hatch run format`: Format code\n" +
	"- `hatch run all`: Run all checks and tests\n"

var oopResponse = templated{
	body: "## OOP Best Practices\n" +
		"\n" +
		"1. **Single Responsibility Principle (SRP)**: Each class should have one responsibility\n" +
		"2. **Open/Closed Principle (OCP)**: Open for extension, closed for modification\n" +
		"3. **Interface Segregation**: Prefer focused interfaces over general-purpose ones\n" +
		"4. **Dependency Inversion**: Depend on abstractions, not concretions\n" +
		"5. **Composition over Inheritance**: Prefer composition to inheritance when possible\n",
	exampleTitle: "Single Responsibility Principle",
}

var modernResponse = templated{
	body: "## Modern Python Features\n" +
		"\n" +
		"1. **Data Classes**: Use for simple data containers\n" +
		"2. **Type Annotations**: Include type hints with PEP 695 generics\n" +
		"3. **Pattern Matching**: Use for complex conditional logic\n" +
		"4. **Async/Await**: For asynchronous programming\n" +
		"5. **Context Managers**: For resource management\n",
	exampleTitle: "Type Annotations and Generics",
}

var functionalResponse = templated{
	body: "## Functional Programming in Python\n" +
		"\n" +
		"1. **List Comprehensions**: For transforming lists\n" +
		"2. **Generator Expressions**: For memory-efficient sequence processing\n" +
		"3. **Lambda Functions**: For simple operations only\n" +
		"4. **Higher-Order Functions**: Functions that take functions as parameters\n" +
		"5. **Pure Functions**: Functions without side effects\n",
	exampleTitle: "List Comprehensions",
}

const testingResponse = "## Testing Best Practices\n" +
	"\n" +
	"1. **Unit Tests for All Public Methods**: Ensure all public functionality is tested\n" +
	"2. **Mock External Dependencies**: Use unittest.mock or pytest-mock\n" +
	"3. **Property-Based Testing**: Consider hypothesis for complex logic\n" +
	"4. **Type Checking in CI/CD**: Run mypy as part of CI pipeline\n" +
	"5. **Test Fixtures**: Use pytest fixtures for test setup and reuse\n" +
	"\n" +
	"**Example - Basic Unit Test:**\n" +
	"```python\n" +
	"def test_user_creation():\n" +
	"    user = User(name=\"Test\", email=\"test@example.com\")\n" +
	"    assert user.name == \"Test\"\n" +
	"    assert user.email == \"test@example.com\"\n" +
	"    assert user.is_active is True  # Default value\n" +
	"```\n"

const errorHandlingResponse = "## Error Handling Best Practices\n" +
	"\n" +
	"1. **Use Specific Exceptions**: Avoid catching general Exception\n" +
	"2. **Create Custom Exceptions**: For domain-specific errors\n" +
	"3. **Context Managers**: Use for resource management\n" +
	"4. **Document Error Conditions**: In function docstrings\n" +
	"5. **Include Context in Messages**: Make error messages informative\n" +
	"\n" +
	"**Example - Custom Exception Hierarchy:**\n" +
	"```python\n" +
	"class DomainError(Exception):\n" +
	"    '''Base exception for all domain errors.'''\n" +
	"    \n" +
	"class UserNotFoundError(DomainError):\n" +
	"    '''Raised when a user cannot be found.'''\n" +
	"    def __init__(self, user_id: str) -> None:\n" +
	"        self.user_id = user_id\n" +
	"        super().__init__(f\"User not found: {user_id}\")\n" +
	"```\n"

const quickReferenceResponse = "## Python Coding Standards - Quick Reference\n" +
	"\n" +
	"1. **Project Structure**: Use src-layout with pyproject.toml\n" +
	"2. **Tools**: Ruff (linting/formatting), MyPy (type checking), Pytest (testing), Hatch (pkg mgmt)\n" +
	"3. **Type Hints**: Always use type annotations with PEP 695 generics\n" +
	"4. **Python Version**: Use Python 3.11+ for new projects\n" +
	"5. **OOP Principles**: Follow SOLID principles, prefer composition over inheritance\n" +
	"6. **Functional Features**: Use list comprehensions, generators, and simple lambdas\n" +
	"7. **Modern Features**: Leverage dataclasses, pattern matching, async/await\n" +
	"8. **Error Handling**: Use specific exceptions and context managers\n" +
	"9. **Testing**: Write unit tests for all public methods\n" +
	"\n" +
	"For more details, use the `pystandards` CLI tool or import the `github.com/fwojciec/pystandards` package.\n"
