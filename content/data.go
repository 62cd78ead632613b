package content

import "github.com/fwojciec/pystandards"

var projectStructure = pystandards.Standard{
	Category:    pystandards.CategoryProjectStructure,
	Title:       "Project Structure",
	Description: "Recommended src-layout structure for Python projects",
	Examples: []pystandards.Example{
		{
			Title: "Standard project layout",
			Code: `
project/
├── src/
│   └── package_name/
│       ├── __init__.py
│       ├── main.py
│       ├── api/         # For web/API projects
│       ├── core/        # Core functionality
│       ├── db/          # Database related code
│       ├── models/      # Data models
│       └── schemas/     # Data validation schemas
├── tests/
│   ├── __init__.py
│   └── test_*.py
├── pyproject.toml
├── README.md
└── .gitignore
`,
		},
	},
	Guidelines: []string{
		"Use src-layout for all projects",
		"Keep package name and directory structure aligned",
		"Organize related functionality into modules",
		"Use __init__.py files to define public API",
		"Separate tests from implementation code",
		"Use pyproject.toml for project configuration",
	},
}

var developmentTools = pystandards.Standard{
	Category:    pystandards.CategoryDevelopmentTools,
	Title:       "Development Tools",
	Description: "Recommended tools for Python development",
	Examples: []pystandards.Example{
		{
			Title: "Common Hatch commands",
			Commands: pystandards.Commands{
				{Task: "tests", Command: "hatch run test"},
				{Task: "linting", Command: "hatch run lint"},
				{Task: "type_checking", Command: "hatch run type"},
				{Task: "formatting", Command: "hatch run format"},
				{Task: "development_server", Command: "hatch run dev"},
			},
		},
	},
	Guidelines: []string{
		"Use Ruff for linting and formatting",
		"Use MyPy (with --strict) for static type checking",
		"Use Pytest for testing",
		"Use Hatch for project management",
		"Use Docker for containerization when needed",
		"Always use pyproject.toml for project configuration",
	},
}

// badFirst is the field order of examples that show the mistake first.
var badFirst = []string{
	pystandards.FieldTitle,
	pystandards.FieldBadExample,
	pystandards.FieldGoodExample,
}

var oopPrinciples = pystandards.Standard{
	Category:    pystandards.CategoryOOPPrinciples,
	Title:       "Object-Oriented Programming Principles",
	Description: "Best practices for OOP in Python",
	Examples: []pystandards.Example{
		{
			Title: "Single Responsibility Principle (SRP)",
			Order: badFirst,
			BadExample: `
# Bad: Class doing too much
class UserManager:
    def create_user(self) -> None: ...
    def send_email(self) -> None: ...
    def validate_password(self) -> None: ...
`,
			GoodExample: `
# Good: Separate responsibilities
class UserCreator:
    def create_user(self) -> None: ...

class EmailService:
    def send_email(self) -> None: ...

class PasswordValidator:
    def validate_password(self) -> None: ...
`,
		},
		{
			Title: "Open/Closed Principle (OCP)",
			Order: badFirst,
			BadExample: `
# Bad: Modifying existing class
class PaymentProcessor:
    def process_payment(self, payment_type: str) -> None:
        if payment_type == "credit":
            # process credit
        elif payment_type == "paypal":
            # process paypal
`,
			GoodExample: `
# Good: Extending through inheritance
class PaymentProcessor:
    def process_payment(self) -> None: ...

class CreditCardProcessor(PaymentProcessor):
    def process_payment(self) -> None: ...

class PayPalProcessor(PaymentProcessor):
    def process_payment(self) -> None: ...
`,
		},
	},
	Guidelines: []string{
		"Apply Single Responsibility Principle (SRP)",
		"Follow Open/Closed Principle (OCP)",
		"Use Interface Segregation where appropriate",
		"Apply Dependency Inversion for loosely coupled code",
		"Prefer Composition over Inheritance",
	},
}

var designPatterns = pystandards.Standard{
	Category:    pystandards.CategoryDesignPatterns,
	Title:       "Design Patterns",
	Description: "Recommended design patterns for Python",
	Examples: []pystandards.Example{
		{
			Title: "Factory Pattern",
			Code: `
class PaymentMethodFactory:
    @staticmethod
    def create_payment_method(method_type: str) -> PaymentMethod:
        match method_type:
            case "credit": return CreditCardPayment()
            case "paypal": return PayPalPayment()
            case _: raise ValueError(f"Unknown payment method: {method_type}")
`,
		},
		{
			Title: "Strategy Pattern",
			Code: `
class SortStrategy(Protocol):
    def sort(self, data: list[int]) -> list[int]: ...

class QuickSort:
    def sort(self, data: list[int]) -> list[int]: ...

class MergeSort:
    def sort(self, data: list[int]) -> list[int]: ...
`,
		},
	},
	Guidelines: []string{
		"Use Factory Pattern for object creation",
		"Apply Strategy Pattern for interchangeable algorithms",
		"Implement Observer Pattern for event handling",
		"Use Repository Pattern for data access",
		"Use patterns judiciously - don't over-engineer",
	},
}

var dataStructures = pystandards.Standard{
	Category:    pystandards.CategoryDataStructures,
	Title:       "Pythonic Data Structures and Idioms",
	Description: "Recommended data structures and Python idioms",
	Examples: []pystandards.Example{
		{
			Title: "Appropriate data structures",
			Code: `
# Sets for unique items
unique_items: set[str] = {"apple", "banana", "apple"}

# Dicts for key-value pairs
user_preferences: dict[str, Any] = {
    "theme": "dark",
    "notifications": True
}

# Lists for ordered collections
items: list[str] = ["first", "second", "third"]
`,
		},
		{
			Title: "Built-in types",
			Code: `
# Use Enum for constants
class Color(Enum):
    RED = "red"
    GREEN = "green"
    BLUE = "blue"

# Use NamedTuple for simple data
class Point(NamedTuple):
    x: float
    y: float
`,
		},
	},
	Guidelines: []string{
		"Choose appropriate data structures for the use case",
		"Use sets for collections of unique items",
		"Use dictionaries for lookups and mappings",
		"Use lists for ordered collections",
		"Leverage Enum for structured constants",
		"Use NamedTuple and dataclasses for simple data objects",
	},
}

var modernFeatures = pystandards.Standard{
	Category:    pystandards.CategoryModernFeatures,
	Title:       "Modern Python Features",
	Description: "Recent Python features to leverage",
	Examples: []pystandards.Example{
		{
			Title: "Data Classes",
			Code: `
@dataclass(slots=True)
class User:
    name: str
    email: str
    age: int
    is_active: bool = True
`,
		},
		{
			Title: "Type Annotations and Generics",
			Code: `
def process_items[T](items: list[T]) -> list[T]:
    return [item for item in items if item is not None]
`,
		},
		{
			Title: "Context Managers",
			Code: `
@contextmanager
def managed_resource():
    resource = acquire_resource()
    try:
        yield resource
    finally:
        release_resource(resource)
`,
		},
	},
	Guidelines: []string{
		"Use dataclasses for data containers",
		"Apply type annotations with PEP 695 generics",
		"Leverage context managers for resource handling",
		"Use structural pattern matching for complex conditionals",
		"Take advantage of f-strings for string formatting",
	},
}

var functionalProgramming = pystandards.Standard{
	Category:    pystandards.CategoryFunctionalProgramming,
	Title:       "Functional Programming in Python",
	Description: "Functional programming techniques for Python",
	Examples: []pystandards.Example{
		{
			Title: "List Comprehensions",
			Code: `
squares = [x**2 for x in range(10) if x % 2 == 0]
`,
		},
		{
			Title: "Generator Expressions",
			Code: `
large_squares = (x**2 for x in range(1000000) if x % 2 == 0)
`,
		},
		{
			Title: "Lambda Functions",
			GoodExample: `
# Good: Simple operations
square = lambda x: x**2
`,
			BadExample: `
# Bad: Complex logic
process_data = lambda x: (x**2 if x > 0 else 0) + (x if x < 10 else 10)
`,
		},
	},
	Guidelines: []string{
		"Use list comprehensions over loops when appropriate",
		"Prefer generator expressions for large datasets",
		"Use lambda functions sparingly and only for simple operations",
		"Prefer comprehensions over map/filter/reduce",
		"Use higher-order functions to abstract patterns",
	},
}

var errorHandling = pystandards.Standard{
	Category:    pystandards.CategoryErrorHandling,
	Title:       "Error Handling and Resource Management",
	Description: "Best practices for handling errors and resources",
	Examples: []pystandards.Example{
		{
			Title: "Custom exceptions",
			Code: `
class DomainError(Exception):
    """Base exception for all domain errors."""
    
class UserNotFoundError(DomainError):
    """Raised when a user cannot be found."""
    def __init__(self, user_id: str) -> None:
        self.user_id = user_id
        super().__init__(f"User not found: {user_id}")
`,
		},
		{
			Title: "Context managers for resources",
			Code: `
with open("file.txt") as f:
    data = f.read()
    
# Or custom context managers
@contextmanager
def database_transaction():
    transaction = db.begin()
    try:
        yield transaction
        transaction.commit()
    except Exception:
        transaction.rollback()
        raise
`,
		},
	},
	Guidelines: []string{
		"Use specific exceptions rather than generic ones",
		"Create custom exception hierarchies for domain errors",
		"Always use context managers for resource management",
		"Catch only exceptions you can handle",
		"Include relevant error context in exception messages",
		"Document error conditions in function docstrings",
	},
}

var testingQuality = pystandards.Standard{
	Category:    pystandards.CategoryTesting,
	Title:       "Testing and Quality",
	Description: "Best practices for testing Python code",
	Examples: []pystandards.Example{
		{
			Title: "Unit test",
			Code: `
def test_user_creation():
    user = User(name="Test", email="test@example.com")
    assert user.name == "Test"
    assert user.email == "test@example.com"
    assert user.is_active is True  # Default value
`,
		},
		{
			Title: "Mocking dependencies",
			Code: `
@patch("app.services.email_sender.send_email")
def test_welcome_email(mock_send_email):
    service = UserService()
    service.create_user("Test", "test@example.com")
    
    mock_send_email.assert_called_once_with(
        to="test@example.com",
        subject="Welcome to Our Service",
        body=ANY,
    )
`,
		},
	},
	Guidelines: []string{
		"Write unit tests for all public methods",
		"Consider property-based testing for complex logic",
		"Always mock external dependencies",
		"Include type checking in CI/CD pipeline",
		"Aim for high test coverage on business logic",
		"Use fixtures to set up test data",
	},
}

var environment = pystandards.Standard{
	Category:    pystandards.CategoryEnvironment,
	Title:       "Development Environment",
	Description: "Recommended development environment setup",
	Examples:    []pystandards.Example{},
	Guidelines: []string{
		"Use Python 3.11+ for new projects",
		"Set up Docker for consistent development environments",
		"Use VS Code with Python extensions for a great IDE experience",
		"Manage virtual environments with Hatch or pixi",
		"Configure editor to use Ruff for linting and formatting",
	},
}

var aiGuidelines = pystandards.Standard{
	Category:    pystandards.CategoryAIGuidelines,
	Title:       "AI Assistance Guidelines",
	Description: "Guidelines for AI assistants generating Python code",
	Examples:    []pystandards.Example{},
	Guidelines: []string{
		"Always include type hints in generated code",
		"Use modern Python features like PEP 695 generics",
		"Follow the project's linting rules",
		"Maintain or improve test coverage",
		"Consider async/await patterns where appropriate",
		"Follow the src-layout project structure",
		"Use Hatch commands for development tasks",
		"Run ruff check and mypy --strict",
		"Document any non-obvious code decisions",
		"Consider performance implications of suggestions",
	},
}

var projectTypes = pystandards.Standard{
	Category:    pystandards.CategoryProjectTypes,
	Title:       "Common Project Types",
	Description: "Recommendations for specific types of Python projects",
	Examples:    []pystandards.Example{},
	Guidelines: []string{
		"Web/API: Use FastAPI, SQLAlchemy, Pydantic, and Alembic",
		"CLI: Use Click or Typer with Rich for terminal output",
		"Data Processing: Use pandas, numpy with proper error handling",
		"Libraries: Design clear public APIs with comprehensive docs",
	},
}

// tables lists every standard in category declaration order.
var tables = []*pystandards.Standard{
	&projectStructure,
	&developmentTools,
	&oopPrinciples,
	&designPatterns,
	&dataStructures,
	&modernFeatures,
	&functionalProgramming,
	&errorHandling,
	&testingQuality,
	&environment,
	&aiGuidelines,
	&projectTypes,
}
