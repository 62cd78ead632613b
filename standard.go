package pystandards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Standard represents the coding-standard content of one category.
type Standard struct {
	Category    Category  `json:"-" yaml:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
	Guidelines  []string  `json:"guidelines"`
}

// Validate returns an error if the standard contains invalid fields.
func (s *Standard) Validate() error {
	if !s.Category.Valid() {
		return Errorf(EINVALID, "unknown standard category: %s", s.Category)
	}
	if s.Title == "" {
		return Errorf(EINVALID, "standard title required")
	}
	if s.Description == "" {
		return Errorf(EINVALID, "standard description required")
	}
	if len(s.Guidelines) == 0 {
		return Errorf(EINVALID, "standard %s requires at least one guideline", s.Category)
	}
	for i, ex := range s.Examples {
		if ex.Title == "" {
			return Errorf(EINVALID, "standard %s example %d title required", s.Category, i)
		}
		for _, name := range ex.Order {
			if !slices.Contains(exampleFieldNames, name) {
				return Errorf(EINVALID, "standard %s example %d has unknown field %q", s.Category, i, name)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the standard.
func (s *Standard) Clone() *Standard {
	other := *s
	other.Guidelines = append([]string(nil), s.Guidelines...)
	other.Examples = make([]Example, len(s.Examples))
	for i, ex := range s.Examples {
		ex.Commands = append(Commands(nil), ex.Commands...)
		ex.Order = append([]string(nil), ex.Order...)
		other.Examples[i] = ex
	}
	return &other
}

// Example is a worked illustration attached to a standard. Title is always
// set; the remaining fields are optional.
//
// Order lists the field names in their declared order. A nil Order means
// title, code, good_example, bad_example, commands.
type Example struct {
	Title       string
	Code        string
	GoodExample string
	BadExample  string
	Commands    Commands
	Order       []string
}

// ExampleField is a named text field of an example.
type ExampleField struct {
	Name string
	Text string
}

// Example field names.
const (
	FieldTitle       = "title"
	FieldCode        = "code"
	FieldGoodExample = "good_example"
	FieldBadExample  = "bad_example"
	FieldCommands    = "commands"
)

// exampleFieldNames is the default field order.
var exampleFieldNames = []string{FieldTitle, FieldCode, FieldGoodExample, FieldBadExample, FieldCommands}

// Keys returns the names of the example's non-empty fields in declared
// order. Fields missing from Order follow in default order.
func (e Example) Keys() []string {
	keys := make([]string, 0, len(exampleFieldNames))
	seen := make(map[string]bool, len(exampleFieldNames))
	add := func(name string) {
		if seen[name] || !e.has(name) {
			return
		}
		seen[name] = true
		keys = append(keys, name)
	}
	for _, name := range e.Order {
		add(name)
	}
	for _, name := range exampleFieldNames {
		add(name)
	}
	return keys
}

func (e Example) has(name string) bool {
	if name == FieldCommands {
		return len(e.Commands) > 0
	}
	return e.text(name) != ""
}

func (e Example) text(name string) string {
	switch name {
	case FieldTitle:
		return e.Title
	case FieldCode:
		return e.Code
	case FieldGoodExample:
		return e.GoodExample
	case FieldBadExample:
		return e.BadExample
	}
	return ""
}

// Fields returns the non-empty text fields of the example in declared
// order. Commands are not text and are never included.
func (e Example) Fields() []ExampleField {
	keys := e.Keys()
	fields := make([]ExampleField, 0, len(keys))
	for _, name := range keys {
		if name == FieldCommands {
			continue
		}
		fields = append(fields, ExampleField{Name: name, Text: e.text(name)})
	}
	return fields
}

// String renders the whole example record as "key: value" lines.
func (e Example) String() string {
	var sb strings.Builder
	for i, name := range e.Keys() {
		if i > 0 {
			sb.WriteString("\n")
		}
		if name == FieldCommands {
			sb.WriteString(FieldCommands + ":")
			for _, c := range e.Commands {
				fmt.Fprintf(&sb, "\n  %s: %s", c.Task, c.Command)
			}
			continue
		}
		fmt.Fprintf(&sb, "%s: %s", name, strings.TrimSpace(e.text(name)))
	}
	return sb.String()
}

// MarshalJSON encodes the example as an object with keys in declared order.
// The title is always present.
func (e Example) MarshalJSON() ([]byte, error) {
	keys := e.Keys()
	if e.Title == "" {
		keys = append([]string{FieldTitle}, keys...)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		var value any = e.text(name)
		if name == FieldCommands {
			value = e.Commands
		}
		if err := writeMember(&buf, name, value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an example object and records its key order.
// Unknown keys are ignored.
func (e *Example) UnmarshalJSON(data []byte) error {
	members, err := decodeOrderedObject(data)
	if err != nil {
		return fmt.Errorf("failed to decode example: %w", err)
	}

	var out Example
	order := make([]string, 0, len(members))
	for _, m := range members {
		var target any
		switch m.Key {
		case FieldTitle:
			target = &out.Title
		case FieldCode:
			target = &out.Code
		case FieldGoodExample:
			target = &out.GoodExample
		case FieldBadExample:
			target = &out.BadExample
		case FieldCommands:
			target = &out.Commands
		default:
			continue
		}
		if err := json.Unmarshal(m.Value, target); err != nil {
			return fmt.Errorf("failed to decode example field %q: %w", m.Key, err)
		}
		order = append(order, m.Key)
	}
	if !isDefaultOrder(order) {
		out.Order = order
	}
	*e = out
	return nil
}

// isDefaultOrder reports whether names appear in default field order.
func isDefaultOrder(names []string) bool {
	last := -1
	for _, name := range names {
		pos := slices.Index(exampleFieldNames, name)
		if pos < last {
			return false
		}
		last = pos
	}
	return true
}

// Command maps a development task to the shell command that runs it.
type Command struct {
	Task    string
	Command string
}

// Commands is an ordered task to command table. It serialises as a JSON
// object whose keys keep their order.
type Commands []Command

// MarshalJSON encodes the commands as an ordered JSON object.
func (c Commands) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cmd := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cmd.Task)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(cmd.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into commands, keeping key order.
func (c *Commands) UnmarshalJSON(data []byte) error {
	members, err := decodeOrderedObject(data)
	if err != nil {
		return fmt.Errorf("failed to decode commands: %w", err)
	}
	out := make(Commands, 0, len(members))
	for _, m := range members {
		var command string
		if err := json.Unmarshal(m.Value, &command); err != nil {
			return fmt.Errorf("failed to decode command %q: %w", m.Key, err)
		}
		out = append(out, Command{Task: m.Key, Command: command})
	}
	*c = out
	return nil
}

// CategoryInfo pairs a category with its title.
type CategoryInfo struct {
	Category Category
	Title    string
}

// StandardService represents a read-only service for looking up standards.
type StandardService interface {
	// ListCategories returns every category with its title in declaration order.
	ListCategories(ctx context.Context) ([]CategoryInfo, error)

	// FindStandard retrieves the standard for a category.
	// Returns ENOTFOUND if the category does not exist.
	FindStandard(ctx context.Context, category Category) (*Standard, error)

	// Search returns every piece of content containing query,
	// case-insensitively. See SearchStandards for result order.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
