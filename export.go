package pystandards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// ExportWriter writes export documents to storage.
type ExportWriter interface {
	// WriteExport writes doc to path. The format is chosen from the
	// path extension.
	WriteExport(ctx context.Context, path string, doc *Export) error
}

// Export is the document written by the export command. Both sections are
// keyed by category identifier and keep declaration order when encoded.
type Export struct {
	Categories []CategoryInfo
	Standards  []*Standard
}

// NewExport builds an export document from a category listing and the
// matching standards.
func NewExport(categories []CategoryInfo, standards []*Standard) *Export {
	return &Export{Categories: categories, Standards: standards}
}

// CategoryTitles returns the category to title mapping of the export.
func (e *Export) CategoryTitles() map[Category]string {
	titles := make(map[Category]string, len(e.Categories))
	for _, info := range e.Categories {
		titles[info.Category] = info.Title
	}
	return titles
}

// MarshalJSON encodes the export as
// {"categories": {id: title}, "standards": {id: standard}}.
func (e *Export) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"categories":{`)
	for i, info := range e.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, string(info.Category), info.Title); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`},"standards":{`)
	for i, s := range e.Standards {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, string(s.Category), s); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an export document, keeping category order.
func (e *Export) UnmarshalJSON(data []byte) error {
	var raw struct {
		Categories json.RawMessage `json:"categories"`
		Standards  json.RawMessage `json:"standards"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Categories == nil || raw.Standards == nil {
		return Errorf(EINVALID, "export requires categories and standards")
	}

	categories, err := decodeOrderedObject(raw.Categories)
	if err != nil {
		return fmt.Errorf("failed to decode categories: %w", err)
	}
	e.Categories = make([]CategoryInfo, 0, len(categories))
	for _, m := range categories {
		info := CategoryInfo{Category: Category(m.Key)}
		if err := json.Unmarshal(m.Value, &info.Title); err != nil {
			return fmt.Errorf("failed to decode title of %s: %w", m.Key, err)
		}
		e.Categories = append(e.Categories, info)
	}

	standards, err := decodeOrderedObject(raw.Standards)
	if err != nil {
		return fmt.Errorf("failed to decode standards: %w", err)
	}
	e.Standards = make([]*Standard, 0, len(standards))
	for _, m := range standards {
		s := &Standard{Category: Category(m.Key)}
		if err := json.Unmarshal(m.Value, s); err != nil {
			return fmt.Errorf("failed to decode standard %s: %w", m.Key, err)
		}
		e.Standards = append(e.Standards, s)
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// objectMember is one key/value pair of a JSON object.
type objectMember struct {
	Key   string
	Value json.RawMessage
}

// decodeOrderedObject splits a JSON object into its members in document order.
func decodeOrderedObject(data []byte) ([]objectMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var members []objectMember
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, objectMember{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}
