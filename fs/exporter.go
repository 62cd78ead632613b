package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/fwojciec/pystandards"
)

// DocumentTitle is the top-level heading of markdown and HTML exports.
const DocumentTitle = "Python Coding Standards"

// Ensure Exporter implements pystandards.ExportWriter at compile time.
var _ pystandards.ExportWriter = (*Exporter)(nil)

// Exporter writes export documents to files. Content is written to
// <path>.tmp first and renamed into place, so an existing file is only
// replaced by a complete export.
type Exporter struct {
	converter pystandards.Converter
}

// NewExporter creates a new Exporter. converter is used for HTML exports and
// may be nil when HTML is not needed.
func NewExporter(converter pystandards.Converter) *Exporter {
	return &Exporter{converter: converter}
}

// WriteExport encodes doc in the format implied by path and writes it.
func (e *Exporter) WriteExport(ctx context.Context, path string, doc *pystandards.Export) error {
	if path == "" {
		return pystandards.Errorf(pystandards.EINVALID, "export path required")
	}
	if doc == nil {
		return pystandards.Errorf(pystandards.EINVALID, "export document required")
	}

	data, err := e.Encode(FormatFromPath(path), doc)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// Encode renders doc in the given format.
func (e *Exporter) Encode(format Format, doc *pystandards.Export) ([]byte, error) {
	switch format {
	case FormatYAML:
		return EncodeYAML(doc)
	case FormatMarkdown:
		return []byte(pystandards.FormatStandards(DocumentTitle, doc.Standards)), nil
	case FormatHTML:
		return e.encodeHTML(doc)
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func (e *Exporter) encodeHTML(doc *pystandards.Export) ([]byte, error) {
	if e.converter == nil {
		return nil, pystandards.Errorf(pystandards.EINVALID, "html export is not available")
	}

	body, err := e.converter.Convert(pystandards.FormatStandards(DocumentTitle, doc.Standards))
	if err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	page := "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>" +
		html.EscapeString(DocumentTitle) + "</title>\n</head>\n<body>\n" +
		body + "</body>\n</html>\n"
	return []byte(page), nil
}

// ReadExport reads a JSON or YAML export back into a document.
func ReadExport(path string) (*pystandards.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := &pystandards.Export{}
	switch FormatFromPath(path) {
	case FormatYAML:
		if err := DecodeYAML(data, doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, err
		}
	default:
		return nil, pystandards.Errorf(pystandards.EINVALID, "cannot read export format from %s", filepath.Base(path))
	}
	return doc, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
