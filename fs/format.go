// Package fs writes export documents to the local filesystem.
package fs

import (
	"path/filepath"
	"strings"
)

// Format is an export file format.
type Format string

// Export formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// FormatFromPath picks the export format from the file extension.
// Unknown extensions, or none, mean JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatJSON
	}
}
