// Package goldmark converts the markdown produced by the formatters into HTML
// using github.com/yuin/goldmark.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pystandards"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Ensure Converter implements pystandards.Converter at compile time.
var _ pystandards.Converter = (*Converter)(nil)

// Converter wraps goldmark to convert Markdown to HTML. Heading ids match the
// anchors produced by pystandards.ExtractSections, so generated tables of
// contents link correctly.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter with GitHub flavored tables enabled.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Converter{md: md}
}

// Convert transforms Markdown content into an HTML fragment.
func (c *Converter) Convert(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", pystandards.Errorf(pystandards.EINVALID, "empty markdown input")
	}

	ctx := parser.NewContext(parser.WithIDs(&headingIDs{anchors: pystandards.NewAnchors()}))

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headingIDs adapts pystandards.Anchors to goldmark's parser.IDs.
type headingIDs struct {
	anchors *pystandards.Anchors
}

func (h *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(h.anchors.Next(string(value)))
}

func (h *headingIDs) Put(value []byte) {
	h.anchors.Reserve(string(value))
}
