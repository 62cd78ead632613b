package goldmark_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/content"
	"github.com/fwojciec/pystandards/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings with anchors", func(t *testing.T) {
		t.Parallel()

		html, err := goldmark.NewConverter().Convert("# Design Patterns\n\n## Guidelines\n\n## Guidelines\n")
		require.NoError(t, err)

		doc := parse(t, html)
		assert.Equal(t, "design-patterns", doc.Find("h1").AttrOr("id", ""))
		ids := doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
			return s.AttrOr("id", "")
		})
		assert.Equal(t, []string{"guidelines", "guidelines-1"}, ids)
	})

	t.Run("converts fenced python code", func(t *testing.T) {
		t.Parallel()

		html, err := goldmark.NewConverter().Convert("```python\nclass A:\n    pass\n```\n")
		require.NoError(t, err)

		code := parse(t, html).Find("pre code")
		assert.Equal(t, "language-python", code.AttrOr("class", ""))
		assert.Equal(t, "class A:\n    pass\n", code.Text())
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md := "| Task | Command |\n| --- | --- |\n| tests | `hatch run test` |\n"
		html, err := goldmark.NewConverter().Convert(md)
		require.NoError(t, err)

		doc := parse(t, html)
		assert.Equal(t, "Task", doc.Find("th").First().Text())
		assert.Equal(t, "hatch run test", doc.Find("td code").Text())
	})

	t.Run("does not let anchors leak between calls", func(t *testing.T) {
		t.Parallel()

		conv := goldmark.NewConverter()
		for range 2 {
			html, err := conv.Convert("## Examples\n")
			require.NoError(t, err)
			assert.Equal(t, "examples", parse(t, html).Find("h2").AttrOr("id", ""))
		}
	})

	t.Run("heading ids match table of contents anchors", func(t *testing.T) {
		t.Parallel()

		md := pystandards.FormatStandards("Python Coding Standards", content.Standards())
		html, err := goldmark.NewConverter().Convert(md)
		require.NoError(t, err)

		doc := parse(t, html)
		for _, section := range pystandards.ExtractSections(md) {
			assert.Equal(t, 1, doc.Find("#"+section.Anchor).Length(), section.Anchor)
		}
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goldmark.NewConverter().Convert("  \n")
		assert.Equal(t, pystandards.EINVALID, pystandards.ErrorCode(err))
	})
}
