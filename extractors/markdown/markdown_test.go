package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/textkit/extractors/markdown"
	testlog "github.com/sevigo/textkit/extractors/testing"
	"github.com/sevigo/textkit/segment"
)

func TestMarkdownPlugin_BasicInfo(t *testing.T) {
	log, _ := testlog.NewTestLogger(t)
	plugin := markdown.NewMarkdownPlugin(log)

	assert.Equal(t, "markdown", plugin.Name())
	assert.Contains(t, plugin.Extensions(), ".md")
	assert.Contains(t, plugin.Extensions(), ".markdown")
	assert.True(t, plugin.CanHandle("doc.md", nil))
	assert.False(t, plugin.CanHandle("doc.txt", nil))
}

func TestMarkdownPlugin_ExtractText(t *testing.T) {
	log, _ := testlog.NewTestLogger(t)
	plugin := markdown.NewMarkdownPlugin(log)

	t.Run("StripsFormatting", func(t *testing.T) {
		content := "# Introduction\n\nSome **bold** and *italic* words, plus a [link](https://example.com).\n"

		got, err := plugin.ExtractText([]byte(content), "doc.md")
		require.NoError(t, err)

		assert.Contains(t, got, "Introduction")
		assert.Contains(t, got, "bold")
		assert.Contains(t, got, "link")
		assert.NotContains(t, got, "#")
		assert.NotContains(t, got, "**")
		assert.NotContains(t, got, "](")
	})

	t.Run("FrontMatterExcluded", func(t *testing.T) {
		content := "---\ntitle: Hidden Title\nauthor: Someone\n---\n\nVisible body text.\n"

		got, err := plugin.ExtractText([]byte(content), "doc.md")
		require.NoError(t, err)

		assert.Contains(t, got, "Visible body text.")
		assert.NotContains(t, got, "Hidden Title")
		assert.NotContains(t, got, "author")
		assert.Equal(t, 3, segment.CountWords(got))
	})

	t.Run("MalformedFrontMatterKept", func(t *testing.T) {
		content := "---\n:::not yaml at all [\n---\nBody.\n"

		got, err := plugin.ExtractText([]byte(content), "doc.md")
		require.NoError(t, err)
		assert.Contains(t, got, "Body.")
	})

	t.Run("CodeBlockTextKept", func(t *testing.T) {
		content := "Paragraph one.\n\n```go\nfunc main() {}\n```\n\nParagraph two.\n"

		got, err := plugin.ExtractText([]byte(content), "doc.md")
		require.NoError(t, err)

		assert.Contains(t, got, "func main() {}")
		assert.NotContains(t, got, "```")
		assert.GreaterOrEqual(t, segment.CountParagraphs(got), 3)
	})

	t.Run("ListItemsSeparated", func(t *testing.T) {
		content := "- first item\n- second item\n"

		got, err := plugin.ExtractText([]byte(content), "doc.md")
		require.NoError(t, err)

		assert.Contains(t, got, "first item")
		assert.Contains(t, got, "second item")
		assert.NotContains(t, got, "-")
		assert.Equal(t, 4, segment.CountWords(got))
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := plugin.ExtractText(nil, "empty.md")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
