// Package markdown reduces Markdown documents to their plain text content
// so the measurement primitives see what a reader sees, not the markup.
package markdown

import (
	"bytes"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/textkit/schema"
)

const frontMatterSeparator = "---"

// MarkdownPlugin implements schema.ExtractorPlugin for Markdown files using goldmark
type MarkdownPlugin struct {
	logger   *slog.Logger
	markdown goldmark.Markdown
}

// NewMarkdownPlugin creates a new Markdown extractor plugin with goldmark
func NewMarkdownPlugin(logger *slog.Logger) schema.ExtractorPlugin {
	plugin := &MarkdownPlugin{
		logger: logger,
	}

	plugin.markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return plugin
}

// Name returns "markdown" as the format name
func (p *MarkdownPlugin) Name() string {
	return "markdown"
}

// Extensions returns file extensions for Markdown
func (p *MarkdownPlugin) Extensions() []string {
	return []string{".md", ".markdown"}
}

// CanHandle determines if this plugin can process the given file
func (p *MarkdownPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// ExtractText parses the document and returns its text content. YAML front
// matter is parsed off the top and excluded: metadata is not prose and must
// not show up in word or paragraph counts.
func (p *MarkdownPlugin) ExtractText(content []byte, path string) (string, error) {
	body, meta := p.splitFrontMatter(content)
	if len(meta) > 0 {
		p.logger.Debug("Front matter stripped", "path", path, "fields", len(meta))
	}

	doc := p.markdown.Parser().Parse(gtext.NewReader(body))

	var buf bytes.Buffer
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		// Separate block-level text so paragraph counting still works on
		// the extracted content.
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock, *ast.FencedCodeBlock, *ast.CodeBlock:
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
		}

		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(body))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.URL(body))
		case *ast.FencedCodeBlock:
			p.writeLines(&buf, body, node)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			p.writeLines(&buf, body, node)
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

func (p *MarkdownPlugin) writeLines(buf *bytes.Buffer, source []byte, node ast.Node) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
}

// splitFrontMatter separates a leading YAML front matter block from the
// document body. Malformed front matter is left in place and treated as
// regular content.
func (p *MarkdownPlugin) splitFrontMatter(content []byte) ([]byte, map[string]any) {
	nl := bytes.IndexByte(content, '\n')
	if nl < 0 || strings.TrimRight(string(content[:nl]), "\r") != frontMatterSeparator {
		return content, nil
	}

	rest := content[nl+1:]
	lines := bytes.Split(rest, []byte("\n"))
	for i, line := range lines {
		if strings.TrimRight(string(line), "\r") != frontMatterSeparator {
			continue
		}

		var meta map[string]any
		if err := yaml.Unmarshal(bytes.Join(lines[:i], []byte("\n")), &meta); err != nil {
			p.logger.Warn("Ignoring malformed front matter", "error", err)
			return content, nil
		}
		return bytes.Join(lines[i+1:], []byte("\n")), meta
	}

	return content, nil
}
