package goldmark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/mdv"
)

type styles struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newStyles(theme mdv.Theme) styles {
	return styles{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		accent:    lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// renderBlocks walks the document's top-level nodes, accumulating styled
// text and cutting an ImageBlock wherever a paragraph holds nothing but a
// single image.
func (r *Renderer) renderBlocks(source []byte, width int) []mdv.Block {
	p := goldmark.DefaultParser()
	doc := p.Parse(text.NewReader(source))

	var blocks []mdv.Block
	var buf bytes.Buffer
	flush := func() {
		s := strings.TrimRight(buf.String(), "\n")
		buf.Reset()
		if strings.TrimSpace(s) != "" {
			blocks = append(blocks, mdv.TextBlock{ANSI: s})
		}
	}

	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if img, ok := imageParagraph(c, source); ok {
			flush()
			blocks = append(blocks, img)
			continue
		}
		r.renderBlock(c, source, width, &buf)
	}
	flush()
	return blocks
}

// imageParagraph reports whether node is a paragraph whose only child is
// an image, returning the placeholder block if so.
func imageParagraph(node ast.Node, source []byte) (mdv.ImageBlock, bool) {
	p, ok := node.(*ast.Paragraph)
	if !ok || p.ChildCount() != 1 {
		return mdv.ImageBlock{}, false
	}
	img, ok := p.FirstChild().(*ast.Image)
	if !ok {
		return mdv.ImageBlock{}, false
	}
	return mdv.ImageBlock{
		Reference: string(img.Destination),
		Alt:       plainText(img, source),
	}, true
}

// plainText collects a node's inline text content without styling.
func plainText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.String:
			buf.Write(n.Value)
		default:
			buf.WriteString(plainText(c, source))
		}
	}
	return buf.String()
}

func (r *Renderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
	}
}

func (r *Renderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		inline := r.collectInline(n, source)
		wrapped := lipgloss.NewStyle().Width(width).Render(inline)
		buf.WriteString(wrapped)
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.Heading:
		inline := r.collectInline(n, source)
		styled := r.styles.accent.Render(inline)
		wrapped := lipgloss.NewStyle().Width(width).Render(styled)
		buf.WriteString(wrapped)
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.FencedCodeBlock:
		lang := string(n.Language(source))
		if lang != "" {
			buf.WriteString(r.styles.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.writeCodeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.CodeBlock:
		r.writeCodeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.List:
		r.renderList(n, source, width, buf, 0)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.ThematicBreak:
		buf.WriteString("---\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}

	default:
		// Blockquotes and other unrecognized blocks: recurse into children.
		r.walkBlock(node, source, width, buf)
	}
}

// writeCodeLines writes code block content verbatim behind a muted gutter.
func (r *Renderer) writeCodeLines(node ast.Node, source []byte, buf *bytes.Buffer) {
	gutter := r.styles.muted.Render("│") + " "
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		content := strings.TrimRight(string(line.Value(source)), "\n")
		buf.WriteString(gutter + content)
		buf.WriteString("\n")
	}
}

func (r *Renderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	start := node.Start
	itemNum := 0

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		var marker string
		if ordered {
			itemNum++
			marker = fmt.Sprintf("%d. ", start+itemNum-1)
		} else {
			marker = "- "
		}

		// Collect item content.
		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				inline := r.collectInline(in, source)
				itemBuf.WriteString(inline)
			case *ast.List:
				if itemBuf.Len() > 0 {
					r.writeListItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, width, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			r.writeListItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// writeListItem writes a list item with proper continuation-line indentation.
func (r *Renderer) writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	lines := strings.Split(wrapped, "\n")
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range lines {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// collectInline recursively collects styled inline text from a node's children.
func (r *Renderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *Renderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		switch n.Level {
		case 1:
			buf.WriteString(r.styles.italic.Render(inner))
		default:
			// Level 2 = bold. Goldmark represents ***bold italic*** as
			// nested Emphasis nodes, so level 3+ is not reachable.
			buf.WriteString(r.styles.bold.Render(inner))
		}

	case *ast.CodeSpan:
		inner := r.collectInline(n, source)
		buf.WriteString(r.styles.bold.Render(inner))

	case *ast.Link:
		inner := r.collectInline(n, source)
		url := string(n.Destination)
		buf.WriteString(r.styles.underline.Render(inner))
		buf.WriteString(" ")
		buf.WriteString(r.styles.muted.Render("(" + url + ")"))

	case *ast.AutoLink:
		url := string(n.URL(source))
		buf.WriteString(r.styles.underline.Render(url))

	case *ast.Image:
		// Inline image inside mixed content: no placeholder block is cut,
		// so render alt text and destination the way links render.
		alt := r.collectInline(n, source)
		url := string(n.Destination)
		buf.WriteString(r.styles.underline.Render(alt))
		buf.WriteString(" ")
		buf.WriteString(r.styles.muted.Render("(" + url + ")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(source))
		}

	default:
		// Recurse for any unrecognized inline.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}
