// Package mdtty renders Markdown as ANSI-styled terminal text.
//
// Replies from the knowledge-base service are prose that is frequently
// Markdown. This package parses it (including GFM tables, strikethrough,
// and task lists) and produces text suitable for a terminal viewport.
//
// Features a terminal cannot express are mapped to approximations:
//   - Headings become bold lines
//   - Tables become readable list blocks
//   - Images and links become "label (url)"
//   - Horizontal rules become a line of dashes
package mdtty

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	strikeStyle  = lipgloss.NewStyle().Strikethrough(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Convert renders Markdown text for a terminal.
func Convert(markdown string) string {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	r := &renderer{source: source}
	r.walkBlock(doc)
	return strings.TrimRight(r.buf.String(), "\n ")
}

type renderer struct {
	source    []byte
	buf       bytes.Buffer
	listDepth int
}

// ---------------------------------------------------------------------------
// Block-level rendering
// ---------------------------------------------------------------------------

func (r *renderer) walkBlock(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c)
	}
}

func (r *renderer) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		r.walkBlock(n)

	case *ast.Heading:
		r.buf.WriteString(headingStyle.Render(r.textContent(n)))
		r.buf.WriteString("\n\n")

	case *ast.Paragraph:
		r.inlines(n)
		r.buf.WriteString("\n\n")

	case *ast.TextBlock:
		r.inlines(n)
		r.buf.WriteString("\n")

	case *ast.Blockquote:
		sub := &renderer{source: r.source}
		sub.walkBlock(n)
		for _, line := range strings.Split(strings.TrimRight(sub.buf.String(), "\n "), "\n") {
			r.buf.WriteString("  │ ")
			r.buf.WriteString(line)
			r.buf.WriteByte('\n')
		}
		r.buf.WriteByte('\n')

	case *ast.ListItem:
		// Handled inside list(); fallback.
		r.walkBlock(n)

	case *ast.List:
		r.list(n)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		r.codeBlock(node)

	case *ast.ThematicBreak:
		r.buf.WriteString(strings.Repeat("─", 10))
		r.buf.WriteString("\n\n")

	case *ast.HTMLBlock:
		// Raw HTML has no terminal meaning; pass the source through.
		r.writeLines(node)
		r.buf.WriteString("\n")

	default:
		if t, ok := node.(*east.Table); ok {
			r.table(t)
			return
		}
		if node.HasChildren() {
			r.walkBlock(node)
		}
	}
}

func (r *renderer) codeBlock(node ast.Node) {
	var sub bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sub.Write(seg.Value(r.source))
	}
	for _, line := range strings.Split(strings.TrimRight(sub.String(), "\n"), "\n") {
		r.buf.WriteString("    ")
		r.buf.WriteString(codeStyle.Render(line))
		r.buf.WriteByte('\n')
	}
	r.buf.WriteByte('\n')
}

// writeLines writes the raw source lines of a block node.
func (r *renderer) writeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		r.buf.Write(seg.Value(r.source))
	}
}

// ---------------------------------------------------------------------------
// Inline rendering
// ---------------------------------------------------------------------------

func (r *renderer) inlines(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(c)
	}
}

func (r *renderer) inline(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		r.buf.Write(n.Text(r.source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			r.buf.WriteByte('\n')
		}

	case *ast.String:
		r.buf.Write(n.Value)

	case *ast.Emphasis:
		style := italicStyle
		if n.Level == 2 {
			style = boldStyle
		}
		r.buf.WriteString(style.Render(r.textContent(n)))

	case *ast.CodeSpan:
		r.buf.WriteString(codeStyle.Render(r.textContent(n)))

	case *ast.Link:
		r.inlines(n)
		r.buf.WriteString(urlStyle.Render(" (" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		r.buf.WriteString(string(n.URL(r.source)))

	case *ast.Image:
		alt := r.textContent(n)
		if alt == "" {
			alt = string(n.Destination)
		}
		r.buf.WriteString(alt)
		r.buf.WriteString(urlStyle.Render(" (" + string(n.Destination) + ")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			r.buf.Write(seg.Value(r.source))
		}

	default:
		switch v := node.(type) {
		case *east.Strikethrough:
			r.buf.WriteString(strikeStyle.Render(r.textContent(v)))
		case *east.TaskCheckBox:
			if v.IsChecked {
				r.buf.WriteString("[x] ")
			} else {
				r.buf.WriteString("[ ] ")
			}
		default:
			if node.HasChildren() {
				r.inlines(node)
			}
		}
	}
}

// textContent returns the plain-text content of a node tree.
func (r *renderer) textContent(n ast.Node) string {
	var buf bytes.Buffer
	r.collectText(n, &buf)
	return buf.String()
}

func (r *renderer) collectText(node ast.Node, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Text(r.source))
		case *ast.String:
			buf.Write(t.Value)
		default:
			r.collectText(c, buf)
		}
	}
}

// ---------------------------------------------------------------------------
// List rendering
// ---------------------------------------------------------------------------

func (r *renderer) list(n *ast.List) {
	idx := 0
	if n.Start > 0 {
		idx = int(n.Start) - 1
	}
	indent := strings.Repeat("  ", r.listDepth)

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		if n.IsOrdered() {
			idx++
			fmt.Fprintf(&r.buf, "%s%d. ", indent, idx)
		} else {
			r.buf.WriteString(indent)
			r.buf.WriteString("• ")
		}
		r.listItemContent(item)
		r.buf.WriteByte('\n')
	}
	if r.listDepth == 0 {
		r.buf.WriteByte('\n')
	}
}

func (r *renderer) listItemContent(item *ast.ListItem) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if !first {
				r.buf.WriteByte('\n')
				r.buf.WriteString(strings.Repeat("  ", r.listDepth+1))
			}
			r.inlines(n)
			first = false
		case *ast.List:
			r.buf.WriteByte('\n')
			r.listDepth++
			r.list(n)
			r.listDepth--
		default:
			r.block(c)
			first = false
		}
	}
}

// ---------------------------------------------------------------------------
// Table rendering (GFM)
// ---------------------------------------------------------------------------

func (r *renderer) table(t *east.Table) {
	var rows [][]string
	headerIdx := -1

	for child := t.FirstChild(); child != nil; child = child.NextSibling() {
		var cells []string
		isHeader := false

		switch row := child.(type) {
		case *east.TableHeader:
			isHeader = true
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, r.textContent(cell))
			}
		case *east.TableRow:
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, r.textContent(cell))
			}
		default:
			continue
		}
		if isHeader {
			headerIdx = len(rows)
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	for i := range rows {
		for len(rows[i]) < numCols {
			rows[i] = append(rows[i], "")
		}
	}

	headers := make([]string, numCols)
	dataRows := rows
	if headerIdx >= 0 && headerIdx < len(rows) {
		copy(headers, rows[headerIdx])
		dataRows = append(rows[:headerIdx], rows[headerIdx+1:]...)
	}
	for i := range headers {
		if strings.TrimSpace(headers[i]) == "" {
			headers[i] = fmt.Sprintf("Column %d", i+1)
		}
	}

	// Fallback for malformed "header-only" tables: keep one shell row.
	if len(dataRows) == 0 {
		dataRows = [][]string{make([]string, numCols)}
	}

	for i, row := range dataRows {
		fmt.Fprintf(&r.buf, "%s\n", boldStyle.Render(fmt.Sprintf("%d.", i+1)))
		for j, cell := range row {
			r.buf.WriteString("• ")
			r.buf.WriteString(boldStyle.Render(headers[j]))
			r.buf.WriteString(": ")
			r.buf.WriteString(cell)
			r.buf.WriteByte('\n')
		}
		if i < len(dataRows)-1 {
			r.buf.WriteByte('\n')
		}
	}
	r.buf.WriteByte('\n')
}
