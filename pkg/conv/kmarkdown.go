package conv

import (
	"bytes"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

var extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// MarkdownToKMarkdown renders standard Markdown as KOOK KMarkdown. The two
// dialects agree on most inline syntax; block structure is flattened to
// newline-separated lines and unsupported constructs degrade to plain text.
func MarkdownToKMarkdown(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md)

	r := &kmdRenderer{}
	ast.WalkFunc(doc, r.visit)
	return r.buf.String()
}

type kmdRenderer struct {
	buf bytes.Buffer
}

func (r *kmdRenderer) visit(node ast.Node, entering bool) ast.WalkStatus {
	switch n := node.(type) {
	case *ast.Text:
		if entering {
			r.buf.Write(n.Literal)
		}
	case *ast.Softbreak, *ast.Hardbreak:
		if entering {
			r.buf.WriteByte('\n')
		}
	case *ast.Emph:
		r.buf.WriteByte('*')
	case *ast.Strong:
		r.buf.WriteString("**")
	case *ast.Del:
		r.buf.WriteString("~~")
	case *ast.Code:
		if entering {
			r.buf.WriteByte('`')
			r.buf.Write(n.Literal)
			r.buf.WriteByte('`')
		}
	case *ast.CodeBlock:
		if entering {
			r.buf.WriteString("```")
			r.buf.Write(n.Info)
			r.buf.WriteByte('\n')
			r.buf.Write(n.Literal)
			r.buf.WriteString("```\n")
		}
	case *ast.Link:
		if entering {
			r.buf.WriteByte('[')
		} else {
			r.buf.WriteString("](")
			r.buf.Write(n.Destination)
			r.buf.WriteByte(')')
		}
	case *ast.Image:
		// KMarkdown has no inline images; emit the target URL.
		if entering {
			r.buf.Write(n.Destination)
		}
		return ast.SkipChildren
	case *ast.Heading:
		// Headings become bold lines.
		if entering {
			r.buf.WriteString("**")
		} else {
			r.buf.WriteString("**\n")
		}
	case *ast.Paragraph:
		if !entering {
			r.buf.WriteByte('\n')
		}
	case *ast.ListItem:
		if entering {
			r.buf.WriteString("- ")
		}
	case *ast.HorizontalRule:
		if entering {
			r.buf.WriteString("---\n")
		}
	}
	return ast.GoToNext
}
