// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

// Package markdown converts Markdown pages with YAML front matter into mdoc
// manual pages.
//
// Front matter carries the page header (name, description, section, date).
// Level one and two headings open sections, deeper headings open
// subsections; paragraphs, emphasis, lists and code blocks map to the
// matching mdoc constructs.
package markdown

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/woozymasta/mdoc"
)

// defaultSection is used when neither front matter nor options set a section.
const defaultSection = "1"

// Options configures conversion defaults.
type Options struct {
	// Section is used when front matter has no section.
	Section string
	// OS is used when front matter has no os.
	OS string
	// GFM enables GitHub Flavored Markdown (tables, strikethrough, autolinks).
	GFM bool
}

// ConvertFile reads a markdown file and converts it into a manual page.
func ConvertFile(path string, opt Options) (*mdoc.Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSource, path, err)
	}

	return Convert(source, opt)
}

// Convert turns markdown source with front matter into a manual page.
func Convert(source []byte, opt Options) (*mdoc.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	meta = normalizeMetadata(meta, opt)
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	doc := newDocument(meta)
	conv := converter{source: body, doc: doc}
	conv.blocks(newEngine(opt).Parser().Parse(text.NewReader(body)))

	if author := strings.Fields(mdoc.EscapeArgument(meta.Author)); len(author) > 0 {
		doc.AddSection(mdoc.SectionAuthors, mdoc.Control("An", author...))
	}

	return doc, nil
}

// newEngine builds the goldmark engine for opt.
func newEngine(opt Options) goldmark.Markdown {
	if !opt.GFM {
		return goldmark.New()
	}

	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// converter appends mdoc lines for a goldmark AST.
type converter struct {
	doc    *mdoc.Document
	source []byte
	// paragraph is set after content that needs a Pp before the next paragraph.
	paragraph bool
	// skipping drops a NAME section, which the page header already provides.
	skipping bool
}

// blocks converts every block child of parent.
func (conv *converter) blocks(parent ast.Node) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		conv.block(node)
	}
}

func (conv *converter) block(node ast.Node) {
	if heading, ok := node.(*ast.Heading); ok {
		conv.heading(heading)
		return
	}

	if conv.skipping {
		return
	}

	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		conv.textBlock(n)

	case *ast.List:
		conv.list(n)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		conv.codeBlock(n)

	case *ast.Blockquote:
		conv.doc.Control("Bd", "-ragged", "-offset", "indent")
		conv.paragraph = false
		conv.blocks(n)
		conv.doc.Control("Ed")
		conv.paragraph = true

	case *ast.ThematicBreak:
		conv.doc.Control("Pp")
		conv.paragraph = false

	case *ast.HTMLBlock:

	default:
		if first := n.FirstChild(); first != nil && first.Type() == ast.TypeInline {
			conv.textBlock(n)
			return
		}

		conv.blocks(n)
	}
}

// heading opens a section for levels one and two, a subsection otherwise.
func (conv *converter) heading(node *ast.Heading) {
	title := conv.plainText(node)
	if node.Level <= 2 {
		conv.skipping = strings.EqualFold(title, mdoc.SectionName)
		if !conv.skipping {
			conv.doc.Control("Sh", mdoc.EscapeArgument(mdoc.SectionHeading(title)))
		}
	} else if !conv.skipping {
		conv.doc.Control("Ss", mdoc.EscapeArgument(title))
	}

	conv.paragraph = false
}

// textBlock appends one text line, separated from earlier prose by Pp.
func (conv *converter) textBlock(node ast.Node) {
	inlines := conv.inlines(node, mdoc.InlineRoman, nil)
	if len(inlines) == 0 {
		return
	}

	if conv.paragraph {
		conv.doc.Control("Pp")
	}

	conv.doc.Text(inlines...)
	conv.paragraph = true
}

// list appends a Bl list with one It per item.
func (conv *converter) list(node *ast.List) {
	kind := "-bullet"
	if node.IsOrdered() {
		kind = "-enum"
	}

	if node.IsTight {
		conv.doc.Control("Bl", kind, "-compact")
	} else {
		conv.doc.Control("Bl", kind)
	}

	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		conv.doc.Control("It")
		conv.paragraph = false
		conv.blocks(item)
	}

	conv.doc.Control("El")
	conv.paragraph = true
}

// codeBlock appends a literal display with the block lines verbatim.
func (conv *converter) codeBlock(node ast.Node) {
	conv.doc.Control("Bd", "-literal", "-offset", "indent")

	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimRight(string(segment.Value(conv.source)), "\r\n")
		if line == "" {
			conv.doc.Text()
			continue
		}

		conv.doc.Text(mdoc.Roman(line))
	}

	conv.doc.Control("Ed")
	conv.paragraph = true
}

// inlines collects inline fragments of node in kind, merging adjacent runs of the same font.
func (conv *converter) inlines(node ast.Node, kind mdoc.InlineKind, out []mdoc.Inline) []mdoc.Inline {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			value := string(util.UnescapePunctuations(n.Segment.Value(conv.source)))
			switch {
			case n.HardLineBreak():
				out = appendText(out, kind, strings.TrimRight(value, " "))
				out = append(out, mdoc.Break())
			case n.SoftLineBreak():
				out = appendText(out, kind, value+" ")
			default:
				out = appendText(out, kind, value)
			}

		case *ast.String:
			out = appendText(out, kind, string(n.Value))

		case *ast.CodeSpan:
			out = appendText(out, mdoc.InlineBold, conv.codeText(n))

		case *ast.Emphasis:
			style := mdoc.InlineItalic
			if n.Level >= 2 {
				style = mdoc.InlineBold
			}

			out = conv.inlines(n, style, out)

		case *ast.AutoLink:
			out = appendText(out, kind, string(n.URL(conv.source)))

		case *ast.RawHTML:

		default:
			out = conv.inlines(n, kind, out)
		}
	}

	return out
}

// codeText returns the raw text of a code span; backslashes are literal there.
func (conv *converter) codeText(node *ast.CodeSpan) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if segment, ok := child.(*ast.Text); ok {
			out.Write(segment.Segment.Value(conv.source))
			if segment.SoftLineBreak() {
				out.WriteByte(' ')
			}
		}
	}

	return out.String()
}

// plainText returns the text of node without font changes.
func (conv *converter) plainText(node ast.Node) string {
	var out strings.Builder
	for _, inline := range conv.inlines(node, mdoc.InlineRoman, nil) {
		out.WriteString(inline.Text)
	}

	return strings.TrimSpace(out.String())
}

// appendText appends value in kind, extending the previous fragment when the font matches.
func appendText(out []mdoc.Inline, kind mdoc.InlineKind, value string) []mdoc.Inline {
	if value == "" {
		return out
	}

	if last := len(out) - 1; last >= 0 && out[last].Kind == kind {
		out[last].Text += value
		return out
	}

	return append(out, mdoc.Inline{Kind: kind, Text: value})
}
