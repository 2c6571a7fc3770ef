// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// fontItalic switches the current font to italic.
	fontItalic = `\fI`
	// fontBold switches the current font to bold.
	fontBold = `\fB`
	// fontRoman switches the current font back to roman.
	fontRoman = `\fR`
	// lineBreakRequest forces a line break in filled text.
	lineBreakRequest = ".br\n"
)

// Line is one physical line of an mdoc document.
//
// The set of implementations is closed: ControlLine and TextLine.
// Lines are immutable once created.
type Line interface {
	io.WriterTo
	fmt.Stringer

	mdocLine()
}

// ControlLine invokes a built-in request or mdoc macro with arguments.
type ControlLine struct {
	name string
	args []string
}

// TextLine is a line of prose assembled from inline fragments.
type TextLine struct {
	inlines []Inline
}

// Control returns a control line for macro name with args.
//
// Arguments are kept as given. On render, arguments that are empty or contain
// spaces or tabs are enclosed in double quotes.
func Control(name string, args ...string) ControlLine {
	return ControlLine{
		name: name,
		args: slices.Clone(args),
	}
}

// NameLine returns a bare Nm line, which repeats the document name.
func NameLine() ControlLine {
	return Control("Nm")
}

// CrossReference returns an Xr line referring to another manual page.
func CrossReference(title, section string) ControlLine {
	return Control("Xr", title, section)
}

// Text returns a text line made of inlines.
func Text(inlines ...Inline) TextLine {
	return TextLine{inlines: slices.Clone(inlines)}
}

// Name returns the request or macro name.
func (line ControlLine) Name() string {
	return line.name
}

// Args returns a copy of the line arguments.
func (line ControlLine) Args() []string {
	return slices.Clone(line.args)
}

// String renders the control line, including the trailing newline.
func (line ControlLine) String() string {
	var out strings.Builder
	out.WriteByte(controlChar)
	out.WriteString(line.name)
	for _, arg := range line.args {
		out.WriteByte(' ')
		out.WriteString(quoteArg(arg))
	}

	out.WriteByte('\n')
	return out.String()
}

// WriteTo writes the rendered control line to w.
func (line ControlLine) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(w, line.String())
}

func (ControlLine) mdocLine() {}

// Inlines returns a copy of the line fragments.
func (line TextLine) Inlines() []Inline {
	return slices.Clone(line.inlines)
}

// String renders the text line.
//
// Text is escaped so that no physical line of output starts with a control
// character. Hard breaks become separate .br request lines. The line always
// ends with exactly one newline.
func (line TextLine) String() string {
	var out strings.Builder
	atLineStart := true

	for _, inline := range line.inlines {
		switch inline.Kind {
		case InlineLineBreak:
			if !atLineStart {
				out.WriteByte('\n')
			}

			out.WriteString(lineBreakRequest)
			atLineStart = true

		case InlineItalic:
			out.WriteString(fontItalic)
			out.WriteString(escapeText(inline.Text))
			out.WriteString(fontRoman)
			atLineStart = false

		case InlineBold:
			out.WriteString(fontBold)
			out.WriteString(escapeText(inline.Text))
			out.WriteString(fontRoman)
			atLineStart = false

		default:
			text := escapeText(inline.Text)
			if startsPhysicalLine(&out) && startsLikeControlLine(text) {
				out.WriteString(zeroWidth)
			}

			out.WriteString(text)
			atLineStart = false
		}
	}

	out.WriteByte('\n')
	return out.String()
}

// startsPhysicalLine reports whether the next byte written to out begins an output line.
func startsPhysicalLine(out *strings.Builder) bool {
	rendered := out.String()
	return rendered == "" || rendered[len(rendered)-1] == '\n'
}

// WriteTo writes the rendered text line to w.
func (line TextLine) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(w, line.String())
}

func (TextLine) mdocLine() {}

// writeRendered writes one rendered line and wraps sink failures.
func writeRendered(w io.Writer, rendered string) (int64, error) {
	n, err := io.WriteString(w, rendered)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrWriteLine, err)
	}

	return int64(n), nil
}
