// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// headerLineCount is the number of lines New emits before any caller content.
const headerLineCount = 6

// LineSource is anything that can contribute an ordered list of lines to a document.
type LineSource interface {
	Lines() []Line
}

// Document is one complete mdoc manual page.
//
// The page header (Dd, Dt, Os, Sh NAME, Nm, Nd) is emitted by New and is
// never removed; every other operation only appends. A Document is not safe
// for concurrent mutation.
type Document struct {
	date        *Date
	system      *OperatingSystem
	title       DocumentTitle
	name        Name
	description Description
	lines       []Line
}

// New returns a document with the mandatory page header already emitted.
//
// A nil date renders as the $Mdocdate$ keyword. A nil system leaves the footer
// system to the formatter.
func New(date *Date, title DocumentTitle, name Name, description Description, system *OperatingSystem) *Document {
	doc := &Document{
		title:       title,
		name:        name,
		description: description,
		lines:       make([]Line, 0, headerLineCount),
	}

	if date != nil {
		dateCopy := *date
		doc.date = &dateCopy
	}

	if system != nil {
		systemCopy := *system
		doc.system = &systemCopy
	}

	doc.lines = append(doc.lines,
		dateLine(doc.date),
		titleLine(doc.title),
		osLine(doc.system),
		Control("Sh", SectionName),
		Control("Nm", string(doc.name)),
		Control("Nd", string(doc.description)),
	)

	return doc
}

// Concat returns a new document with the header fields of first and the lines
// of first followed by the lines of every source in rest.
//
// Documents in rest contribute their own header lines too; use Fragment for
// header-less composition. A nil first yields a document holding only the
// lines of rest.
func Concat(first *Document, rest ...LineSource) *Document {
	out := &Document{}
	if first != nil {
		out = &Document{
			date:        first.date,
			system:      first.system,
			title:       first.title,
			name:        first.name,
			description: first.description,
			lines:       slices.Clone(first.lines),
		}
	}

	for _, src := range rest {
		out.Append(src)
	}

	return out
}

// Date returns the declared date, or nil when the placeholder is used.
func (doc *Document) Date() *Date {
	if doc.date == nil {
		return nil
	}

	date := *doc.date
	return &date
}

// Title returns the document title.
func (doc *Document) Title() DocumentTitle {
	return doc.title
}

// OperatingSystem returns the declared operating system, or nil.
func (doc *Document) OperatingSystem() *OperatingSystem {
	if doc.system == nil {
		return nil
	}

	system := *doc.system
	return &system
}

// Name returns the documented name.
func (doc *Document) Name() Name {
	return doc.name
}

// Description returns the one-line description.
func (doc *Document) Description() Description {
	return doc.description
}

// Len returns the number of lines, header included. A nil document has none.
func (doc *Document) Len() int {
	if doc == nil {
		return 0
	}

	return len(doc.lines)
}

// Lines returns a copy of all document lines, header included. A nil document has none.
func (doc *Document) Lines() []Line {
	if doc == nil {
		return nil
	}

	return slices.Clone(doc.lines)
}

// Control appends a control line and returns doc for chaining.
func (doc *Document) Control(name string, args ...string) *Document {
	doc.lines = append(doc.lines, Control(name, args...))
	return doc
}

// Text appends a text line and returns doc for chaining.
//
// The caller does not need to guard against leading periods or apostrophes;
// they are escaped on render.
func (doc *Document) Text(inlines ...Inline) *Document {
	doc.lines = append(doc.lines, Text(inlines...))
	return doc
}

// AddSection appends an Sh heading, upper-cased, followed by lines in order.
func (doc *Document) AddSection(heading string, lines ...Line) *Document {
	doc.lines = appendSection(doc.lines, heading, lines)
	return doc
}

// Extend appends lines in order.
func (doc *Document) Extend(lines ...Line) *Document {
	doc.lines = append(doc.lines, lines...)
	return doc
}

// Append appends every line of src, including the header when src is a Document.
// A nil src, or a nil *Document or *Fragment, appends nothing.
func (doc *Document) Append(src LineSource) *Document {
	if src == nil {
		return doc
	}

	doc.lines = append(doc.lines, src.Lines()...)
	return doc
}

// Render returns the document as mdoc source text.
func (doc *Document) Render() string {
	return renderLines(doc.lines)
}

// String is Render.
func (doc *Document) String() string {
	return doc.Render()
}

// WriteTo writes the rendered document to w line by line.
//
// A sink failure is returned as is after the lines already written; the
// document is unchanged, so writing again from scratch is safe.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, doc.lines)
}

// WriteFile renders the document into the file at path, replacing any content.
func (doc *Document) WriteFile(path string) error {
	//nolint:gosec // manual pages are installed world-readable.
	if err := os.WriteFile(path, []byte(doc.Render()), 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteFile, path, err)
	}

	return nil
}

// SectionHeading returns heading the way AddSection writes it: trimmed and
// upper-cased with Unicode-aware case mapping.
func SectionHeading(heading string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(heading))
}

// appendSection appends an Sh line for heading and then lines.
func appendSection(dst []Line, heading string, lines []Line) []Line {
	dst = append(dst, Control("Sh", SectionHeading(heading)))
	return append(dst, lines...)
}

// renderLines concatenates the rendering of every line.
func renderLines(lines []Line) string {
	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line.String())
	}

	return out.String()
}

// writeLines writes every line to w and stops at the first sink failure.
func writeLines(w io.Writer, lines []Line) (int64, error) {
	var total int64
	for _, line := range lines {
		n, err := line.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
