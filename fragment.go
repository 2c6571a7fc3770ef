// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import (
	"io"
	"slices"
)

// Fragment is an ordered list of lines without a page header.
//
// Fragments build reusable parts of a page that are later appended to a
// Document. The zero value is ready to use.
type Fragment struct {
	lines []Line
}

// NewFragment returns a fragment holding lines.
func NewFragment(lines ...Line) *Fragment {
	return &Fragment{lines: slices.Clone(lines)}
}

// Len returns the number of lines. A nil fragment has none.
func (frag *Fragment) Len() int {
	if frag == nil {
		return 0
	}

	return len(frag.lines)
}

// Lines returns a copy of the fragment lines. A nil fragment has none.
func (frag *Fragment) Lines() []Line {
	if frag == nil {
		return nil
	}

	return slices.Clone(frag.lines)
}

// Control appends a control line and returns frag for chaining.
func (frag *Fragment) Control(name string, args ...string) *Fragment {
	frag.lines = append(frag.lines, Control(name, args...))
	return frag
}

// Text appends a text line and returns frag for chaining.
func (frag *Fragment) Text(inlines ...Inline) *Fragment {
	frag.lines = append(frag.lines, Text(inlines...))
	return frag
}

// AddSection appends an Sh heading, upper-cased, followed by lines in order.
func (frag *Fragment) AddSection(heading string, lines ...Line) *Fragment {
	frag.lines = appendSection(frag.lines, heading, lines)
	return frag
}

// Extend appends lines in order.
func (frag *Fragment) Extend(lines ...Line) *Fragment {
	frag.lines = append(frag.lines, lines...)
	return frag
}

// Append appends every line of src. A nil src appends nothing.
func (frag *Fragment) Append(src LineSource) *Fragment {
	if src == nil {
		return frag
	}

	frag.lines = append(frag.lines, src.Lines()...)
	return frag
}

// Render returns the fragment as mdoc source text.
func (frag *Fragment) Render() string {
	return renderLines(frag.lines)
}

// WriteTo writes the rendered fragment to w.
func (frag *Fragment) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, frag.lines)
}
