// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

// InlineKind enumerates the closed set of inline fragment variants.
type InlineKind uint8

const (
	// InlineRoman is text in the normal (roman) font.
	InlineRoman InlineKind = iota
	// InlineItalic is text in the italic font.
	InlineItalic
	// InlineBold is text in the bold font.
	InlineBold
	// InlineLineBreak is a hard line break and carries no text.
	InlineLineBreak
)

// String returns the lower-case variant name.
func (kind InlineKind) String() string {
	switch kind {
	case InlineRoman:
		return "roman"
	case InlineItalic:
		return "italic"
	case InlineBold:
		return "bold"
	case InlineLineBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Inline is one fragment of a text line.
//
// Text is stored exactly as received; escaping happens when the containing
// line is rendered. Text may contain newlines.
type Inline struct {
	Text string
	Kind InlineKind
}

// Roman returns text in the roman font, the default when no other font is chosen.
func Roman(text string) Inline {
	return Inline{Kind: InlineRoman, Text: text}
}

// Italic returns text in the italic font.
func Italic(text string) Inline {
	return Inline{Kind: InlineItalic, Text: text}
}

// Bold returns text in the bold font.
func Bold(text string) Inline {
	return Inline{Kind: InlineBold, Text: text}
}

// Break returns a hard line break.
func Break() Inline {
	return Inline{Kind: InlineLineBreak}
}
