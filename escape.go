// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import "strings"

const (
	// controlChar starts a control line when it is the first character of a line.
	controlChar = '.'
	// noBreakControlChar starts a control line that does not cause a break.
	noBreakControlChar = '\''
	// zeroWidth is the non-printing glyph used to push control characters off line start.
	zeroWidth = `\&`
)

// embeddedControlReplacer neutralizes control characters at the start of embedded lines.
var embeddedControlReplacer = strings.NewReplacer(
	"\n.", "\n"+zeroWidth+".",
	"\n'", "\n"+zeroWidth+"'",
)

// textReplacer escapes characters roff would otherwise interpret inside text.
var textReplacer = strings.NewReplacer(
	`\`, `\e`,
	"-", `\-`,
)

// StartsWithControlChar reports whether line begins with the mdoc control character (period).
func StartsWithControlChar(line string) bool {
	return len(line) > 0 && line[0] == controlChar
}

// EscapeEmbeddedControlChars prefixes every period or apostrophe that follows a
// newline with a zero-width escape, so no embedded line can be read as a
// control line. The first character of text is left alone.
func EscapeEmbeddedControlChars(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	return embeddedControlReplacer.Replace(text)
}

// escapeText escapes backslashes and hyphens, then neutralizes embedded control lines.
func escapeText(text string) string {
	return EscapeEmbeddedControlChars(textReplacer.Replace(text))
}

// EscapeArgument replaces every backslash in arg with the \e escape.
//
// Control arguments are written raw, so free text placed in an argument
// should pass through EscapeArgument first. Hyphens are kept as is because
// macros such as Fl and Bl read them as option markers.
func EscapeArgument(arg string) string {
	return strings.ReplaceAll(arg, `\`, `\e`)
}

// startsLikeControlLine reports whether text would open a control line at line start.
func startsLikeControlLine(text string) bool {
	return StartsWithControlChar(text) || (len(text) > 0 && text[0] == noBreakControlChar)
}

// quoteArg wraps control arguments that are empty or contain blanks in double quotes.
// Embedded double quotes are doubled as mdoc expects inside quoted arguments.
func quoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t") {
		return arg
	}

	return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
}
