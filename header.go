// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import (
	"strconv"
	"strings"
	"time"
)

// mdocDatePlaceholder is expanded by version control keyword substitution
// and is accepted by mandoc as "today" when left unexpanded.
const mdocDatePlaceholder = "$Mdocdate$"

// Standard manual page section headings, in conventional order.
const (
	SectionName         = "NAME"
	SectionLibrary      = "LIBRARY"
	SectionSynopsis     = "SYNOPSIS"
	SectionDescription  = "DESCRIPTION"
	SectionContext      = "CONTEXT"
	SectionImplNotes    = "IMPLEMENTATION NOTES"
	SectionReturnValues = "RETURN VALUES"
	SectionEnvironment  = "ENVIRONMENT"
	SectionFiles        = "FILES"
	SectionExitStatus   = "EXIT STATUS"
	SectionExamples     = "EXAMPLES"
	SectionDiagnostics  = "DIAGNOSTICS"
	SectionErrors       = "ERRORS"
	SectionSeeAlso      = "SEE ALSO"
	SectionStandards    = "STANDARDS"
	SectionHistory      = "HISTORY"
	SectionAuthors      = "AUTHORS"
	SectionCaveats      = "CAVEATS"
	SectionBugs         = "BUGS"
	SectionSecurity     = "SECURITY CONSIDERATIONS"
)

type (
	// Month is the month token of the document date, for example "January".
	Month string
	// Day is the day-of-month token of the document date.
	Day string
	// Year is the year token of the document date.
	Year string
	// Title is the document title, conventionally the upper-cased page name.
	Title string
	// Section is the manual section, for example "1" or "3p".
	Section string
	// Arch is the optional machine architecture the page applies to.
	Arch string
	// System is the operating system name printed in the page footer.
	System string
	// Version is the operating system version printed next to System.
	Version string
	// Name is the name of the documented utility, function or file.
	Name string
	// Description is the one-line description shown in the NAME section.
	Description string
)

// Date is the document date declared by the Dd macro.
type Date struct {
	Month Month
	Day   Day
	Year  Year
}

// DocumentTitle is the page title declared by the Dt macro.
type DocumentTitle struct {
	Title   Title
	Section Section
	// Arch is optional and omitted when empty.
	Arch Arch
}

// OperatingSystem is the footer system declared by the Os macro.
type OperatingSystem struct {
	System System
	// Version is optional and omitted when empty.
	Version Version
}

// DateFromTime returns the document date for t in mdoc form (full month name, day, year).
func DateFromTime(t time.Time) Date {
	return Date{
		Month: Month(t.Month().String()),
		Day:   Day(strconv.Itoa(t.Day())),
		Year:  Year(strconv.Itoa(t.Year())),
	}
}

// dateLine returns the Dd line for date, or the keyword placeholder when date is nil.
func dateLine(date *Date) ControlLine {
	if date == nil {
		return Control("Dd", mdocDatePlaceholder)
	}

	// mdoc dates are written "Month day, year".
	day := strings.TrimSuffix(string(date.Day), ",") + ","
	return Control("Dd", string(date.Month), day, string(date.Year))
}

// titleLine returns the Dt line for title.
func titleLine(title DocumentTitle) ControlLine {
	if title.Arch == "" {
		return Control("Dt", string(title.Title), string(title.Section))
	}

	return Control("Dt", string(title.Title), string(title.Section), string(title.Arch))
}

// osLine returns the Os line; nil leaves the system to the formatter default.
func osLine(system *OperatingSystem) ControlLine {
	if system == nil || system.System == "" {
		return Control("Os")
	}

	if system.Version == "" {
		return Control("Os", string(system.System))
	}

	return Control("Os", string(system.System), string(system.Version))
}
