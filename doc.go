// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

/*
Package mdoc builds manual pages in the mdoc(7) markup language and renders
them to source text that mandoc(1) or groff(1) can format.

A document is an ordered list of lines. Control lines invoke a request or
macro with arguments; text lines carry prose made of inline fragments. The
package escapes text on render, so caller strings never turn into control
lines or roff escape sequences.

Build a page:

	doc := mdoc.New(
		nil,
		mdoc.DocumentTitle{Title: "HELLO", Section: "1"},
		"hello",
		"print a friendly greeting",
		nil,
	)

	doc.AddSection(mdoc.SectionSynopsis, mdoc.NameLine(), mdoc.Control("Op", "Fl", "v"))
	doc.AddSection(mdoc.SectionDescription,
		mdoc.Text(
			mdoc.Roman("The "),
			mdoc.Bold("hello"),
			mdoc.Roman(" utility writes a greeting to standard output."),
		),
	)

	fmt.Print(doc.Render())

Write to any io.Writer:

	if _, err := doc.WriteTo(os.Stdout); err != nil {
		return err
	}

Compose without repeating the page header:

	var examples mdoc.Fragment
	examples.Text(mdoc.Roman("Greet loudly:"))
	examples.Control("Dl", "hello -v")

	doc.Append(&examples)

Control arguments that are empty or contain blanks are quoted on render:

	mdoc.Control("Nd", "print a friendly greeting")
	// .Nd "print a friendly greeting"
*/
package mdoc
