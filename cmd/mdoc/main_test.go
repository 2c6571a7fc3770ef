// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMarkdownPage = `---
name: greet
description: print a friendly greeting
section: "1"
date: "2026-01-02"
---

## Description

The **greet** utility writes a greeting.
`

func TestRunMarkdownToMdocWritesToStdout(t *testing.T) {
	t.Parallel()

	inputPath := writeMarkdownFixture(t, testMarkdownPage)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", inputPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), ".Dd January 2, 2026\n.Dt GREET 1\n")
	assertContains(t, stdout.String(), ".Sh DESCRIPTION\nThe \\fBgreet\\fR utility writes a greeting.\n")
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunMarkdownToMdocFromStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"md2mdoc", "--section", "8", "--os", "Linux"}, strings.NewReader(`---
name: tool
description: do things
---

## Usage

Run it.
`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), ".Dt TOOL 8\n.Os Linux\n")
	assertContains(t, stdout.String(), ".Sh USAGE\nRun it.\n")
}

func TestRunMarkdownToMdocWritesToOutputFile(t *testing.T) {
	t.Parallel()

	inputPath := writeMarkdownFixture(t, testMarkdownPage)
	outPath := filepath.Join(t.TempDir(), "greet.1")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", inputPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	if stderr.Len() != 0 {
		t.Fatalf("unexpected warning for matching suffix: %s", stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), ".Nm greet\n")
}

func TestRunWarnsOnSectionSuffixMismatch(t *testing.T) {
	t.Parallel()

	inputPath := writeMarkdownFixture(t, testMarkdownPage)
	outPath := filepath.Join(t.TempDir(), "greet.8")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", inputPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "warning: output")
	assertContains(t, stderr.String(), `".1"`)
}

func TestRunMarkdownToMdocGFM(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"md2mdoc", "--gfm"}, strings.NewReader(`---
name: tool
description: do things
---

## Notes

Keep ~~old~~ behavior.
`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "Keep old behavior.\n")
}

func TestRunReturnsErrorForInvalidMetadata(t *testing.T) {
	t.Parallel()

	inputPath := writeMarkdownFixture(t, "---\nname: greet\n---\nbody\n")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", inputPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "convert markdown: invalid page metadata")
}

func TestRunReturnsErrorForMissingInputFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", filepath.Join(t.TempDir(), "missing.md")}, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code for missing markdown file")
	}

	assertContains(t, stderr.String(), "read markdown input:")
}

func TestRunReturnsErrorForEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"md2mdoc"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "empty input")
}

func TestRunExampleWritesPage(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	want := strings.Join([]string{
		".Dd $Mdocdate$",
		".Dt TEST 1",
		".Os",
		".Sh NAME",
		".Nm test",
		`.Nd "This is a description in one line."`,
		".Sh SYNOPSIS",
		".Nm",
		".Op Fl v",
		`.Ar "file ..."`,
		".Sh DESCRIPTION",
		"The mandoc utility formats manual pages for display.",
		".Pp",
		`Lines such as \fI.TH\fR or \fB'br\fR inside text stay text:`,
		".br",
		`\&.this line starts with a period`,
		`.Sh "SEE ALSO"`,
		".Xr mandoc 1",
		".Xr mdoc 7",
		"",
	}, "\n")

	if stdout.String() != want {
		t.Fatalf("example page mismatch\ngot:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestRunExampleToOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "test.1")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	if string(content) != examplePage().Render() {
		t.Fatalf("file content mismatch: %s", string(content))
	}
}

func TestRunManualPageDescribesCommands(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"manpage", "--author", "Jane Doe"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	rendered := stdout.String()
	assertContains(t, rendered, `.Nd "generate mdoc manual pages"`)
	assertContains(t, rendered, ".Sh COMMANDS\n.Bl -tag -width Ds\n")
	for _, command := range []string{"version", "md2mdoc", "example", "manpage"} {
		assertContains(t, rendered, ".It Cm "+command+"\n")
	}

	assertContains(t, rendered, ".Sh SYNOPSIS\n.Nm\n.Ar command\n")
	assertContains(t, rendered, ".Sh AUTHORS\n.An Jane Doe\n")
	if !strings.HasSuffix(rendered, `.Sh "SEE ALSO"`+"\n.Xr mdoc 7\n.Xr mandoc 1\n") {
		t.Fatalf("expected SEE ALSO at end:\n%s", rendered)
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "version:  "+Version)
	assertContains(t, stdout.String(), "url:      "+URL)
}

func TestRunHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"md2mdoc", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "--section")
}

func TestRunReturnsErrorForMissingCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunReturnsErrorForUnknownFlag(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "--bogus"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "unknown flag")
}

func writeMarkdownFixture(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.md")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write markdown fixture: %v", err)
	}

	return path
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}
