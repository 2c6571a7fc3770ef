// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

// mdoc generates mdoc(7) manual pages from Markdown and from its own flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/mdoc"
	"github.com/woozymasta/mdoc/flagsdoc"
	"github.com/woozymasta/mdoc/markdown"
)

// shortDescription is the one-line program description used in help and the NAME section.
const shortDescription = "generate mdoc manual pages"

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/mdoc"
	_buildTime string
)

// cliOptions describes mdoc CLI flags and subcommands.
type cliOptions struct {
	Version        versionCommand        `command:"version" description:"Print version information"`
	MarkdownToMdoc markdownToMdocCommand `command:"md2mdoc" description:"Convert Markdown with front matter to mdoc"`
	Example        exampleCommand        `command:"example" description:"Print a demonstration manual page"`
	ManualPage     manualPageCommand     `command:"manpage" description:"Print the manual page of this program"`
}

// markdownConvertFlags groups Markdown conversion flags.
type markdownConvertFlags struct {
	Section string `short:"s" long:"section" description:"Manual section used when front matter has none" default:"1"`
	OS      string `short:"o" long:"os" description:"Operating system used when front matter has none"`
	GFM     bool   `short:"g" long:"gfm" description:"Enable GitHub Flavored Markdown extensions"`
}

// markdownToMdocCommand converts a Markdown page to mdoc.
type markdownToMdocCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input Markdown file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output manual page path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ConvertFlags markdownConvertFlags `group:"Markdown Convert"`
}

// Execute runs md2mdoc subcommand.
func (command *markdownToMdocCommand) Execute(_ []string) error {
	return command.runner.runMarkdownToMdoc(
		markdown.Options{
			Section: command.ConvertFlags.Section,
			OS:      command.ConvertFlags.OS,
			GFM:     command.ConvertFlags.GFM,
		},
		command.Args.Input,
		command.Args.Output,
	)
}

// exampleCommand prints the built-in demonstration page.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output manual page path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.writeDocument(examplePage(), command.Args.Output)
}

// manualPageCommand prints the manual page of this program derived from its flags.
type manualPageCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output manual page path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Section string `short:"s" long:"section" description:"Manual section" default:"1"`
	Author  string `short:"a" long:"author" description:"Author credited in the AUTHORS section" default:"WoozyMasta"`
}

// Execute runs manpage subcommand.
func (command *manualPageCommand) Execute(_ []string) error {
	return command.runner.runManualPage(command.Section, command.Author, command.Args.Output)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "mdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runMarkdownToMdoc converts Markdown from file or stdin and writes the page to stdout or file.
func (runner *cliRunner) runMarkdownToMdoc(options markdown.Options, inputPath, outputPath string) error {
	source, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read markdown input: %w", err)
	}

	doc, err := markdown.Convert(source, options)
	if err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	runner.warnSectionSuffix(outputPath, string(doc.Title().Section))
	return runner.writeDocument(doc, outputPath)
}

// runManualPage writes the manual page of this program.
func (runner *cliRunner) runManualPage(section, author, outputPath string) error {
	parser := newCLIParser(&cliOptions{}, runner)
	doc := flagsdoc.FromParser(parser, flagsdoc.Options{
		Section: section,
		Author:  author,
	})

	doc.AddSection(mdoc.SectionSeeAlso, mdoc.CrossReference("mdoc", "7"), mdoc.CrossReference("mandoc", "1"))
	return runner.writeDocument(doc, outputPath)
}

// writeDocument renders doc to stdout or to the file at outputPath.
func (runner *cliRunner) writeDocument(doc *mdoc.Document, outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := doc.WriteTo(runner.stdout); err != nil {
			return fmt.Errorf("write manual page to stdout: %w", err)
		}

		return nil
	}

	if err := doc.WriteFile(outputPath); err != nil {
		return fmt.Errorf("write manual page file %q: %w", outputPath, err)
	}

	return nil
}

// warnSectionSuffix warns when the output file name does not carry the manual section suffix.
func (runner *cliRunner) warnSectionSuffix(outputPath, section string) {
	outputPath = strings.TrimSpace(outputPath)
	if outputPath == "" || section == "" {
		return
	}

	if !strings.HasSuffix(outputPath, "."+section) {
		_, _ = fmt.Fprintf(runner.stderr, "warning: output %q does not end with section suffix %q\n", outputPath, "."+section)
	}
}

// readInput reads input from file path or stdin.
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read from stdin: empty input")
	}

	return data, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	parser := newCLIParser(&cliOptions{}, runner)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// newCLIParser wires runner into every subcommand and returns the configured parser.
func newCLIParser(options *cliOptions, runner *cliRunner) *flags.Parser {
	options.Version.runner = runner
	options.MarkdownToMdoc.runner = runner
	options.Example.runner = runner
	options.ManualPage.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.ShortDescription = shortDescription
	parser.LongDescription = fmt.Sprintf("The %s utility builds manual pages in the mdoc language "+
		"from Markdown files with YAML front matter.", runner.programName)
	applyCommandLongDescriptions(parser, runner.programName)

	return parser
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"md2mdoc": strings.TrimSpace(fmt.Sprintf(`
Convert a Markdown page with YAML front matter (name, description, section, date) to mdoc.
Reads Markdown from file argument or stdin; writes the manual page to file argument or stdout.

Examples:
> $ %s md2mdoc docs/greet.md greet.1
> $ cat docs/greet.md | %s md2mdoc --gfm > greet.1
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print a small demonstration manual page.

Examples:
> $ %s example | mandoc -a
`, programName)),
		"manpage": strings.TrimSpace(fmt.Sprintf(`
Print the manual page of this program, derived from its command line flags.

Examples:
> $ %s manpage > %s.1
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// examplePage builds the demonstration manual page.
func examplePage() *mdoc.Document {
	doc := mdoc.New(
		nil,
		mdoc.DocumentTitle{Title: "TEST", Section: "1"},
		"test",
		"This is a description in one line.",
		nil,
	)

	doc.AddSection("synopsis", mdoc.NameLine(), mdoc.Control("Op", "Fl", "v"), mdoc.Control("Ar", "file ..."))
	doc.AddSection("description",
		mdoc.Text(mdoc.Roman("The mandoc utility formats manual pages for display.")),
		mdoc.Control("Pp"),
		mdoc.Text(
			mdoc.Roman("Lines such as "),
			mdoc.Italic(".TH"),
			mdoc.Roman(" or "),
			mdoc.Bold("'br"),
			mdoc.Roman(" inside text stay text:"),
			mdoc.Break(),
			mdoc.Roman(".this line starts with a period"),
		),
	)
	doc.AddSection(mdoc.SectionSeeAlso, mdoc.CrossReference("mandoc", "1"), mdoc.CrossReference("mdoc", "7"))

	return doc
}

func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
	if err != nil {
		return fmt.Errorf("write version info: %w", err)
	}

	return nil
}
