// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

// Package flagsdoc derives a starter mdoc manual page from a go-flags parser.
package flagsdoc

import (
	"reflect"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/mdoc"
)

const (
	// defaultSection is the manual section for user commands.
	defaultSection = "1"
	// defaultValueName is used for value-taking options without a value name.
	defaultValueName = "VALUE"
)

// Options configures page metadata that a parser does not carry.
type Options struct {
	// Date is the page date; nil uses the $Mdocdate$ placeholder.
	Date *mdoc.Date
	// OS is the footer operating system; nil leaves it to the formatter.
	OS *mdoc.OperatingSystem
	// Title overrides the page title; defaults to the upper-cased parser name.
	Title string
	// Section is the manual section; defaults to "1".
	Section string
	// Arch is the optional architecture qualifier.
	Arch string
	// Author adds an AUTHORS section when set.
	Author string
}

// FromParser builds a manual page describing the options, positional
// arguments and subcommands of parser.
func FromParser(parser *flags.Parser, opt Options) *mdoc.Document {
	name := strings.TrimSpace(parser.Name)
	opt = normalizeOptions(opt, name)

	doc := mdoc.New(
		opt.Date,
		mdoc.DocumentTitle{
			Title:   mdoc.Title(opt.Title),
			Section: mdoc.Section(opt.Section),
			Arch:    mdoc.Arch(opt.Arch),
		},
		mdoc.Name(name),
		mdoc.Description(strings.TrimSpace(parser.ShortDescription)),
		opt.OS,
	)

	options := visibleOptions(parser.Group)
	args := parser.Args()
	commands := visibleCommands(parser.Commands())

	doc.AddSection(mdoc.SectionSynopsis, mdoc.NameLine())
	for _, option := range options {
		if line, ok := synopsisLine(option); ok {
			doc.Extend(line)
		}
	}

	if len(commands) > 0 {
		doc.Control("Ar", "command")
	}

	for _, arg := range args {
		doc.Extend(argumentLine(arg))
	}

	doc.AddSection(mdoc.SectionDescription)
	if long := strings.TrimSpace(parser.LongDescription); long != "" {
		doc.Text(mdoc.Roman(long))
	}

	if len(options) > 0 {
		doc.Append(optionList(options))
	}

	if len(commands) > 0 {
		doc.AddSection("commands")
		doc.Append(commandList(commands))
	}

	if author := strings.Fields(opt.Author); len(author) > 0 {
		doc.AddSection(mdoc.SectionAuthors, mdoc.Control("An", author...))
	}

	return doc
}

// normalizeOptions fills title and section defaults.
func normalizeOptions(opt Options, name string) Options {
	opt.Title = strings.TrimSpace(opt.Title)
	if opt.Title == "" {
		opt.Title = strings.ToUpper(name)
	}

	opt.Section = strings.TrimSpace(opt.Section)
	if opt.Section == "" {
		opt.Section = defaultSection
	}

	return opt
}

// synopsisLine returns Fl for required options and Op Fl for optional ones.
// Options without long or short names are skipped.
func synopsisLine(option *flags.Option) (mdoc.ControlLine, bool) {
	args := make([]string, 0, 6)
	macro := "Fl"
	if !option.Required {
		macro = "Op"
		args = append(args, "Fl")
	}

	spelling, ok := optionSpelling(option)
	if !ok {
		return mdoc.ControlLine{}, false
	}

	args = append(args, spelling...)
	if takesValue(option) {
		args = append(args, "Ar", valueName(option))
	}

	return mdoc.Control(macro, args...), true
}

// optionSpelling returns "-long | s", "-long" or "s" as Fl arguments.
// Fl adds the leading dash itself.
func optionSpelling(option *flags.Option) ([]string, bool) {
	long := option.LongNameWithNamespace()
	switch {
	case long != "" && option.ShortName != 0:
		return []string{"-" + long, "|", string(option.ShortName)}, true
	case long != "":
		return []string{"-" + long}, true
	case option.ShortName != 0:
		return []string{string(option.ShortName)}, true
	default:
		return nil, false
	}
}

// argumentLine returns Ar for required positional arguments and Op Ar otherwise.
func argumentLine(arg *flags.Arg) mdoc.ControlLine {
	name := strings.TrimSpace(arg.Name)
	if name == "" {
		name = "arg"
	}

	if arg.Required > 0 {
		return mdoc.Control("Ar", name)
	}

	return mdoc.Control("Op", "Ar", name)
}

// optionList returns a tagged list describing every option.
func optionList(options []*flags.Option) *mdoc.Fragment {
	list := mdoc.NewFragment(mdoc.Control("Bl", "-tag", "-width", "Ds"))
	for _, option := range options {
		spelling, ok := optionSpelling(option)
		if !ok {
			continue
		}

		item := append([]string{"Fl"}, spelling[0])
		if len(spelling) == 3 {
			item = append(item, ",", "Fl", spelling[2])
		}

		if takesValue(option) {
			item = append(item, "Ar", valueName(option))
		}

		list.Control("It", item...)
		if description := strings.TrimSpace(option.Description); description != "" {
			list.Text(mdoc.Roman(description))
		}

		if len(option.Choices) > 0 {
			list.Text(mdoc.Roman("One of: "), mdoc.Italic(strings.Join(option.Choices, ", ")), mdoc.Roman("."))
		}

		if len(option.Default) > 0 {
			list.Text(mdoc.Roman("Default: "), mdoc.Bold(strings.Join(option.Default, ", ")), mdoc.Roman("."))
		}
	}

	return list.Control("El")
}

// commandList returns a tagged list of subcommands with their descriptions.
func commandList(commands []*flags.Command) *mdoc.Fragment {
	list := mdoc.NewFragment(mdoc.Control("Bl", "-tag", "-width", "Ds"))
	for _, command := range commands {
		list.Control("It", "Cm", command.Name)
		if description := strings.TrimSpace(command.ShortDescription); description != "" {
			list.Text(mdoc.Roman(description))
		}
	}

	return list.Control("El")
}

// visibleOptions collects options of group and its nested groups, skipping hidden ones.
func visibleOptions(group *flags.Group) []*flags.Option {
	if group == nil || group.Hidden {
		return nil
	}

	var out []*flags.Option
	for _, option := range group.Options() {
		if option.Hidden {
			continue
		}

		out = append(out, option)
	}

	for _, child := range group.Groups() {
		out = append(out, visibleOptions(child)...)
	}

	return out
}

// visibleCommands drops hidden subcommands.
func visibleCommands(commands []*flags.Command) []*flags.Command {
	out := make([]*flags.Command, 0, len(commands))
	for _, command := range commands {
		if command.Hidden {
			continue
		}

		out = append(out, command)
	}

	return out
}

// takesValue reports whether option consumes an argument.
// Bool flags, bool slices and argument-less funcs do not.
func takesValue(option *flags.Option) bool {
	valueType := reflect.TypeOf(option.Value())
	if valueType == nil {
		return true
	}

	for valueType.Kind() == reflect.Pointer {
		valueType = valueType.Elem()
	}

	switch valueType.Kind() {
	case reflect.Bool:
		return false
	case reflect.Slice:
		return valueType.Elem().Kind() != reflect.Bool
	case reflect.Func:
		return valueType.NumIn() > 0
	default:
		return true
	}
}

// valueName returns the declared value name or a generic placeholder.
func valueName(option *flags.Option) string {
	if name := strings.TrimSpace(option.ValueName); name != "" {
		return name
	}

	return defaultValueName
}
