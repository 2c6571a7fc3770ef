// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/mdoc"
)

// dateLayout is the accepted front matter date format.
const dateLayout = "2006-01-02"

// sectionPattern matches manual sections such as "1", "3p" or "8".
var sectionPattern = regexp.MustCompile(`^[1-9][a-z]*$`)

// yamlFormat decodes "---" delimited front matter with yaml.v3.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Metadata is the page front matter.
type Metadata struct {
	Title       string `yaml:"title"`
	Section     string `yaml:"section"`
	Arch        string `yaml:"arch"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	OS          string `yaml:"os"`
	OSVersion   string `yaml:"os_version"`
	Author      string `yaml:"author"`
}

// Validate checks required fields and formats.
func (meta Metadata) Validate() error {
	return validation.ValidateStruct(&meta,
		validation.Field(&meta.Name, validation.Required),
		validation.Field(&meta.Description, validation.Required),
		validation.Field(&meta.Section, validation.Required, validation.Match(sectionPattern)),
		validation.Field(&meta.Date, validation.Date(dateLayout)),
	)
}

// ParseFrontMatter splits source into metadata and markdown body.
// Source without front matter yields zero metadata and the whole source as body.
func ParseFrontMatter(source []byte) (Metadata, []byte, error) {
	var meta Metadata
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("%w: %w", ErrParseFrontMatter, err)
	}

	return meta, body, nil
}

// normalizeMetadata trims fields and applies option fallbacks.
func normalizeMetadata(meta Metadata, opt Options) Metadata {
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Section = strings.TrimSpace(meta.Section)
	meta.Arch = strings.TrimSpace(meta.Arch)
	meta.Name = strings.TrimSpace(meta.Name)
	meta.Description = strings.TrimSpace(meta.Description)
	meta.Date = strings.TrimSpace(meta.Date)
	meta.OS = strings.TrimSpace(meta.OS)
	meta.OSVersion = strings.TrimSpace(meta.OSVersion)
	meta.Author = strings.TrimSpace(meta.Author)

	if meta.Section == "" {
		meta.Section = strings.TrimSpace(opt.Section)
	}

	if meta.Section == "" {
		meta.Section = defaultSection
	}

	if meta.OS == "" {
		meta.OS = strings.TrimSpace(opt.OS)
	}

	if meta.Title == "" {
		meta.Title = strings.ToUpper(meta.Name)
	}

	return meta
}

// newDocument builds the page header from validated metadata.
// Header fields become control arguments, so backslashes are escaped here.
func newDocument(meta Metadata) *mdoc.Document {
	var date *mdoc.Date
	if meta.Date != "" {
		// Validate has already checked the layout.
		if parsed, err := time.Parse(dateLayout, meta.Date); err == nil {
			value := mdoc.DateFromTime(parsed)
			date = &value
		}
	}

	var system *mdoc.OperatingSystem
	if meta.OS != "" {
		system = &mdoc.OperatingSystem{
			System:  mdoc.System(mdoc.EscapeArgument(meta.OS)),
			Version: mdoc.Version(mdoc.EscapeArgument(meta.OSVersion)),
		}
	}

	return mdoc.New(
		date,
		mdoc.DocumentTitle{
			Title:   mdoc.Title(mdoc.EscapeArgument(meta.Title)),
			Section: mdoc.Section(meta.Section),
			Arch:    mdoc.Arch(mdoc.EscapeArgument(meta.Arch)),
		},
		mdoc.Name(mdoc.EscapeArgument(meta.Name)),
		mdoc.Description(mdoc.EscapeArgument(meta.Description)),
		system,
	)
}
