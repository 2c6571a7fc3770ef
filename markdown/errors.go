// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package markdown

import "errors"

var (
	// ErrReadSource is returned when a markdown source file cannot be read.
	ErrReadSource = errors.New("read markdown source")
	// ErrParseFrontMatter is returned when the YAML front matter block is malformed.
	ErrParseFrontMatter = errors.New("parse front matter")
	// ErrInvalidMetadata is returned when front matter fails validation.
	ErrInvalidMetadata = errors.New("invalid page metadata")
)
