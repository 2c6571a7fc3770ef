// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package mdoc

import "errors"

var (
	// ErrWriteLine is returned when the output sink fails while a line is written.
	ErrWriteLine = errors.New("write mdoc line")
	// ErrWriteFile is returned when rendered output cannot be stored in a file.
	ErrWriteFile = errors.New("write mdoc file")
)
