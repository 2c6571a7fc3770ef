// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/mdoc

package markdown

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkConvert measures front matter parsing, Markdown parsing and page building.
func BenchmarkConvert(b *testing.B) {
	source, err := os.ReadFile(filepath.Join("testdata", "greet.md"))
	if err != nil {
		b.Fatalf("read fixture: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	for i := 0; i < b.N; i++ {
		if _, err := Convert(source, Options{GFM: true}); err != nil {
			b.Fatalf("Convert: %v", err)
		}
	}
}

// BenchmarkConvertRender measures conversion followed by rendering.
func BenchmarkConvertRender(b *testing.B) {
	source, err := os.ReadFile(filepath.Join("testdata", "greet.md"))
	if err != nil {
		b.Fatalf("read fixture: %v", err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		doc, err := Convert(source, Options{})
		if err != nil {
			b.Fatalf("Convert: %v", err)
		}

		_ = doc.Render()
	}
}
