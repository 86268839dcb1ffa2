// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ImranJeferly/teletebib/pkg/slug"
)

/*
TestFrom covers the sanitization pipeline: lowercasing, whitespace
hyphenation, stripping of punctuation, and accent folding.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation_stripped", "Telemedicine: Healthcare of the Future!", "telemedicine-healthcare-of-the-future"},
		{"whitespace_collapsed", "a   b\t c", "a-b-c"},
		{"accents_folded", "Café au Lait", "cafe-au-lait"},
		{"azerbaijani_folded", "Sağlamlıq üçün gələcək", "saglamliq-ucun-gelecek"},
		{"existing_hyphens_kept", "pre-existing-slug", "pre-existing-slug"},
		{"leading_trailing_trimmed", "  edges  ", "edges"},
		{"digits_kept", "Top 10 Tips", "top-10-tips"},
		{"empty", "", ""},
		{"only_punctuation", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
