// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the permalink identifiers for blog posts (e.g.,
// "telemedisin-gelecek-sehiyye"). This package handles normalization,
// accent removal, and character sanitization; uniqueness and collision
// suffixes are the content service's concern.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// azerbaijani maps the letters that NFD decomposition cannot fold:
// schwa and dotless i have no combining-mark form.
var azerbaijani = strings.NewReplacer(
	"ə", "e", "Ə", "E",
	"ı", "i", "İ", "I",
)

var (
	// whitespace collapses any whitespace run into a single hyphen.
	whitespace = regexp.MustCompile(`\s+`)
	// disallowed matches anything that is not a lowercase alphanumeric or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Transliterates Azerbaijani letters that have no decomposed form (ə, ı).
// 2. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 3. Removes combining marks (accents: ç, ş, ğ, ö, ü all fold here).
// 4. Converts to lowercase.
// 5. Collapses whitespace runs into single hyphens.
// 6. Strips every remaining character outside [a-z0-9-].
// 7. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Transliterate the non-decomposable letters
	result := azerbaijani.Replace(s)

	// 2. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ = transform.String(t, result)

	// 3. Lowercase
	result = strings.ToLower(result)

	// 4. Whitespace becomes hyphenation
	result = whitespace.ReplaceAllString(result, "-")

	// 5. Anything else non-alphanumeric is stripped, not hyphenated
	result = disallowed.ReplaceAllString(result, "")

	// 6. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
