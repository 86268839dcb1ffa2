// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package markup

import (
	"regexp"
	"strings"
)

const bulletMarker = "• "

var (
	// reCentered matches a whole trimmed paragraph wrapped in center tags.
	// The inner group cannot span newlines other than those eaten by \s*.
	reCentered = regexp.MustCompile(`^<center>\s*(.*?)\s*</center>$`)

	// reBold locates **bold** segments. Applied before italics so that a
	// double marker is never consumed as two singles.
	reBold = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// reItalic locates *italic* segments with at least one non-asterisk
	// character inside.
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)

	// reBulletStrip removes the leading bullet marker and any whitespace
	// surrounding it from a list line.
	reBulletStrip = regexp.MustCompile(`^\s*•\s*`)
)

// # Decoder

// Render converts a stored markup buffer into its ordered display blocks.
//
// The function is pure and total: it never fails, and empty or
// all-whitespace input yields an empty slice.
//
// # Algorithm
//
//  1. Split on "\n\n" into paragraph candidates; blank candidates are
//     dropped (decorative double blank lines collapse to nothing).
//  2. A trimmed candidate matching <center>...</center> becomes a Centered
//     block of the inline-formatted inner text.
//  3. Otherwise, if any line of the candidate starts with "• " (after
//     trimming), the whole candidate is a bullet list: only bullet lines
//     contribute items, anything else in the same candidate is dropped.
//  4. Otherwise the candidate is a plain paragraph. Single newlines inside
//     it are inert whitespace, not line breaks.
func Render(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	for _, candidate := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}

		if match := reCentered.FindStringSubmatch(trimmed); match != nil {
			blocks = append(blocks, Block{Kind: BlockCentered, Spans: Inline(match[1])})
			continue
		}

		lines := strings.Split(candidate, "\n")
		if hasBulletLine(lines) {
			blocks = append(blocks, bulletBlock(lines))
			continue
		}

		blocks = append(blocks, Block{Kind: BlockParagraph, Spans: Inline(candidate)})
	}

	return blocks
}

// hasBulletLine reports whether any trimmed line carries the bullet marker.
func hasBulletLine(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), bulletMarker) {
			return true
		}
	}
	return false
}

// bulletBlock collects the bullet lines of a paragraph into a list block.
// Non-bullet lines mixed into the candidate are silently dropped; the
// encoder never produces such paragraphs in normal use.
func bulletBlock(lines []string) Block {
	var items [][]Span
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), bulletMarker) {
			continue
		}
		items = append(items, Inline(reBulletStrip.ReplaceAllString(line, "")))
	}
	return Block{Kind: BlockBullets, Items: items}
}

// # Inline Formatting

// Inline parses the inline markers of a text run into styled spans.
//
// Precedence is strictly bold first, then italic: every **...** pair is
// located before any single asterisk is interpreted, so stray singles left
// over after bold extraction stay literal unless they pair up within their
// own segment. Empty runs produce no span.
func Inline(text string) []Span {
	var spans []Span
	appendSegment := func(segment string, bold bool) {
		spans = append(spans, italicSpans(segment, bold)...)
	}

	last := 0
	for _, loc := range reBold.FindAllStringIndex(text, -1) {
		appendSegment(text[last:loc[0]], false)
		appendSegment(text[loc[0]+2:loc[1]-2], true)
		last = loc[1]
	}
	appendSegment(text[last:], false)

	return spans
}

// italicSpans splits one bold-or-plain segment on single-asterisk pairs.
// Italic inherits the enclosing bold flag — italic never cancels bold.
func italicSpans(segment string, bold bool) []Span {
	var spans []Span
	emit := func(text string, italic bool) {
		if text == "" {
			return
		}
		spans = append(spans, Span{Text: text, Bold: bold, Italic: italic})
	}

	last := 0
	for _, loc := range reItalic.FindAllStringIndex(segment, -1) {
		emit(segment[last:loc[0]], false)
		emit(segment[loc[0]+1:loc[1]-1], true)
		last = loc[1]
	}
	emit(segment[last:], false)

	return spans
}
