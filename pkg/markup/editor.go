// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package markup

import (
	"strings"
	"unicode/utf8"
)

// # Encoder

// Selection is a half-open [Start, End) byte range inside an editor buffer.
// Offsets are byte indices into the UTF-8 buffer, not code-point or UTF-16
// counts — clients measuring in other units convert before calling. A
// collapsed selection (Start == End) is a plain cursor.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// clamp constrains the selection to the bounds of buffer, normalizes an
// inverted range, and snaps both offsets down to rune boundaries so a
// misreported cursor can never split a multi-byte character.
func (s Selection) clamp(buffer string) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	if s.End > len(buffer) {
		s.End = len(buffer)
	}
	if s.Start > len(buffer) {
		s.Start = len(buffer)
	}
	s.Start = snapToRuneStart(buffer, s.Start)
	s.End = snapToRuneStart(buffer, s.End)
	return s
}

// snapToRuneStart moves a byte offset down to the start of the rune it
// points into. Offsets at the buffer ends are already boundaries.
func snapToRuneStart(buffer string, offset int) int {
	for offset > 0 && offset < len(buffer) && !utf8.RuneStart(buffer[offset]) {
		offset--
	}
	return offset
}

// WrapSelection inserts before/after markers around the selected text.
//
// The returned selection spans exactly the originally selected text, now
// surrounded by the markers, so repeated toolbar clicks keep operating on
// the same words. Bold is WrapSelection(.., "**", "**"), italic
// WrapSelection(.., "*", "*").
func WrapSelection(buffer string, sel Selection, before, after string) (string, Selection) {
	sel = sel.clamp(buffer)
	selected := buffer[sel.Start:sel.End]

	next := buffer[:sel.Start] + before + selected + after + buffer[sel.End:]
	start := sel.Start + len(before)

	return next, Selection{Start: start, End: start + len(selected)}
}

// InsertBullet inserts a bullet marker at the cursor.
//
// The insertion is context-sensitive on "are we already at a fresh line":
// at buffer start, immediately after a newline, or on a line that is empty
// or whitespace, the bare marker is inserted; anywhere else a newline is
// opened first so the bullet starts its own line.
func InsertBullet(buffer string, sel Selection) (string, Selection) {
	sel = sel.clamp(buffer)
	if atFreshLine(buffer, sel.Start) {
		return WrapSelection(buffer, sel, bulletMarker, "")
	}
	return WrapSelection(buffer, sel, "\n"+bulletMarker, "")
}

// InsertParagraphBreak inserts the "\n\n" paragraph separator understood by
// [Render] at the cursor.
func InsertParagraphBreak(buffer string, sel Selection) (string, Selection) {
	return WrapSelection(buffer, sel, "\n\n", "")
}

// InsertCenterBlock wraps the selection in center tags, each on its own
// line so the decoder sees the tags as one paragraph candidate.
func InsertCenterBlock(buffer string, sel Selection) (string, Selection) {
	return WrapSelection(buffer, sel, "\n<center>\n", "\n</center>\n")
}

// OnEnterKey applies the editor's special-cased Enter behavior at cursor.
//
// Three outcomes:
//
//   - The current line is an empty bullet (trims to "•" alone): the author
//     is abandoning the list. The marker is deleted, no newline is inserted,
//     and the cursor lands where the marker was.
//   - The current line is a bullet with content: the list continues — the
//     default newline is replaced by "\n• ".
//   - Anything else: the event is not intercepted (handled == false, buffer
//     and cursor returned unchanged) and the caller applies its default
//     newline behavior.
func OnEnterKey(buffer string, cursor int) (next string, nextCursor int, handled bool) {
	sel := Selection{Start: cursor, End: cursor}.clamp(buffer)
	cursor = sel.Start

	line := currentLine(buffer, cursor)
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == strings.TrimSpace(bulletMarker):
		// Abandoned empty bullet: remove the marker instead of breaking the line.
		head := buffer[:cursor]
		if strings.HasSuffix(head, bulletMarker) {
			head = head[:len(head)-len(bulletMarker)]
		} else if strings.HasSuffix(head, strings.TrimSpace(bulletMarker)) {
			head = head[:len(head)-len(strings.TrimSpace(bulletMarker))]
		}
		return head + buffer[cursor:], len(head), true

	case strings.HasPrefix(trimmed, bulletMarker):
		next, nextSel := WrapSelection(buffer, sel, "\n"+bulletMarker, "")
		return next, nextSel.Start, true
	}

	return buffer, cursor, false
}

// atFreshLine reports whether position is at the start of a line or on a
// line containing only whitespace.
func atFreshLine(buffer string, position int) bool {
	if position == 0 || buffer[position-1] == '\n' {
		return true
	}
	return strings.TrimSpace(currentLine(buffer, position)) == ""
}

// currentLine returns the text between the last newline before position and
// position itself.
func currentLine(buffer string, position int) string {
	head := buffer[:position]
	if idx := strings.LastIndexByte(head, '\n'); idx >= 0 {
		return head[idx+1:]
	}
	return head
}
