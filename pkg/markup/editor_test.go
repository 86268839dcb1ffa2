// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package markup_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ImranJeferly/teletebib/pkg/markup"
)

/*
TestWrapSelection_Bold verifies marker insertion and that the new selection
spans exactly the originally selected text.
*/
func TestWrapSelection_Bold(t *testing.T) {
	buffer, sel := markup.WrapSelection("make this bold", markup.Selection{Start: 5, End: 9}, "**", "**")

	assert.Equal(t, "make **this** bold", buffer)
	assert.Equal(t, markup.Selection{Start: 7, End: 11}, sel)
	assert.Equal(t, "this", buffer[sel.Start:sel.End])
}

/*
TestWrapSelection_CollapsedCursor checks that wrapping an empty selection
drops the cursor between the markers, ready for typing.
*/
func TestWrapSelection_CollapsedCursor(t *testing.T) {
	buffer, sel := markup.WrapSelection("ab", markup.Selection{Start: 1, End: 1}, "*", "*")

	assert.Equal(t, "a**b", buffer)
	assert.Equal(t, markup.Selection{Start: 2, End: 2}, sel)
}

/*
TestWrapSelection_MidRuneOffsets checks that offsets pointing into the middle
of a multi-byte character snap to the rune boundary instead of splitting it.
*/
func TestWrapSelection_MidRuneOffsets(t *testing.T) {
	// "ə" occupies bytes 1-2, so offset 2 lands mid-rune.
	buffer, sel := markup.WrapSelection("səhiyyə xidməti", markup.Selection{Start: 2, End: 2}, "**", "**")

	assert.True(t, utf8.ValidString(buffer))
	assert.Equal(t, "s****əhiyyə xidməti", buffer)
	assert.Equal(t, markup.Selection{Start: 3, End: 3}, sel)

	// A range with both ends mid-rune wraps the whole characters it touches.
	buffer, sel = markup.WrapSelection("qəbulə", markup.Selection{Start: 2, End: 7}, "*", "*")

	assert.True(t, utf8.ValidString(buffer))
	assert.Equal(t, "q*əbul*ə", buffer)
	assert.Equal(t, "əbul", buffer[sel.Start:sel.End])
}

/*
TestInsertBullet_ContextSensitivity exercises the fresh-line rule: a bare
marker at buffer start, after a newline, or on a blank line; a newline-first
marker mid-line.
*/
func TestInsertBullet_ContextSensitivity(t *testing.T) {
	tests := []struct {
		name       string
		buffer     string
		cursor     int
		wantBuffer string
		wantCursor int
	}{
		{"empty_buffer", "", 0, "• ", 4},
		{"after_newline", "line\n", 5, "line\n• ", 9},
		{"blank_current_line", "text\n   ", 8, "text\n   • ", 12},
		{"mid_line", "text", 4, "text\n• ", 9},
		{"mid_word", "ab", 1, "a\n• b", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer, sel := markup.InsertBullet(tt.buffer, markup.Selection{Start: tt.cursor, End: tt.cursor})
			assert.Equal(t, tt.wantBuffer, buffer)
			assert.Equal(t, tt.wantCursor, sel.Start)
			assert.Equal(t, sel.Start, sel.End)
		})
	}
}

/*
TestInsertParagraphBreak checks the separator the decoder splits on.
*/
func TestInsertParagraphBreak(t *testing.T) {
	buffer, sel := markup.InsertParagraphBreak("ab", markup.Selection{Start: 1, End: 1})

	assert.Equal(t, "a\n\nb", buffer)
	assert.Equal(t, 3, sel.Start)
}

/*
TestInsertCenterBlock verifies the selection ends up wrapped in center tags
on their own lines.
*/
func TestInsertCenterBlock(t *testing.T) {
	buffer, sel := markup.InsertCenterBlock("say hello now", markup.Selection{Start: 4, End: 9})

	assert.Equal(t, "say \n<center>\nhello\n</center>\n now", buffer)
	assert.Equal(t, "hello", buffer[sel.Start:sel.End])
}

/*
TestOnEnterKey_EmptyBulletRemoval: Enter on a bullet with no content deletes
the marker instead of inserting a newline.
*/
func TestOnEnterKey_EmptyBulletRemoval(t *testing.T) {
	buffer, cursor, handled := markup.OnEnterKey("• ", len("• "))

	assert.True(t, handled)
	assert.Equal(t, "", buffer)
	assert.Equal(t, 0, cursor)
}

/*
TestOnEnterKey_EmptyBulletMidDocument checks marker removal on a later line
leaves the rest of the document intact.
*/
func TestOnEnterKey_EmptyBulletMidDocument(t *testing.T) {
	input := "• first\n• "
	buffer, cursor, handled := markup.OnEnterKey(input, len(input))

	assert.True(t, handled)
	assert.Equal(t, "• first\n", buffer)
	assert.Equal(t, len("• first\n"), cursor)
}

/*
TestOnEnterKey_ListContinuation: Enter on a bullet with content suppresses
the default newline and opens the next bullet.
*/
func TestOnEnterKey_ListContinuation(t *testing.T) {
	input := "• first"
	buffer, cursor, handled := markup.OnEnterKey(input, len(input))

	assert.True(t, handled)
	assert.Equal(t, "• first\n• ", buffer)
	assert.Equal(t, len(buffer), cursor)
}

/*
TestOnEnterKey_NotIntercepted: on a plain line the event passes through for
default newline handling.
*/
func TestOnEnterKey_NotIntercepted(t *testing.T) {
	buffer, cursor, handled := markup.OnEnterKey("plain text", 10)

	assert.False(t, handled)
	assert.Equal(t, "plain text", buffer)
	assert.Equal(t, 10, cursor)
}

/*
TestEncoderDecoderAgreement drives the encoder operations the way the admin
toolbar does and confirms the decoder reads back the intended structure.
*/
func TestEncoderDecoderAgreement(t *testing.T) {
	buffer, sel := markup.InsertBullet("", markup.Selection{})
	buffer = buffer + "alma"
	sel = markup.Selection{Start: len(buffer), End: len(buffer)}

	buffer, cursor, handled := markup.OnEnterKey(buffer, sel.Start)
	assert.True(t, handled)
	buffer = buffer + "armud"

	_ = cursor
	blocks := markup.Render(buffer)
	assert.Len(t, blocks, 1)
	assert.Equal(t, markup.BlockBullets, blocks[0].Kind)
	assert.Len(t, blocks[0].Items, 2)
}
