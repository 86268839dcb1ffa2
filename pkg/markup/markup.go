// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

/*
Package markup implements the authoring markup used by blog content.

The format is a deliberately minimal, hand-rolled subset — four marker forms
plus a paragraph separator:

  - **bold** and *italic* inline spans (bold binds first, the two compose)
  - "• " bullet lines, grouped into lists per paragraph
  - <center> ... </center> centered paragraphs
  - "\n\n" paragraph breaks

It is a symmetric codec: the encoder side ([WrapSelection], [InsertBullet],
[OnEnterKey], ...) mutates a plain-text buffer the way the admin editor's
toolbar does, and the decoder side ([Render]) turns a stored buffer back into
the display blocks the reader sees. There is no escape mechanism — a literal
asterisk or bullet character is indistinguishable from a marker. That is an
accepted property of the format, not a defect.
*/
package markup

// # Block Structure

// BlockKind discriminates the block variants produced by [Render].
type BlockKind string

const (
	// BlockParagraph is a regular flowing paragraph.
	BlockParagraph BlockKind = "paragraph"

	// BlockBullets is an unordered list assembled from "• " lines.
	BlockBullets BlockKind = "bullets"

	// BlockCentered is a paragraph wrapped in <center> tags.
	BlockCentered BlockKind = "centered"
)

// Block is one display unit of a rendered document.
//
// Exactly one of Spans/Items is populated depending on Kind:
// Paragraph and Centered blocks carry Spans, Bullets blocks carry Items
// (one span sequence per list item).
type Block struct {
	Kind  BlockKind
	Spans []Span
	Items [][]Span
}

// # Inline Structure

// Span is a run of text with uniform inline styling.
//
// Bold and italic compose: a span inside an italic segment of a bold
// segment carries both flags.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}
