// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImranJeferly/teletebib/pkg/markup"
)

/*
TestInline_PlainRoundTrip verifies that marker-free text passes through as a
single plain span.
*/
func TestInline_PlainRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "hello world"},
		{"azerbaijani", "Telemedisin uzaqdan tibbi xidmətdir"},
		{"russian", "Телемедицина — это дистанционная помощь"},
		{"with_single_newline", "first line\nsecond line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := markup.Inline(tt.input)
			require.Len(t, spans, 1)
			assert.Equal(t, markup.Span{Text: tt.input}, spans[0])
		})
	}
}

/*
TestInline_Bold checks bold segment extraction and surrounding plain text.
*/
func TestInline_Bold(t *testing.T) {
	spans := markup.Inline("before **bold** after")

	require.Len(t, spans, 3)
	assert.Equal(t, markup.Span{Text: "before "}, spans[0])
	assert.Equal(t, markup.Span{Text: "bold", Bold: true}, spans[1])
	assert.Equal(t, markup.Span{Text: " after"}, spans[2])
}

/*
TestInline_Italic checks single-asterisk italic extraction.
*/
func TestInline_Italic(t *testing.T) {
	spans := markup.Inline("an *italic* word")

	require.Len(t, spans, 3)
	assert.Equal(t, markup.Span{Text: "an "}, spans[0])
	assert.Equal(t, markup.Span{Text: "italic", Italic: true}, spans[1])
	assert.Equal(t, markup.Span{Text: " word"}, spans[2])
}

/*
TestInline_BoldItalicComposition verifies that an italic run inside a bold
segment carries both styles — bold wraps the italic, italic never cancels
bold.
*/
func TestInline_BoldItalicComposition(t *testing.T) {
	spans := markup.Inline("**a *b* c**")

	require.Len(t, spans, 3)
	assert.Equal(t, markup.Span{Text: "a ", Bold: true}, spans[0])
	assert.Equal(t, markup.Span{Text: "b", Bold: true, Italic: true}, spans[1])
	assert.Equal(t, markup.Span{Text: " c", Bold: true}, spans[2])
}

/*
TestInline_BoldBeforeItalicPrecedence confirms that bold pairs are located
before any italic marker is interpreted: in "*text**more**" the double pair
wins and the stray singles stay literal because they never pair up within
their remaining segments.
*/
func TestInline_BoldBeforeItalicPrecedence(t *testing.T) {
	spans := markup.Inline("*text**more**")

	require.Len(t, spans, 2)
	assert.Equal(t, markup.Span{Text: "*text"}, spans[0])
	assert.Equal(t, markup.Span{Text: "more", Bold: true}, spans[1])
}

/*
TestInline_UnpairedMarkersStayLiteral checks that lone markers render as
typed — the format has no escape mechanism.
*/
func TestInline_UnpairedMarkersStayLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone_single", "5 * 3 = 15"},
		{"lone_double_open", "**never closed"},
		{"empty_italic_pair", "a ** b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := markup.Inline(tt.input)
			var joined string
			for _, span := range spans {
				assert.False(t, span.Bold)
				joined += span.Text
			}
			assert.Equal(t, tt.input, joined)
		})
	}
}

/*
TestRender_Empty verifies the total-function guarantee for empty and blank
input.
*/
func TestRender_Empty(t *testing.T) {
	assert.Empty(t, markup.Render(""))
	assert.Empty(t, markup.Render("   \n\n \n  "))
}

/*
TestRender_BulletDetection covers the canonical three-item list.
*/
func TestRender_BulletDetection(t *testing.T) {
	blocks := markup.Render("• one\n• two\n• three")

	require.Len(t, blocks, 1)
	require.Equal(t, markup.BlockBullets, blocks[0].Kind)
	require.Len(t, blocks[0].Items, 3)

	for i, want := range []string{"one", "two", "three"} {
		require.Len(t, blocks[0].Items[i], 1)
		assert.Equal(t, want, blocks[0].Items[i][0].Text)
	}
}

/*
TestRender_BulletParagraphDropsStrayLines checks that non-bullet lines mixed
into a bullet paragraph are silently dropped.
*/
func TestRender_BulletParagraphDropsStrayLines(t *testing.T) {
	blocks := markup.Render("• kept\nstray line\n• also kept")

	require.Len(t, blocks, 1)
	require.Equal(t, markup.BlockBullets, blocks[0].Kind)
	require.Len(t, blocks[0].Items, 2)
	assert.Equal(t, "kept", blocks[0].Items[0][0].Text)
	assert.Equal(t, "also kept", blocks[0].Items[1][0].Text)
}

/*
TestRender_ParagraphCollapse ensures a blank paragraph candidate between two
breaks produces no output block.
*/
func TestRender_ParagraphCollapse(t *testing.T) {
	blocks := markup.Render("a\n\n\n\nb")

	require.Len(t, blocks, 2)
	assert.Equal(t, markup.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, "a", blocks[0].Spans[0].Text)
	assert.Equal(t, "b", blocks[1].Spans[0].Text)
}

/*
TestRender_CenterBlock verifies center-tag paragraphs become a single
Centered block of the inner text.
*/
func TestRender_CenterBlock(t *testing.T) {
	blocks := markup.Render("<center>\nHello\n</center>")

	require.Len(t, blocks, 1)
	assert.Equal(t, markup.BlockCentered, blocks[0].Kind)
	require.Len(t, blocks[0].Spans, 1)
	assert.Equal(t, "Hello", blocks[0].Spans[0].Text)
}

/*
TestRender_CenterBlockWithInlineFormatting checks the centered inner text
still goes through inline formatting.
*/
func TestRender_CenterBlockWithInlineFormatting(t *testing.T) {
	blocks := markup.Render("<center> **Qeyd** </center>")

	require.Len(t, blocks, 1)
	assert.Equal(t, markup.BlockCentered, blocks[0].Kind)
	require.Len(t, blocks[0].Spans, 1)
	assert.Equal(t, markup.Span{Text: "Qeyd", Bold: true}, blocks[0].Spans[0])
}

/*
TestRender_MixedDocument walks a realistic authored document through every
block kind in source order.
*/
func TestRender_MixedDocument(t *testing.T) {
	text := "Giriş mətni **vacib** sözlə.\n\n• birinci\n• ikinci\n\n<center>\nSon qeyd\n</center>\n\nYekun."

	blocks := markup.Render(text)
	require.Len(t, blocks, 4)

	assert.Equal(t, markup.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, markup.BlockBullets, blocks[1].Kind)
	assert.Equal(t, markup.BlockCentered, blocks[2].Kind)
	assert.Equal(t, markup.BlockParagraph, blocks[3].Kind)
}

/*
TestRender_PlainParagraphKeepsInnerNewlines confirms single newlines inside
a plain paragraph are inert whitespace rather than line breaks.
*/
func TestRender_PlainParagraphKeepsInnerNewlines(t *testing.T) {
	blocks := markup.Render("line one\nline two")

	require.Len(t, blocks, 1)
	require.Equal(t, markup.BlockParagraph, blocks[0].Kind)
	require.Len(t, blocks[0].Spans, 1)
	assert.Equal(t, "line one\nline two", blocks[0].Spans[0].Text)
}

/*
TestHTML_Serialization spot-checks the HTML writer over each block kind and
escaping of user text.
*/
func TestHTML_Serialization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraph", "hello", "<p>hello</p>"},
		{"bold_italic", "**a *b* c**", "<p><strong>a </strong><strong><em>b</em></strong><strong> c</strong></p>"},
		{"bullets", "• one\n• two", "<ul><li>one</li><li>two</li></ul>"},
		{"centered", "<center>mid</center>", `<div class="text-center">mid</div>`},
		{"escaping", "a < b & c", "<p>a &lt; b &amp; c</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.HTML(tt.input))
		})
	}
}
