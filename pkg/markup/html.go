// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package markup

import (
	"bytes"
	"html"
)

// # HTML Output

// RenderHTML writes the HTML representation of a markup buffer to buf.
//
// It is a thin serialization of [Render]'s block sequence; all user text is
// HTML-escaped.
func RenderHTML(buf *bytes.Buffer, text string) {
	for _, block := range Render(text) {
		writeBlockHTML(buf, block)
	}
}

// HTML returns the HTML representation of a markup buffer as a string.
func HTML(text string) string {
	var buf bytes.Buffer
	RenderHTML(&buf, text)
	return buf.String()
}

func writeBlockHTML(buf *bytes.Buffer, block Block) {
	switch block.Kind {
	case BlockCentered:
		buf.WriteString(`<div class="text-center">`)
		writeSpansHTML(buf, block.Spans)
		buf.WriteString("</div>")
	case BlockBullets:
		buf.WriteString("<ul>")
		for _, item := range block.Items {
			buf.WriteString("<li>")
			writeSpansHTML(buf, item)
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
	default:
		buf.WriteString("<p>")
		writeSpansHTML(buf, block.Spans)
		buf.WriteString("</p>")
	}
}

func writeSpansHTML(buf *bytes.Buffer, spans []Span) {
	for _, span := range spans {
		if span.Bold {
			buf.WriteString("<strong>")
		}
		if span.Italic {
			buf.WriteString("<em>")
		}
		buf.WriteString(html.EscapeString(span.Text))
		if span.Italic {
			buf.WriteString("</em>")
		}
		if span.Bold {
			buf.WriteString("</strong>")
		}
	}
}
