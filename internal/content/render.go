// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"github.com/ImranJeferly/teletebib/pkg/markup"
	"github.com/ImranJeferly/teletebib/pkg/slice"
)

// # Rendered View
//
// The public site can ask for a post pre-resolved to one language with the
// section markup already decoded and CTA cards slotted into position. This
// keeps the reading page a dumb renderer of an ordered fragment list.

// FragmentKind discriminates the entries of a rendered section.
type FragmentKind string

const (
	// FragmentCTA is a signup call-to-action card.
	FragmentCTA FragmentKind = "cta"
	// FragmentHeading is the section's resolved title.
	FragmentHeading FragmentKind = "heading"
	// FragmentBody is the section's decoded markup body.
	FragmentBody FragmentKind = "body"
)

// Fragment is one ordered element of a rendered section. Exactly one of
// CTA, Heading or Blocks is populated, matching Kind.
type Fragment struct {
	Kind    FragmentKind   `json:"kind"`
	CTA     *CTAConfig     `json:"cta,omitempty"`
	Heading string         `json:"heading,omitempty"`
	Blocks  []markup.Block `json:"blocks,omitempty"`
}

// RenderedSection is one section resolved to a single language.
type RenderedSection struct {
	ID        string     `json:"id"`
	Fragments []Fragment `json:"fragments"`
}

// RenderedPost is a post fully resolved to one language for display.
type RenderedPost struct {
	ID            string            `json:"id"`
	Slug          string            `json:"slug"`
	Lang          Lang              `json:"lang"`
	Title         string            `json:"title"`
	Excerpt       string            `json:"excerpt"`
	Category      string            `json:"category"`
	Author        string            `json:"author"`
	ReadTime      string            `json:"read_time"`
	CoverImageURL *string           `json:"cover_image_url"`
	Sections      []RenderedSection `json:"sections"`
}

// RenderSection resolves one section to the given language and returns its
// ordered fragments: an optional CTA card (position "before"), the heading,
// the decoded body blocks, then an optional CTA card (position "after").
//
// A section configured with a CTA emits exactly one card, never two.
func RenderSection(section Section, lang Lang) []Fragment {
	var fragments []Fragment

	if section.CTA != nil && section.CTA.Position == CTABefore {
		fragments = append(fragments, Fragment{Kind: FragmentCTA, CTA: section.CTA})
	}

	if heading := section.Title.Resolve(lang); heading != "" {
		fragments = append(fragments, Fragment{Kind: FragmentHeading, Heading: heading})
	}

	if body := section.Content.Resolve(lang); body != "" {
		fragments = append(fragments, Fragment{Kind: FragmentBody, Blocks: markup.Render(body)})
	}

	if section.CTA != nil && section.CTA.Position == CTAAfter {
		fragments = append(fragments, Fragment{Kind: FragmentCTA, CTA: section.CTA})
	}

	return fragments
}

// RenderPost resolves a whole post to one language.
func RenderPost(post *Post, lang Lang) *RenderedPost {
	rendered := &RenderedPost{
		ID:            post.ID,
		Slug:          post.Slug,
		Lang:          lang,
		Title:         post.Title.Resolve(lang),
		Excerpt:       post.Excerpt.Resolve(lang),
		Category:      post.Category.Resolve(lang),
		Author:        post.Author,
		ReadTime:      post.ReadTime,
		CoverImageURL: post.CoverImageURL,
	}

	rendered.Sections = slice.Map(post.Sections, func(section Section) RenderedSection {
		return RenderedSection{
			ID:        section.ID,
			Fragments: RenderSection(section, lang),
		}
	})

	return rendered
}
