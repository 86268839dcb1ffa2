// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

// Package content implements the trilingual blog content domain.
//
// # Overview
//
// Posts are authored in Azerbaijani, Russian and English simultaneously.
// Every reader-facing text field is a [LocalizedText] holding one value per
// language; resolution falls back across languages so a partially translated
// post still renders. Section bodies carry the lightweight markup decoded by
// pkg/markup.
package content

import "time"

// # Languages

// Lang identifies one of the three supported content languages.
type Lang string

const (
	// LangAz is Azerbaijani, the primary authored language.
	LangAz Lang = "az"
	// LangRu is Russian.
	LangRu Lang = "ru"
	// LangEn is English.
	LangEn Lang = "en"
)

// Langs returns every supported language, primary first.
func Langs() []Lang {
	return []Lang{LangAz, LangRu, LangEn}
}

// ParseLang maps a raw string onto a supported [Lang], defaulting to [LangAz].
func ParseLang(s string) Lang {
	switch Lang(s) {
	case LangRu:
		return LangRu
	case LangEn:
		return LangEn
	default:
		return LangAz
	}
}

// # Localized Text

// LocalizedText holds one value of a text field per supported language.
//
// The zero value (all languages empty) is valid and renders as nothing.
type LocalizedText struct {
	Az string `json:"az"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

// Get returns the raw value for the given language without fallback.
func (t LocalizedText) Get(lang Lang) string {
	switch lang {
	case LangRu:
		return t.Ru
	case LangEn:
		return t.En
	default:
		return t.Az
	}
}

// Resolve returns the value for the requested language, falling back through
// the chain az → en → ru so a partially translated field still displays.
//
// It returns "" only when every language is empty.
func (t LocalizedText) Resolve(lang Lang) string {
	if v := t.Get(lang); v != "" {
		return v
	}
	for _, fallback := range []string{t.Az, t.En, t.Ru} {
		if fallback != "" {
			return fallback
		}
	}
	return ""
}

// HasAny reports whether at least one language carries a non-empty value.
func (t LocalizedText) HasAny() bool {
	return t.Az != "" || t.Ru != "" || t.En != ""
}

// Values returns the per-language values in declaration order (az, ru, en).
func (t LocalizedText) Values() []string {
	return []string{t.Az, t.Ru, t.En}
}

// # Call To Action

// CTAKind selects which signup call-to-action card a section displays.
type CTAKind string

const (
	// CTAPatient advertises the patient waitlist.
	CTAPatient CTAKind = "patient-cta"
	// CTADoctor advertises the doctor waitlist.
	CTADoctor CTAKind = "doctor-cta"
)

// CTAPosition places the card relative to the section body.
type CTAPosition string

const (
	CTABefore CTAPosition = "before"
	CTAAfter  CTAPosition = "after"
)

// CTAConfig attaches a single signup card to a section.
type CTAConfig struct {
	Kind     CTAKind     `json:"kind"`
	Position CTAPosition `json:"position"`
}

// Valid reports whether both the kind and the position carry allowed values.
func (c CTAConfig) Valid() bool {
	kindOK := c.Kind == CTAPatient || c.Kind == CTADoctor
	posOK := c.Position == CTABefore || c.Position == CTAAfter
	return kindOK && posOK
}

// # Sections

// Section is one titled body unit of a post, with an optional CTA card.
//
// IDs are assigned once at creation (from Unix milliseconds) and are stable
// across edits so the admin editor can track sections through reorders.
type Section struct {
	ID      string        `json:"id"`
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
	CTA     *CTAConfig    `json:"cta,omitempty"`
}

// Complete reports whether the section has a non-empty title AND a non-empty
// body in at least one common language. A section titled only in Russian but
// written only in English does not count.
func (s Section) Complete() bool {
	for _, lang := range Langs() {
		if s.Title.Get(lang) != "" && s.Content.Get(lang) != "" {
			return true
		}
	}
	return false
}

// # Lifecycle

// Status is the publication state of a post.
type Status string

const (
	// StatusDraft keeps the post visible to admins only.
	StatusDraft Status = "draft"
	// StatusPublished exposes the post on the public site.
	StatusPublished Status = "published"
)

// # Posts

// Post is a blog article as stored and served by the API.
type Post struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	Title         LocalizedText `json:"title"`
	Excerpt       LocalizedText `json:"excerpt"`
	Content       LocalizedText `json:"content"`
	Category      LocalizedText `json:"category"`
	Author        string        `json:"author"`
	ReadTime      string        `json:"read_time"`
	CoverImageURL *string       `json:"cover_image_url"`
	Sections      []Section     `json:"sections"`
	Status        Status        `json:"status"`
	PublishedAt   *time.Time    `json:"published_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Filter holds the parameters for a post listing.
type Filter struct {
	// Status restricts the listing to one lifecycle state; empty means all.
	Status Status
	// Query is a free-text search term; matching happens in the service.
	Query string
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldExcerpt  = "excerpt"
	FieldContent  = "content"
	FieldCategory = "category"
	FieldAuthor   = "author"
	FieldSections = "sections"
	FieldStatus   = "status"
	FieldSlug     = "slug"
)
