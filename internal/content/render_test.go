// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImranJeferly/teletebib/pkg/markup"
)

/*
TestLocalizedText_Resolve covers the az → en → ru fallback chain.
*/
func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name string
		text LocalizedText
		lang Lang
		want string
	}{
		{"exact_match", LocalizedText{Az: "salam", Ru: "привет", En: "hello"}, LangRu, "привет"},
		{"fallback_to_az", LocalizedText{Az: "salam"}, LangEn, "salam"},
		{"fallback_to_en", LocalizedText{En: "hello"}, LangRu, "hello"},
		{"fallback_to_ru", LocalizedText{Ru: "привет"}, LangAz, "привет"},
		{"all_empty", LocalizedText{}, LangAz, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.lang))
		})
	}
}

/*
TestRenderSection verifies fragment ordering and that a configured CTA
appears exactly once, in its configured position.
*/
func TestRenderSection(t *testing.T) {
	section := Section{
		ID:      "1700000000000",
		Title:   LocalizedText{Az: "Giriş", En: "Introduction"},
		Content: LocalizedText{Az: "Birinci abzas.\n\nİkinci abzas."},
	}

	t.Run("no_cta", func(t *testing.T) {
		fragments := RenderSection(section, LangAz)
		require.Len(t, fragments, 2)
		assert.Equal(t, FragmentHeading, fragments[0].Kind)
		assert.Equal(t, "Giriş", fragments[0].Heading)
		assert.Equal(t, FragmentBody, fragments[1].Kind)
		assert.Len(t, fragments[1].Blocks, 2)
	})

	t.Run("cta_before", func(t *testing.T) {
		withCTA := section
		withCTA.CTA = &CTAConfig{Kind: CTAPatient, Position: CTABefore}

		fragments := RenderSection(withCTA, LangAz)
		require.Len(t, fragments, 3)
		assert.Equal(t, FragmentCTA, fragments[0].Kind)
		assert.Equal(t, CTAPatient, fragments[0].CTA.Kind)
		assert.Equal(t, FragmentHeading, fragments[1].Kind)
		assert.Equal(t, FragmentBody, fragments[2].Kind)
	})

	t.Run("cta_after", func(t *testing.T) {
		withCTA := section
		withCTA.CTA = &CTAConfig{Kind: CTADoctor, Position: CTAAfter}

		fragments := RenderSection(withCTA, LangAz)
		require.Len(t, fragments, 3)
		assert.Equal(t, FragmentCTA, fragments[2].Kind)
		assert.Equal(t, CTADoctor, fragments[2].CTA.Kind)

		// Exactly one CTA fragment regardless of position.
		count := 0
		for _, f := range fragments {
			if f.Kind == FragmentCTA {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("language_resolution", func(t *testing.T) {
		fragments := RenderSection(section, LangEn)
		require.NotEmpty(t, fragments)
		assert.Equal(t, "Introduction", fragments[0].Heading)
		// Body falls back to az since no English body exists.
		assert.Equal(t, FragmentBody, fragments[1].Kind)
	})

	t.Run("empty_section", func(t *testing.T) {
		assert.Empty(t, RenderSection(Section{ID: "x"}, LangAz))
	})
}

/*
TestRenderPost verifies whole-post resolution, including markup decoding
inside section bodies.
*/
func TestRenderPost(t *testing.T) {
	post := &Post{
		ID:       "0192f7a0-0000-7000-8000-000000000000",
		Slug:     "telemedisin",
		Title:    LocalizedText{Az: "Telemedisin", En: "Telehealth"},
		Excerpt:  LocalizedText{Az: "Xülasə"},
		Category: LocalizedText{Az: "Sağlamlıq", En: "Health"},
		Author:   "Dr. Aysel Məmmədova",
		ReadTime: "5 dəq",
		Sections: []Section{{
			ID:      "1700000000001",
			Title:   LocalizedText{En: "Bullets"},
			Content: LocalizedText{En: "• **first**\n• second"},
		}},
	}

	rendered := RenderPost(post, LangEn)

	assert.Equal(t, "Telehealth", rendered.Title)
	assert.Equal(t, "Xülasə", rendered.Excerpt, "missing English excerpt falls back to az")
	assert.Equal(t, "Health", rendered.Category)
	require.Len(t, rendered.Sections, 1)

	fragments := rendered.Sections[0].Fragments
	require.Len(t, fragments, 2)

	body := fragments[1]
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, markup.BlockBullets, body.Blocks[0].Kind)
	require.Len(t, body.Blocks[0].Items, 2)
	assert.True(t, body.Blocks[0].Items[0][0].Bold)
}
