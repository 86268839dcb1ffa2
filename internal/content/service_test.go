// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"context"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/pkg/pointer"
)

// memoryRepository is an in-memory Repository double for service tests.
type memoryRepository struct {
	posts map[string]*Post
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: map[string]*Post{}}
}

func (m *memoryRepository) sorted(filter Filter) []*Post {
	var out []*Post
	for _, p := range m.posts {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	all := m.sorted(filter)
	total := len(all)
	if offset >= total {
		return []*Post{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *memoryRepository) All(_ context.Context, filter Filter) ([]*Post, error) {
	return m.sorted(filter), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id string) (*Post, error) {
	if p, ok := m.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, apperr.NotFound("Post")
}

func (m *memoryRepository) FindBySlug(_ context.Context, slug string) (*Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (m *memoryRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) Create(_ context.Context, post *Post) error {
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *memoryRepository) Update(_ context.Context, post *Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return apperr.NotFound("Post")
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(m.posts, id)
	return nil
}

// recordingRemover records blob removals and optionally fails.
type recordingRemover struct {
	removed []string
	fail    bool
}

func (r *recordingRemover) Remove(_ context.Context, url string) error {
	r.removed = append(r.removed, url)
	if r.fail {
		return assert.AnError
	}
	return nil
}

func newTestService(repo Repository, blobs BlobRemover) *Service {
	return NewService(repo, blobs, slog.Default())
}

func validPost() *Post {
	return &Post{
		Title:    LocalizedText{Az: "Telemedisin gələcəkdir"},
		Excerpt:  LocalizedText{Az: "Qısa xülasə"},
		Category: LocalizedText{Az: "Sağlamlıq"},
		Author:   "Dr. Aysel Məmmədova",
		Sections: []Section{{
			Title:   LocalizedText{Az: "Giriş"},
			Content: LocalizedText{Az: "Telemedisin **sürətlə** inkişaf edir."},
		}},
	}
}

/*
TestService_CreatePost verifies identity, slug and default assignment.
*/
func TestService_CreatePost(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	post := validPost()
	require.NoError(t, service.CreatePost(context.Background(), post))

	assert.Len(t, post.ID, 36)
	assert.Equal(t, "telemedisin-gelecekdir", post.Slug)
	assert.Equal(t, "5 dəq", post.ReadTime)
	assert.Equal(t, StatusDraft, post.Status)
	assert.NotEmpty(t, post.Sections[0].ID)
}

/*
TestService_CreatePost_SlugCollision verifies that a second post with the
same title gets a timestamp-suffixed slug instead of failing.
*/
func TestService_CreatePost_SlugCollision(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	first := validPost()
	require.NoError(t, service.CreatePost(context.Background(), first))

	second := validPost()
	require.NoError(t, service.CreatePost(context.Background(), second))

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Regexp(t, `^telemedisin-gelecekdir-\d+$`, second.Slug)
}

/*
TestService_CreatePost_Validation exercises the trilingual authoring rules.
*/
func TestService_CreatePost_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Post)
		badField string
	}{
		{"missing_title", func(p *Post) { p.Title = LocalizedText{} }, FieldTitle},
		{"missing_excerpt", func(p *Post) { p.Excerpt = LocalizedText{} }, FieldExcerpt},
		{"missing_category", func(p *Post) { p.Category = LocalizedText{} }, FieldCategory},
		{"missing_author", func(p *Post) { p.Author = "" }, FieldAuthor},
		{"no_sections", func(p *Post) { p.Sections = nil }, FieldSections},
		{
			// Title in Russian but content in English only: no shared language.
			"section_language_mismatch",
			func(p *Post) {
				p.Sections = []Section{{
					Title:   LocalizedText{Ru: "Введение"},
					Content: LocalizedText{En: "Telehealth is growing."},
				}}
			},
			FieldSections,
		},
		{
			"invalid_cta",
			func(p *Post) {
				p.Sections[0].CTA = &CTAConfig{Kind: "banner", Position: CTAAfter}
			},
			FieldSections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			service := newTestService(repo, nil)

			post := validPost()
			tt.mutate(post)

			err := service.CreatePost(context.Background(), post)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.badField, ae.Details[0].Field)
		})
	}
}

/*
TestService_GetPublishedPost verifies that drafts are indistinguishable from
missing posts on the public surface.
*/
func TestService_GetPublishedPost(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	draft := validPost()
	require.NoError(t, service.CreatePost(context.Background(), draft))

	published := validPost()
	published.Title = LocalizedText{Az: "Onlayn resept"}
	published.Status = StatusPublished
	require.NoError(t, service.CreatePost(context.Background(), published))

	t.Run("draft_hidden_by_slug", func(t *testing.T) {
		_, err := service.GetPublishedPost(context.Background(), draft.Slug)
		assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
	})

	t.Run("draft_hidden_by_id", func(t *testing.T) {
		_, err := service.GetPublishedPost(context.Background(), draft.ID)
		assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
	})

	t.Run("published_by_slug", func(t *testing.T) {
		got, err := service.GetPublishedPost(context.Background(), published.Slug)
		require.NoError(t, err)
		assert.Equal(t, published.ID, got.ID)
		require.NotNil(t, got.PublishedAt)
	})

	t.Run("published_by_id", func(t *testing.T) {
		got, err := service.GetPublishedPost(context.Background(), published.ID)
		require.NoError(t, err)
		assert.Equal(t, published.Slug, got.Slug)
	})
}

/*
TestService_GetPost_SlugSameLengthAsUUID verifies that a post whose slug is
exactly as long as a UUID string stays reachable by its permalink.
*/
func TestService_GetPost_SlugSameLengthAsUUID(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	post := validPost()
	post.Title = LocalizedText{En: "How telemedicine improves care today"}
	post.Status = StatusPublished
	require.NoError(t, service.CreatePost(context.Background(), post))
	require.Len(t, post.Slug, 36)

	got, err := service.GetPublishedPost(context.Background(), post.Slug)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	// The raw id keeps working alongside the slug.
	got, err = service.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Slug, got.Slug)

	// A missing identifier that is neither a known slug nor a UUID is a
	// clean not-found.
	_, err = service.GetPost(context.Background(), "a-slug-that-was-never-created-anywhere")
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

/*
TestService_UpdatePost verifies partial merge semantics and slug immutability.
*/
func TestService_UpdatePost(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	post := validPost()
	require.NoError(t, service.CreatePost(context.Background(), post))
	originalSlug := post.Slug

	updated, err := service.UpdatePost(context.Background(), post.ID, &Post{
		Title:  LocalizedText{Az: "Tamamilə yeni başlıq", En: "A brand new title"},
		Author: "Dr. Orxan Quliyev",
	})
	require.NoError(t, err)

	assert.Equal(t, originalSlug, updated.Slug, "slug must never change on update")
	assert.Equal(t, "Dr. Orxan Quliyev", updated.Author)
	assert.Equal(t, "A brand new title", updated.Title.En)
	// Untouched fields survive the merge.
	assert.Equal(t, "Qısa xülasə", updated.Excerpt.Az)
}

/*
TestService_UpdatePost_Publish verifies the publish transition stamps
published_at exactly once.
*/
func TestService_UpdatePost_Publish(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	post := validPost()
	require.NoError(t, service.CreatePost(context.Background(), post))
	require.Nil(t, post.PublishedAt)

	published, err := service.UpdatePost(context.Background(), post.ID, &Post{Status: StatusPublished})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Re-publishing an already published post keeps the original stamp.
	again, err := service.UpdatePost(context.Background(), post.ID, &Post{Status: StatusPublished})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstStamp, *again.PublishedAt)
}

/*
TestService_UpdatePost_InvalidMerge verifies a post cannot be edited into an
invalid state.
*/
func TestService_UpdatePost_InvalidMerge(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	post := validPost()
	require.NoError(t, service.CreatePost(context.Background(), post))

	_, err := service.UpdatePost(context.Background(), post.ID, &Post{
		Sections: []Section{{Title: LocalizedText{Az: "Başlıqsız"}}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
}

/*
TestService_DeletePost verifies row removal and best-effort cover cleanup.
*/
func TestService_DeletePost(t *testing.T) {
	t.Run("removes_cover_blob", func(t *testing.T) {
		repo := newMemoryRepository()
		remover := &recordingRemover{}
		service := newTestService(repo, remover)

		post := validPost()
		cover := "http://localhost:8080/uploads/blog-images/temp/1-cover.jpg"
		post.CoverImageURL = pointer.To(cover)
		require.NoError(t, service.CreatePost(context.Background(), post))

		require.NoError(t, service.DeletePost(context.Background(), post.ID))
		assert.Equal(t, []string{cover}, remover.removed)

		_, err := service.GetPost(context.Background(), post.ID)
		assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
	})

	t.Run("blob_failure_is_swallowed", func(t *testing.T) {
		repo := newMemoryRepository()
		remover := &recordingRemover{fail: true}
		service := newTestService(repo, remover)

		post := validPost()
		post.CoverImageURL = pointer.To("http://localhost:8080/uploads/blog-images/temp/2-cover.jpg")
		require.NoError(t, service.CreatePost(context.Background(), post))

		assert.NoError(t, service.DeletePost(context.Background(), post.ID))
	})

	t.Run("missing_post", func(t *testing.T) {
		service := newTestService(newMemoryRepository(), nil)
		err := service.DeletePost(context.Background(), "00000000-0000-0000-0000-000000000000")
		assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
	})
}

/*
TestService_Search verifies the case-insensitive scan across every localized
field, including section bodies and the author name.
*/
func TestService_Search(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, nil)

	first := validPost()
	first.Status = StatusPublished
	require.NoError(t, service.CreatePost(context.Background(), first))

	second := validPost()
	second.Title = LocalizedText{Az: "Qan təzyiqi", En: "Blood pressure"}
	second.Author = "Dr. Leyla Əliyeva"
	second.Status = StatusPublished
	second.Sections = []Section{{
		Title:   LocalizedText{En: "Monitoring"},
		Content: LocalizedText{
			En: "Home monitoring devices are improving.",
			Ru: "Домашние приборы для измерения давления становятся точнее.",
		},
	}}
	require.NoError(t, service.CreatePost(context.Background(), second))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"title_en", "blood PRESSURE", 1},
		{"author", "leyla", 1},
		{"section_content", "monitoring devices", 1},
		{"section_content_ru", "измерения давления", 1},
		{"section_title_az", "giriş", 1},
		{"no_match", "kardiologiya", 0},
		{"blank_is_list_all", "   ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, total, err := service.ListPosts(context.Background(),
				Filter{Status: StatusPublished, Query: tt.query}, 20, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
			assert.Len(t, posts, tt.want)
		})
	}
}
