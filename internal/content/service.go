// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/internal/platform/constants"
	"github.com/ImranJeferly/teletebib/internal/platform/validate"
	"github.com/ImranJeferly/teletebib/pkg/slug"
	"github.com/ImranJeferly/teletebib/pkg/uuidv7"
)

// # Service Layer

// BlobRemover deletes a stored blob by its public URL.
//
// # Why an interface?
//
// The service only needs best-effort cover cleanup on post deletion.
// Depending on this single method keeps the media storage implementation
// swappable and the service testable without a filesystem.
type BlobRemover interface {
	Remove(context context.Context, url string) error
}

// Service orchestrates the business logic for the blog content catalogue.
// It owns validation, slug assignment and the full-text search scan.
type Service struct {
	repo   Repository
	blobs  BlobRemover
	logger *slog.Logger
}

// NewService constructs a new [Service].
//
// blobs may be nil, in which case deleted posts leave their cover images behind.
func NewService(repo Repository, blobs BlobRemover, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}

// # Post Lookups

/*
ListPosts retrieves a paginated collection of posts.

Description: When the filter carries a search query the service scans every
localized field in memory (the catalogue is small and the fields are JSONB);
otherwise the status filter and pagination are pushed down to the repository.

Parameters:
  - context: context.Context
  - filter: Filter (status restriction and optional search query)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Post: Slice of matching posts, newest first
  - int: Total count matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListPosts(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	if strings.TrimSpace(filter.Query) != "" {
		return service.search(context, filter, limit, offset)
	}
	return service.repo.List(context, filter, limit, offset)
}

/*
GetPost fetches a single post by SEO slug or UUID, regardless of status.

Description: Permalinks address posts by slug, so the slug lookup runs
first. A slug can be any length — including the 36 characters of a UUID
string — so the shape of the identifier alone cannot pick the strategy.
When no slug matches and the identifier parses as a UUID, the lookup
falls back to the primary key for clients addressing by raw id.

Parameters:
  - context: context.Context
  - identifier: string (Slug or UUID)

Returns:
  - *Post: The hydrated domain entity
  - error: ErrNotFound if no match is found
*/
func (service *Service) GetPost(context context.Context, identifier string) (*Post, error) {

	// Slug resolution first
	post, err := service.repo.FindBySlug(context, identifier)
	if err == nil {
		return post, nil
	}
	if !apperr.IsCode(err, "NOT_FOUND") {
		return nil, err
	}

	// Raw id fallback. The format check keeps arbitrary missing slugs away
	// from the UUID column, where they would fail as a syntax error instead
	// of a clean not-found.
	if uuid.Validate(identifier) == nil {
		return service.repo.FindByID(context, identifier)
	}

	return nil, apperr.NotFound("Post")
}

/*
GetPublishedPost fetches a single post by UUID or slug for the public site.

Description: Identical to [Service.GetPost] but drafts are indistinguishable
from missing posts — public readers must never learn a draft slug exists.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Post: The published post
  - error: ErrNotFound for missing posts AND drafts
*/
func (service *Service) GetPublishedPost(context context.Context, identifier string) (*Post, error) {
	post, err := service.GetPost(context, identifier)
	if err != nil {
		return nil, err
	}

	if post.Status != StatusPublished {
		return nil, apperr.NotFound("Post")
	}

	return post, nil
}

// # Post Management

/*
CreatePost initialises a new blog post.

Description: Performs deep business validation on the trilingual metadata,
generates a stable UUID v7 identity and a slug derived from the
primary-language title, and assigns stable IDs to any new sections.

Slug collisions (identical titles) are resolved by appending the current
Unix-millisecond timestamp, so slugs stay unique across the whole catalogue.

Parameters:
  - context: context.Context
  - post: *Post (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreatePost(context context.Context, post *Post) error {

	// Trilingual attribute validation
	if err := validatePost(post); err != nil {
		return err
	}

	// Identity generation
	if post.ID == "" {
		post.ID = uuidv7.New()
	}

	// Editorial defaults
	if strings.TrimSpace(post.ReadTime) == "" {
		post.ReadTime = constants.DefaultReadTime
	}
	if post.Status == "" {
		post.Status = StatusDraft
	}
	if post.Status == StatusPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	assignSectionIDs(post.Sections)

	// Slug generation with collision suffix
	if post.Slug == "" {
		derived, err := service.uniqueSlug(context, post.Title.Resolve(LangAz))
		if err != nil {
			return err
		}
		post.Slug = derived
	}

	// Persistence via Repository
	if err := service.repo.Create(context, post); err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
	)

	return nil
}

/*
UpdatePost applies modifications to an existing post.

Description: Supports partial updates. Populated fields in the input entity
overwrite existing values; the slug and creation timestamp are immutable.
The merged entity is re-validated against the same rules as creation so a
post can never be edited into an invalid state.

Parameters:
  - context: context.Context
  - id: string (UUID of the post to modify)
  - input: *Post (Updated attributes; zero-valued fields are left unchanged)

Returns:
  - *Post: The merged, persisted entity
  - error: Validation or persistence errors
*/
func (service *Service) UpdatePost(context context.Context, id string, input *Post) (*Post, error) {

	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// ── Merge populated fields ───────────────────────────────────────────
	if input.Title.HasAny() {
		post.Title = input.Title
	}
	if input.Excerpt.HasAny() {
		post.Excerpt = input.Excerpt
	}
	if input.Content.HasAny() {
		post.Content = input.Content
	}
	if input.Category.HasAny() {
		post.Category = input.Category
	}
	if input.Author != "" {
		post.Author = input.Author
	}
	if input.ReadTime != "" {
		post.ReadTime = input.ReadTime
	}
	if input.CoverImageURL != nil {
		post.CoverImageURL = input.CoverImageURL
	}
	if input.Sections != nil {
		post.Sections = input.Sections
		assignSectionIDs(post.Sections)
	}

	// ── Lifecycle transition ─────────────────────────────────────────────
	if input.Status != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldStatus, string(input.Status),
			string(StatusDraft),
			string(StatusPublished),
		)
		if err := validator.Err(); err != nil {
			return nil, err
		}

		if input.Status == StatusPublished && post.Status != StatusPublished {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.Status = input.Status
	}

	// Re-validate the merged entity
	if err := validatePost(post); err != nil {
		return nil, err
	}

	// Execute storage update
	if err := service.repo.Update(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.String("post_id", post.ID))

	return post, nil
}

/*
DeletePost removes a post and, best effort, its stored cover image.

Description: The database row is the source of truth; blob cleanup failures
are logged and swallowed so a missing file can never block deletion.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Persistence error if row removal fails
*/
func (service *Service) DeletePost(context context.Context, id string) error {

	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	// Best-effort cover cleanup
	if service.blobs != nil && post.CoverImageURL != nil && *post.CoverImageURL != "" {
		if err := service.blobs.Remove(context, *post.CoverImageURL); err != nil {
			service.logger.Warn("cover_image_cleanup_failed",
				slog.String("post_id", id),
				slog.String("url", *post.CoverImageURL),
				slog.String("error", err.Error()),
			)
		}
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))

	return nil
}

// # Search

// search scans every localized field of every matching post for the query,
// case-insensitively, and paginates the hits in memory.
func (service *Service) search(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	posts, err := service.repo.All(context, filter)
	if err != nil {
		return nil, 0, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Query))

	var hits []*Post
	for _, post := range posts {
		if matchesQuery(post, needle) {
			hits = append(hits, post)
		}
	}

	total := len(hits)

	// In-memory pagination over the hit list
	if offset >= total {
		return []*Post{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return hits[offset:end], total, nil
}

// matchesQuery reports whether any localized field of the post contains the
// lowercased needle. Section titles and bodies count in every language.
func matchesQuery(post *Post, needle string) bool {
	if needle == "" {
		return true
	}

	fields := []string{post.Author}
	fields = append(fields, post.Title.Values()...)
	fields = append(fields, post.Excerpt.Values()...)
	fields = append(fields, post.Content.Values()...)
	fields = append(fields, post.Category.Values()...)

	for _, section := range post.Sections {
		fields = append(fields, section.Title.Values()...)
		fields = append(fields, section.Content.Values()...)
	}

	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// # Internal Helpers

// validatePost enforces the authoring rules shared by creation and update:
// at least one language each for title, excerpt and category; a named
// author; and at least one section complete in a single language.
func validatePost(post *Post) error {
	validator := &validate.Validator{}

	validator.Custom(FieldTitle, !post.Title.HasAny(), "At least one language is required")
	validator.Custom(FieldExcerpt, !post.Excerpt.HasAny(), "At least one language is required")
	validator.Custom(FieldCategory, !post.Category.HasAny(), "At least one language is required")
	validator.Required(FieldAuthor, post.Author)

	complete := false
	for _, section := range post.Sections {
		if section.Complete() {
			complete = true
			break
		}
	}
	validator.Custom(FieldSections, !complete,
		"At least one section needs a title and content in the same language")

	for _, section := range post.Sections {
		if section.CTA != nil && !section.CTA.Valid() {
			validator.Custom(FieldSections, true, "Invalid CTA configuration")
			break
		}
	}

	return validator.Err()
}

// uniqueSlug derives a slug from the title and disambiguates collisions by
// appending the current Unix-millisecond timestamp.
func (service *Service) uniqueSlug(context context.Context, title string) (string, error) {
	base := slug.From(title)
	if base == "" {
		base = "post"
	}

	taken, err := service.repo.SlugExists(context, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli()), nil
}

// assignSectionIDs gives every section without an ID a stable one derived
// from Unix milliseconds. Existing IDs are never reassigned.
func assignSectionIDs(sections []Section) {
	base := time.Now().UnixMilli()
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = fmt.Sprintf("%d", base+int64(i))
		}
	}
}
