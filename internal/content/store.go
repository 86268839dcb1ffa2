// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import "context"

// Repository is the persistence boundary for blog posts.
type Repository interface {
	// List returns one page of posts, newest created_at first, plus the
	// total count matching the filter's status.
	List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error)

	// All returns every post matching the filter's status, newest first.
	// It backs the in-service full-text scan.
	All(context context.Context, filter Filter) ([]*Post, error)

	FindByID(context context.Context, id string) (*Post, error)
	FindBySlug(context context.Context, slug string) (*Post, error)

	// SlugExists reports whether any post already owns the slug.
	SlugExists(context context.Context, slug string) (bool, error)

	Create(context context.Context, post *Post) error
	Update(context context.Context, post *Post) error
	Delete(context context.Context, id string) error
}
