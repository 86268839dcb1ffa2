// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ImranJeferly/teletebib/internal/platform/database/schema"
	"github.com/ImranJeferly/teletebib/internal/platform/dberr"
)

// PostgresRepository persists posts in the content.post table.
//
// # Storage Layout
//
// Localized fields (title, excerpt, content, category) and the sections
// array live as JSONB. The shape mirrors the API JSON exactly, so
// marshalling is a straight [encoding/json] round-trip.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// postColumns is the SELECT column list shared by every read query.
func postColumns() string {
	t := schema.ContentPost
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.Category, t.Author,
		t.ReadTime, t.CoverImageURL, t.Sections, t.Status, t.PublishedAt,
		t.CreatedAt, t.UpdatedAt,
	)
}

// scanPost hydrates one row into a [*Post], decoding the JSONB columns.
func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	var title, excerpt, contentBody, category, sections []byte

	err := row.Scan(
		&post.ID, &post.Slug, &title, &excerpt, &contentBody, &category,
		&post.Author, &post.ReadTime, &post.CoverImageURL, &sections,
		&post.Status, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		raw    []byte
		target any
	}{
		{title, &post.Title},
		{excerpt, &post.Excerpt},
		{contentBody, &post.Content},
		{category, &post.Category},
		{sections, &post.Sections},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.target); err != nil {
			return nil, err
		}
	}

	return post, nil
}

// marshalPost encodes the JSONB columns for writes.
func marshalPost(post *Post) (title, excerpt, contentBody, category, sections []byte, err error) {
	if title, err = json.Marshal(post.Title); err != nil {
		return
	}
	if excerpt, err = json.Marshal(post.Excerpt); err != nil {
		return
	}
	if contentBody, err = json.Marshal(post.Content); err != nil {
		return
	}
	if category, err = json.Marshal(post.Category); err != nil {
		return
	}
	if post.Sections == nil {
		post.Sections = []Section{}
	}
	sections, err = json.Marshal(post.Sections)
	return
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	t := schema.ContentPost

	query := fmt.Sprintf(`SELECT %s FROM %s`, postColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	args := []any{}
	countArgs := []any{}

	if filter.Status != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, t.Status)
		countQuery += fmt.Sprintf(` WHERE %s = $1`, t.Status)
		args = append(args, string(filter.Status))
		countArgs = append(countArgs, string(filter.Status))
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	posts, err := repository.queryPosts(context, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (repository *PostgresRepository) All(context context.Context, filter Filter) ([]*Post, error) {
	t := schema.ContentPost

	query := fmt.Sprintf(`SELECT %s FROM %s`, postColumns(), t.Table)
	args := []any{}

	if filter.Status != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, t.Status)
		args = append(args, string(filter.Status))
	}

	query += fmt.Sprintf(" ORDER BY %s DESC", t.CreatedAt)

	return repository.queryPosts(context, query, args...)
}

// queryPosts runs a multi-row post query and hydrates every row.
func (repository *PostgresRepository) queryPosts(context context.Context, query string, args ...any) ([]*Post, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	t := schema.ContentPost
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, postColumns(), t.Table, t.ID)

	post, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return post, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slugValue string) (*Post, error) {
	t := schema.ContentPost
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, postColumns(), t.Table, t.Slug)

	post, err := scanPost(repository.db.QueryRow(context, query, slugValue))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_slug")
	}
	return post, nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slugValue string) (bool, error) {
	t := schema.ContentPost
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`, t.Table, t.Slug)

	var exists bool
	if err := repository.db.QueryRow(context, query, slugValue).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	t := schema.ContentPost

	title, excerpt, contentBody, category, sections, err := marshalPost(post)
	if err != nil {
		return dberr.Wrap(err, "encode_post")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.Category,
		t.Author, t.ReadTime, t.CoverImageURL, t.Sections, t.Status, t.PublishedAt,
		t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		post.ID, post.Slug, title, excerpt, contentBody, category,
		post.Author, post.ReadTime, post.CoverImageURL, sections,
		string(post.Status), post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	t := schema.ContentPost

	title, excerpt, contentBody, category, sections, err := marshalPost(post)
	if err != nil {
		return dberr.Wrap(err, "encode_post")
	}

	// The slug and created_at are immutable after creation.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Title, t.Excerpt, t.Content, t.Category, t.Author, t.ReadTime,
		t.CoverImageURL, t.Sections, t.Status, t.PublishedAt, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		post.ID, title, excerpt, contentBody, category, post.Author, post.ReadTime,
		post.CoverImageURL, sections, string(post.Status), post.PublishedAt,
	).Scan(&post.UpdatedAt)

	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentPost
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
