// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ImranJeferly/teletebib/internal/platform/request"
	"github.com/ImranJeferly/teletebib/internal/platform/respond"
	"github.com/ImranJeferly/teletebib/pkg/pagination"
)

// Handler exposes the blog content endpoints.
//
// Public routes serve published posts only; the admin routes (mounted behind
// the admin middleware by the server) operate on the full catalogue.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the reader-facing endpoints.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{identifier}", handler.getPublished)
	router.Get("/{identifier}/rendered", handler.getRendered)
}

// RegisterAdminRoutes mounts the authoring endpoints.
//
// The caller is responsible for wrapping the router with RequireAdmin.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listAll)
	router.Post("/", handler.createPost)
	router.Get("/{identifier}", handler.getAny)
	router.Patch("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)
}

// # Public Endpoints

/*
GET /api/v1/posts

Description: Lists published posts, newest first. Supports free-text search
via ?q= across every localized field, plus standard pagination.
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Status: StatusPublished,
		Query:  requestutil.Query(request, "q"),
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/posts/{identifier}

Description: Retrieves one published post using either its UUID or its URL
slug. Drafts respond 404 so their slugs stay private.
*/
func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	post, err := handler.service.GetPublishedPost(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
GET /api/v1/posts/{identifier}/rendered?lang=az|ru|en

Description: Retrieves one published post resolved to a single language,
with section markup decoded into display blocks and CTA cards slotted into
their configured positions. Unknown or missing lang falls back to "az".
*/
func (handler *Handler) getRendered(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")
	lang := ParseLang(requestutil.Query(request, "lang"))

	post, err := handler.service.GetPublishedPost(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, RenderPost(post, lang))
}

// # Admin Endpoints

/*
GET /api/v1/admin/posts

Description: Lists posts in every lifecycle state. Supports ?status=draft|published
and the same ?q= search as the public listing.
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Status: Status(requestutil.Query(request, "status")),
		Query:  requestutil.Query(request, "q"),
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/admin/posts/{identifier}

Description: Retrieves any post, drafts included, by UUID or slug.
*/
func (handler *Handler) getAny(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	post, err := handler.service.GetPost(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
POST /api/v1/admin/posts

Description: Creates a post. The slug, identity and section IDs are assigned
server-side; the response carries the persisted entity.
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePost(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/admin/posts/{id}

Description: Partially updates a post. Only populated fields overwrite the
stored values; the slug and creation timestamp never change.
*/
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.UpdatePost(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
DELETE /api/v1/admin/posts/{id}

Description: Deletes a post and, best effort, its stored cover image.
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeletePost(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
