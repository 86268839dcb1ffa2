// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package waitlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ImranJeferly/teletebib/internal/platform/request"
	"github.com/ImranJeferly/teletebib/internal/platform/respond"
	"github.com/ImranJeferly/teletebib/pkg/pagination"
)

// Handler exposes the waitlist endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the signup and counter endpoints.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/patients", handler.addPatient)
	router.Post("/doctors", handler.addDoctor)
	router.Get("/count", handler.count)
}

// RegisterAdminRoutes mounts the review endpoints.
//
// The caller is responsible for wrapping the router with RequireAdmin.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listEntries)
	router.Delete("/{id}", handler.deleteEntry)
}

// # Public Endpoints

/*
POST /api/v1/waitlist/patients

Description: Registers a patient email. A repeat signup responds 409 with
code ALREADY_ON_WAITLIST so the form can render it as "already registered".
*/
func (handler *Handler) addPatient(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.AddPatient(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
POST /api/v1/waitlist/doctors

Description: Registers a doctor with their contact and license details.
Doctors are not duplicate-checked.
*/
func (handler *Handler) addDoctor(writer http.ResponseWriter, request *http.Request) {
	var input Entry
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.AddDoctor(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
GET /api/v1/waitlist/count

Description: Returns the total waitlist size shown on the landing page.
*/
func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"count": total})
}

// # Admin Endpoints

/*
GET /api/v1/admin/waitlist?kind=patient|doctor

Description: Lists signups for review, newest first, optionally restricted
to one audience.
*/
func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Kind: Kind(requestutil.Query(request, "kind")),
	}

	entries, total, err := handler.service.ListEntries(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
DELETE /api/v1/admin/waitlist/{id}

Description: Removes one signup.
*/
func (handler *Handler) deleteEntry(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteEntry(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
