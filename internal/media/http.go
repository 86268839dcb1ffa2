// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package media

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/internal/platform/constants"
	"github.com/ImranJeferly/teletebib/internal/platform/respond"
)

// Handler exposes the cover image upload endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the upload endpoint.
//
// The caller is responsible for wrapping the router with RequireAdmin.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/images", handler.uploadImage)
}

/*
POST /api/v1/admin/images

Description: Accepts a multipart form with an "image" file part and an
optional "post_id" value. Returns the stored image's public URL.
*/
func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {

	// The parse limit sits just above the payload ceiling so oversized
	// uploads reach the service's own size check and its error message.
	if err := request.ParseMultipartForm(constants.MaxImageUploadBytes + 1<<20); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart form"))
		return
	}

	file, header, err := request.FormFile("image")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("No image file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(constants.MaxImageUploadBytes)+1))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	upload, err := handler.service.UploadImage(request.Context(), UploadInput{
		PostID:      request.FormValue("post_id"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, upload)
}
