// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	requestutil "github.com/ImranJeferly/teletebib/internal/platform/request"
	"github.com/ImranJeferly/teletebib/internal/platform/respond"
	"github.com/ImranJeferly/teletebib/internal/platform/validate"
	"github.com/ImranJeferly/teletebib/pkg/markup"
)

// # Editor Operations
//
// The admin composer is a thin client: every toolbar action is applied
// server-side by pkg/markup so the buffer semantics live in exactly one
// place. The endpoint is pure — nothing is persisted.

// Editor operation names accepted by the apply endpoint.
const (
	EditorOpWrap           = "wrap"
	EditorOpBullet         = "bullet"
	EditorOpParagraphBreak = "paragraph-break"
	EditorOpCenter         = "center"
	EditorOpEnter          = "enter"
	EditorOpPreview        = "preview"
)

// EditorRequest is the payload of POST /admin/editor/apply.
type EditorRequest struct {
	Op        string           `json:"op"`
	Buffer    string           `json:"buffer"`
	Selection markup.Selection `json:"selection"`

	// Before and After are the markers for the "wrap" operation,
	// e.g. "**"/"**" for bold or "*"/"*" for italic.
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// EditorResponse carries the transformed buffer and the selection the
// client should restore.
type EditorResponse struct {
	Buffer    string           `json:"buffer"`
	Selection markup.Selection `json:"selection"`

	// Handled is meaningful for the "enter" operation only: false tells
	// the client to fall through to its native newline behavior.
	Handled bool `json:"handled"`

	// Blocks and HTML are populated by the "preview" operation.
	Blocks []markup.Block `json:"blocks,omitempty"`
	HTML   string         `json:"html,omitempty"`
}

// RegisterEditorRoutes mounts the composer endpoint.
//
// The caller is responsible for wrapping the router with RequireAdmin.
func (handler *Handler) RegisterEditorRoutes(router chi.Router) {
	router.Post("/apply", handler.applyEditorOp)
}

/*
POST /api/v1/admin/editor/apply

Description: Applies one composer toolbar action to a markup buffer and
returns the new buffer plus the selection to restore. The "preview"
operation instead decodes the buffer into display blocks.
*/
func (handler *Handler) applyEditorOp(writer http.ResponseWriter, request *http.Request) {
	var input EditorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("op", input.Op).OneOf("op", input.Op,
		EditorOpWrap,
		EditorOpBullet,
		EditorOpParagraphBreak,
		EditorOpCenter,
		EditorOpEnter,
		EditorOpPreview,
	)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	output := EditorResponse{Handled: true}

	switch input.Op {
	case EditorOpWrap:
		if input.Before == "" && input.After == "" {
			respond.Error(writer, request, apperr.ValidationError("Wrap markers are required"))
			return
		}
		output.Buffer, output.Selection = markup.WrapSelection(input.Buffer, input.Selection, input.Before, input.After)

	case EditorOpBullet:
		output.Buffer, output.Selection = markup.InsertBullet(input.Buffer, input.Selection)

	case EditorOpParagraphBreak:
		output.Buffer, output.Selection = markup.InsertParagraphBreak(input.Buffer, input.Selection)

	case EditorOpCenter:
		output.Buffer, output.Selection = markup.InsertCenterBlock(input.Buffer, input.Selection)

	case EditorOpEnter:
		next, cursor, handled := markup.OnEnterKey(input.Buffer, input.Selection.Start)
		output.Handled = handled
		if handled {
			output.Buffer = next
			output.Selection = markup.Selection{Start: cursor, End: cursor}
		} else {
			output.Buffer = input.Buffer
			output.Selection = input.Selection
		}

	case EditorOpPreview:
		output.Buffer = input.Buffer
		output.Selection = input.Selection
		output.Blocks = markup.Render(input.Buffer)
		output.HTML = markup.HTML(input.Buffer)
	}

	respond.OK(writer, output)
}
