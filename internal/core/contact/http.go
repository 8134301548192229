// Copyright (c) 2026 OWH Studio. All rights reserved.

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/owhstudio/owh-api/internal/platform/request"
	"github.com/owhstudio/owh-api/internal/platform/respond"
	"github.com/owhstudio/owh-api/internal/platform/validate"
	"github.com/owhstudio/owh-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public submission endpoint.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.submitMessage)
}

// RegisterAdminRoutes mounts the studio-side listing.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listSubmissions)
}

func (handler *Handler) submitMessage(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listSubmissions(writer http.ResponseWriter, request *http.Request) {
	submissions, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Slice(submissions, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}
