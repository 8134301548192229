// Copyright (c) 2026 OWH Studio. All rights reserved.

package rental

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
	router.Post("/", handler.submitRequest)
}

// RegisterAdminRoutes mounts the studio-side listing and status endpoints.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listRequests)
	router.Patch("/{id}/status", handler.updateStatus)
}

func (handler *Handler) submitRequest(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) listRequests(writer http.ResponseWriter, request *http.Request) {
	requests, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Slice(requests, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	id := requestutil.Param(request, "id")
	if err := handler.service.UpdateStatus(request.Context(), id, payload.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id, "status": payload.Status})
}
