// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/owhstudio/owh-api/internal/platform/apperr"
	requestutil "github.com/owhstudio/owh-api/internal/platform/request"
	"github.com/owhstudio/owh-api/internal/platform/respond"
	"github.com/owhstudio/owh-api/pkg/convert"
	"github.com/owhstudio/owh-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public equipment endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listEquipment)
	router.Get("/{slug}", handler.getEquipmentBySlug)
}

// RegisterAdminRoutes mounts the CMS passthrough writes.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/", handler.createEquipment)
	router.Put("/{slug}", handler.updateEquipment)
	router.Delete("/{slug}", handler.deleteEquipment)
}

func (handler *Handler) listEquipment(writer http.ResponseWriter, request *http.Request) {
	var (
		items []Equipment
		err   error
	)

	if convert.ToBool(requestutil.Query(request, "available")) {
		items, err = handler.service.Available(request.Context())
	} else {
		items, err = handler.service.List(request.Context(), requestutil.Query(request, "category"))
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Slice(items, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) getEquipmentBySlug(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.BySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createEquipment(writer http.ResponseWriter, request *http.Request) {
	var payload map[string]any
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid request body"))
		return
	}

	created, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateEquipment(writer http.ResponseWriter, request *http.Request) {
	var payload map[string]any
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid request body"))
		return
	}

	updated, err := handler.service.Update(request.Context(), requestutil.Param(request, "slug"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteEquipment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
