// Copyright (c) 2026 OWH Studio. All rights reserved.

package series

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/owhstudio/owh-api/internal/platform/request"
	"github.com/owhstudio/owh-api/internal/platform/respond"
	"github.com/owhstudio/owh-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public series endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSeries)
	router.Get("/{slug}", handler.getSeriesBySlug)
	router.Get("/{slug}/episodes", handler.listEpisodes)
}

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Slice(items, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) getSeriesBySlug(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.BySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) listEpisodes(writer http.ResponseWriter, request *http.Request) {
	episodes, err := handler.service.Episodes(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episodes)
}
