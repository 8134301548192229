// Copyright (c) 2026 OWH Studio. All rights reserved.

package site

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

// RegisterRoutes mounts the grouped site endpoints on the API root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/team", handler.listTeam)

	router.Route("/posts", func(posts chi.Router) {
		posts.Get("/", handler.listPosts)
		posts.Get("/categories", handler.listCategories)
		posts.Get("/tags", handler.listTags)
		posts.Get("/{slug}", handler.getPostBySlug)
	})

	router.Get("/events", handler.listEvents)
	router.Get("/projects", handler.listProjects)

	router.Route("/site", func(settings chi.Router) {
		settings.Get("/design", handler.getDesign)
		settings.Get("/menus", handler.listMenus)
	})
}

func (handler *Handler) listTeam(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.Team(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, members)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	filter := PostQuery{
		Search:   requestutil.Query(request, "search"),
		Category: requestutil.Query(request, "category"),
		Tag:      requestutil.Query(request, "tag"),
	}

	posts, err := handler.service.Posts(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Slice(posts, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) getPostBySlug(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.PostBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	taxonomy, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, taxonomy)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	taxonomy, err := handler.service.Tags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, taxonomy)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.service.Events(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.service.Projects(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) getDesign(writer http.ResponseWriter, request *http.Request) {
	design, err := handler.service.Design(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, design)
}

func (handler *Handler) listMenus(writer http.ResponseWriter, request *http.Request) {
	menus, err := handler.service.Menus(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, menus)
}
