// Copyright (c) 2026 OWH Studio. All rights reserved.

package film

import (
	stdctx "context"
	"log/slog"
	"strings"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
	"github.com/owhstudio/owh-api/internal/platform/constants"
	"github.com/owhstudio/owh-api/pkg/category"
	"github.com/owhstudio/owh-api/pkg/fallback"
)

// Source is a content source able to serve the film catalogue. The
// spreadsheet adapter implements exactly this.
type Source interface {
	ListFilms(context stdctx.Context, category string) ([]Film, error)
	FilmBySlug(context stdctx.Context, slug string) (*Film, error)
}

// CMSSource is the richer source backing featured selection, search, and the
// admin passthrough writes.
type CMSSource interface {
	Source
	FeaturedFilms(context stdctx.Context) ([]Film, error)
	SearchFilms(context stdctx.Context, term string) ([]Film, error)
	CreateFilm(context stdctx.Context, payload map[string]any) (*Film, error)
	UpdateFilm(context stdctx.Context, slug string, payload map[string]any) (*Film, error)
	DeleteFilm(context stdctx.Context, slug string) error
}

// searchMinLength is the shortest accepted search term.
const searchMinLength = 3

// featuredCount caps the featured selection.
const featuredCount = 6

// Service resolves films through the source chain — spreadsheet first, CMS
// second — and caches the resolved snapshots.
type Service struct {
	sheet  Source
	cms    CMSSource
	cache  *cache.Cache
	policy cache.Policy
	logger *slog.Logger
}

// NewService wires the film service.
func NewService(sheet Source, cms CMSSource, resolver *cache.Cache, policy cache.Policy, logger *slog.Logger) *Service {
	return &Service{
		sheet:  sheet,
		cms:    cms,
		cache:  resolver,
		policy: policy,
		logger: logger,
	}
}

// List returns the film catalogue, optionally narrowed to one category.
func (service *Service) List(context stdctx.Context, rawCategory string) ([]Film, error) {
	normalized := category.Normalize(rawCategory)
	if normalized == "all" {
		normalized = ""
	}

	key := cache.Key(constants.EntityFilms)
	if normalized != "" {
		key = cache.Key(constants.EntityFilms, "category", normalized)
	}

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Film, error) {
		return service.loadList(loadCtx, normalized)
	})
}

// loadList walks the source chain until one yields films. Every source
// coming back empty is treated as a resolution failure so a stale snapshot
// is preferred over overwriting it with nothing.
func (service *Service) loadList(context stdctx.Context, normalized string) ([]Film, error) {
	films := fallback.First(context, service.logger,
		fallback.Source[Film]{
			Name: "sheets",
			Load: func(loadCtx stdctx.Context) ([]Film, error) {
				return service.sheet.ListFilms(loadCtx, normalized)
			},
		},
		fallback.Source[Film]{
			Name: "cms",
			Load: func(loadCtx stdctx.Context) ([]Film, error) {
				return service.cms.ListFilms(loadCtx, normalized)
			},
		},
	)
	if films == nil {
		return nil, apperr.ServiceUnavailable("Film catalogue is unavailable")
	}
	return films, nil
}

// BySlug resolves one film: the cached catalogue first, the CMS detail
// endpoint as a second chance for films not present in the spreadsheet.
func (service *Service) BySlug(context stdctx.Context, slug string) (*Film, error) {
	films, err := service.List(context, "")
	if err == nil {
		for index := range films {
			if films[index].Slug == slug {
				return &films[index], nil
			}
		}
	}

	found, cmsErr := service.cms.FilmBySlug(context, slug)
	if cmsErr != nil {
		service.logger.WarnContext(context, "film_detail_cms_failed",
			slog.String("slug", slug),
			slog.String("error", cmsErr.Error()),
		)
	}
	if found == nil {
		return nil, apperr.NotFound("Film")
	}

	return found, nil
}

// Featured returns the homepage selection. When the CMS cannot serve it, the
// newest films of the resolved catalogue stand in.
func (service *Service) Featured(context stdctx.Context) ([]Film, error) {
	key := cache.Key(constants.EntityFilms, "featured")

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Film, error) {
		featured, err := service.cms.FeaturedFilms(loadCtx)
		if err == nil && len(featured) > 0 {
			return featured, nil
		}
		if err != nil {
			service.logger.WarnContext(loadCtx, "featured_films_cms_failed", slog.String("error", err.Error()))
		}

		films, listErr := service.loadList(loadCtx, "")
		if listErr != nil {
			return nil, listErr
		}
		if len(films) > featuredCount {
			films = films[:featuredCount]
		}
		return films, nil
	})
}

// Search runs a catalogue search. Terms shorter than three characters are
// rejected; a CMS outage degrades to a local title match over the resolved
// catalogue.
func (service *Service) Search(context stdctx.Context, term string) ([]Film, error) {
	trimmed := strings.TrimSpace(term)
	if len([]rune(trimmed)) < searchMinLength {
		return nil, apperr.ValidationError("Search term must be at least 3 characters")
	}

	key := cache.Key(constants.EntityFilms, "search", category.Fold(trimmed))

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Film, error) {
		results, err := service.cms.SearchFilms(loadCtx, trimmed)
		if err == nil {
			return results, nil
		}
		service.logger.WarnContext(loadCtx, "film_search_cms_failed", slog.String("error", err.Error()))

		films, listErr := service.loadList(loadCtx, "")
		if listErr != nil {
			return nil, listErr
		}

		needle := category.Fold(trimmed)
		var matched []Film
		for _, candidate := range films {
			if strings.Contains(category.Fold(candidate.Title), needle) {
				matched = append(matched, candidate)
			}
		}
		return matched, nil
	})
}

// Create passes a new film through to the CMS and invalidates the cached views.
func (service *Service) Create(context stdctx.Context, payload map[string]any) (*Film, error) {
	created, err := service.cms.CreateFilm(context, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not create film", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityFilms)
	return created, nil
}

// Update passes a film edit through to the CMS and invalidates the cached views.
func (service *Service) Update(context stdctx.Context, slug string, payload map[string]any) (*Film, error) {
	updated, err := service.cms.UpdateFilm(context, slug, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not update film", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityFilms)
	return updated, nil
}

// Delete removes a film in the CMS and invalidates the cached views.
func (service *Service) Delete(context stdctx.Context, slug string) error {
	if err := service.cms.DeleteFilm(context, slug); err != nil {
		return apperr.BadGateway("Could not delete film", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityFilms)
	return nil
}
