// Copyright (c) 2026 OWH Studio. All rights reserved.

package production

import (
	stdctx "context"
	"log/slog"
	"strings"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
	"github.com/owhstudio/owh-api/internal/platform/constants"
	"github.com/owhstudio/owh-api/pkg/category"
	"github.com/owhstudio/owh-api/pkg/fallback"
	"github.com/owhstudio/owh-api/pkg/slice"
)

// Service resolves productions through the source chain — CMS, then the
// relational store, then the built-in showcase — and caches the snapshots.
type Service struct {
	cms    CMSSource
	repo   Repository
	cache  *cache.Cache
	policy cache.Policy
	logger *slog.Logger
}

// NewService wires the production service. repo may be nil when no database
// is configured; the chain then skips straight to the built-in showcase.
func NewService(cms CMSSource, repo Repository, resolver *cache.Cache, policy cache.Policy, logger *slog.Logger) *Service {
	return &Service{
		cms:    cms,
		repo:   repo,
		cache:  resolver,
		policy: policy,
		logger: logger,
	}
}

// List returns the productions, optionally narrowed to one category.
func (service *Service) List(context stdctx.Context, rawCategory string) ([]Production, error) {
	normalized := category.Normalize(rawCategory)
	if normalized == "all" || normalized == "toate" {
		normalized = ""
	}

	key := cache.Key(constants.EntityProductions)
	if normalized != "" {
		key = cache.Key(constants.EntityProductions, "category", normalized)
	}

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Production, error) {
		return service.loadList(loadCtx, normalized), nil
	})
}

// loadList walks the chain. The built-in tail means the result is never
// empty, so unlike films an exhausted chain is not an error state.
func (service *Service) loadList(context stdctx.Context, normalized string) []Production {
	sources := []fallback.Source[Production]{
		{
			Name: "cms",
			Load: func(loadCtx stdctx.Context) ([]Production, error) {
				return service.cms.ListProductions(loadCtx, normalized)
			},
		},
	}

	if service.repo != nil {
		sources = append(sources, fallback.Source[Production]{
			Name: "postgres",
			Load: func(loadCtx stdctx.Context) ([]Production, error) {
				items, err := service.repo.ListProductions(loadCtx)
				if err != nil {
					return nil, err
				}
				return filterByCategory(items, normalized), nil
			},
		})
	}

	sources = append(sources, fallback.Source[Production]{
		Name: "builtin",
		Load: func(stdctx.Context) ([]Production, error) {
			return filterByCategory(BuiltinProductions(), normalized), nil
		},
	})

	return fallback.First(context, service.logger, sources...)
}

// BySlug resolves one production.
func (service *Service) BySlug(context stdctx.Context, slug string) (*Production, error) {
	productions, err := service.List(context, "")
	if err == nil {
		for index := range productions {
			if productions[index].Slug == slug {
				return &productions[index], nil
			}
		}
	}

	found, cmsErr := service.cms.ProductionBySlug(context, slug)
	if cmsErr != nil {
		service.logger.WarnContext(context, "production_detail_cms_failed",
			slog.String("slug", slug),
			slog.String("error", cmsErr.Error()),
		)
	}
	if found == nil {
		return nil, apperr.NotFound("Production")
	}

	return found, nil
}

// Create passes a new production through to the CMS and invalidates the cache.
func (service *Service) Create(context stdctx.Context, payload map[string]any) (*Production, error) {
	created, err := service.cms.CreateProduction(context, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not create production", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityProductions)
	return created, nil
}

// Update passes a production edit through to the CMS and invalidates the cache.
func (service *Service) Update(context stdctx.Context, slug string, payload map[string]any) (*Production, error) {
	updated, err := service.cms.UpdateProduction(context, slug, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not update production", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityProductions)
	return updated, nil
}

// Delete removes a production in the CMS and invalidates the cache.
func (service *Service) Delete(context stdctx.Context, slug string) error {
	if err := service.cms.DeleteProduction(context, slug); err != nil {
		return apperr.BadGateway("Could not delete production", err)
	}

	service.cache.InvalidateEntity(context, constants.EntityProductions)
	return nil
}

// filterByCategory narrows a production list; an empty filter passes all.
func filterByCategory(items []Production, normalized string) []Production {
	if normalized == "" {
		return items
	}
	return slice.Filter(items, func(item Production) bool {
		return strings.EqualFold(item.Category, normalized)
	})
}
