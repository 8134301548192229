// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

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

// Service resolves the rental inventory through the source chain — CMS,
// relational store, built-in snapshot — and caches the resolved views.
// Availability flips more often than catalogue metadata, so the policy
// injected here runs shorter windows than the film/production one.
type Service struct {
	cms    CMSSource
	repo   Repository
	cache  *cache.Cache
	policy cache.Policy
	logger *slog.Logger
}

// NewService wires the equipment service. repo may be nil when no database
// is configured.
func NewService(cms CMSSource, repo Repository, resolver *cache.Cache, policy cache.Policy, logger *slog.Logger) *Service {
	return &Service{
		cms:    cms,
		repo:   repo,
		cache:  resolver,
		policy: policy,
		logger: logger,
	}
}

// List returns the full inventory, optionally narrowed to one category.
func (service *Service) List(context stdctx.Context, rawCategory string) ([]Equipment, error) {
	normalized := category.Normalize(rawCategory)
	if normalized == "all" || normalized == "toate" {
		normalized = ""
	}

	key := cache.Key(constants.EntityEquipment)
	if normalized != "" {
		key = cache.Key(constants.EntityEquipment, "category", normalized)
	}

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Equipment, error) {
		return service.loadList(loadCtx, normalized), nil
	})
}

// Available returns only the items currently marked rentable. Cached as a
// derived view so invalidation sweeps it together with the full list.
func (service *Service) Available(context stdctx.Context) ([]Equipment, error) {
	key := cache.Key(constants.EntityEquipment, "available")

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Equipment, error) {
		items := service.loadList(loadCtx, "")
		return slice.Filter(items, func(item Equipment) bool { return item.IsAvailable }), nil
	})
}

// BySlug resolves one inventory item.
func (service *Service) BySlug(context stdctx.Context, slug string) (*Equipment, error) {
	items, err := service.List(context, "")
	if err == nil {
		for index := range items {
			if items[index].Slug == slug {
				return &items[index], nil
			}
		}
	}

	found, cmsErr := service.cms.EquipmentBySlug(context, slug)
	if cmsErr != nil {
		service.logger.WarnContext(context, "equipment_detail_cms_failed",
			slog.String("slug", slug),
			slog.String("error", cmsErr.Error()),
		)
	}
	if found == nil {
		return nil, apperr.NotFound("Equipment")
	}

	return found, nil
}

// InvalidateViews drops every cached equipment view. Exposed for the rental
// service, whose submissions may reflect availability edits.
func (service *Service) InvalidateViews(context stdctx.Context) {
	service.cache.InvalidateEntity(context, constants.EntityEquipment)
}

// Create passes a new inventory item through to the CMS and invalidates the
// cached views.
func (service *Service) Create(context stdctx.Context, payload map[string]any) (*Equipment, error) {
	created, err := service.cms.CreateEquipment(context, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not create equipment", err)
	}

	service.InvalidateViews(context)
	return created, nil
}

// Update passes an inventory edit through to the CMS and invalidates the
// cached views.
func (service *Service) Update(context stdctx.Context, slug string, payload map[string]any) (*Equipment, error) {
	updated, err := service.cms.UpdateEquipment(context, slug, payload)
	if err != nil {
		return nil, apperr.BadGateway("Could not update equipment", err)
	}

	service.InvalidateViews(context)
	return updated, nil
}

// Delete removes an inventory item in the CMS and invalidates the cached views.
func (service *Service) Delete(context stdctx.Context, slug string) error {
	if err := service.cms.DeleteEquipment(context, slug); err != nil {
		return apperr.BadGateway("Could not delete equipment", err)
	}

	service.InvalidateViews(context)
	return nil
}

// loadList walks the chain; the built-in tail keeps the result non-empty.
func (service *Service) loadList(context stdctx.Context, normalized string) []Equipment {
	sources := []fallback.Source[Equipment]{
		{
			Name: "cms",
			Load: func(loadCtx stdctx.Context) ([]Equipment, error) {
				return service.cms.ListEquipment(loadCtx, normalized)
			},
		},
	}

	if service.repo != nil {
		sources = append(sources, fallback.Source[Equipment]{
			Name: "postgres",
			Load: func(loadCtx stdctx.Context) ([]Equipment, error) {
				items, err := service.repo.ListEquipment(loadCtx)
				if err != nil {
					return nil, err
				}
				return filterByCategory(items, normalized), nil
			},
		})
	}

	sources = append(sources, fallback.Source[Equipment]{
		Name: "builtin",
		Load: func(stdctx.Context) ([]Equipment, error) {
			return filterByCategory(BuiltinEquipment(), normalized), nil
		},
	})

	return fallback.First(context, service.logger, sources...)
}

// filterByCategory narrows an inventory list; an empty filter passes all.
func filterByCategory(items []Equipment, normalized string) []Equipment {
	if normalized == "" {
		return items
	}
	return slice.Filter(items, func(item Equipment) bool {
		return strings.EqualFold(item.Category, normalized)
	})
}
