// Copyright (c) 2026 OWH Studio. All rights reserved.

package series

import (
	stdctx "context"
	"log/slog"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
	"github.com/owhstudio/owh-api/internal/platform/constants"
)

// Source is the CMS surface for episodic content. Series have no sheet or
// relational fallback; an outage is bridged by the cached snapshot only.
type Source interface {
	ListSeries(context stdctx.Context) ([]Series, error)
	SeriesBySlug(context stdctx.Context, slug string) (*Series, error)
	SeriesEpisodes(context stdctx.Context, slug string) ([]Episode, error)
}

type Service struct {
	cms    Source
	cache  *cache.Cache
	policy cache.Policy
	logger *slog.Logger
}

func NewService(cms Source, resolver *cache.Cache, policy cache.Policy, logger *slog.Logger) *Service {
	return &Service{cms: cms, cache: resolver, policy: policy, logger: logger}
}

// List returns every series.
func (service *Service) List(context stdctx.Context) ([]Series, error) {
	key := cache.Key(constants.EntitySeries)

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Series, error) {
		return service.cms.ListSeries(loadCtx)
	})
}

// BySlug resolves one series from the cached list, then the CMS detail
// endpoint.
func (service *Service) BySlug(context stdctx.Context, slug string) (*Series, error) {
	items, err := service.List(context)
	if err == nil {
		for index := range items {
			if items[index].Slug == slug {
				return &items[index], nil
			}
		}
	}

	found, cmsErr := service.cms.SeriesBySlug(context, slug)
	if cmsErr != nil {
		service.logger.WarnContext(context, "series_detail_cms_failed",
			slog.String("slug", slug),
			slog.String("error", cmsErr.Error()),
		)
	}
	if found == nil {
		return nil, apperr.NotFound("Series")
	}

	return found, nil
}

// Episodes returns the episode list of one series, cached per slug.
func (service *Service) Episodes(context stdctx.Context, slug string) ([]Episode, error) {
	key := cache.Key(constants.EntitySeries, "episodes", slug)

	return cache.Fetch(context, service.cache, key, service.policy, func(loadCtx stdctx.Context) ([]Episode, error) {
		return service.cms.SeriesEpisodes(loadCtx, slug)
	})
}
