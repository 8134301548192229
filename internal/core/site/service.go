// Copyright (c) 2026 OWH Studio. All rights reserved.

package site

import (
	stdctx "context"
	"log/slog"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
	"github.com/owhstudio/owh-api/internal/platform/constants"
	"github.com/owhstudio/owh-api/pkg/category"
)

// Source is the CMS surface for the grouped site content.
type Source interface {
	ListTeam(context stdctx.Context) ([]TeamMember, error)
	ListPosts(context stdctx.Context, filter PostQuery) ([]Post, error)
	PostBySlug(context stdctx.Context, slug string) (*Post, error)
	ListCategories(context stdctx.Context) ([]Taxonomy, error)
	ListTags(context stdctx.Context) ([]Taxonomy, error)
	ListProjects(context stdctx.Context) ([]Project, error)
	ListEvents(context stdctx.Context) ([]Event, error)
	DesignSettings(context stdctx.Context) (*DesignSettings, error)
	Menus(context stdctx.Context) ([]Menu, error)
}

// Policies separates the content cadence from the settings cadence. Design
// settings and menus change rarely and run on the longer window.
type Policies struct {
	Content  cache.Policy
	Settings cache.Policy
}

type Service struct {
	cms      Source
	cache    *cache.Cache
	policies Policies
	logger   *slog.Logger
}

func NewService(cms Source, resolver *cache.Cache, policies Policies, logger *slog.Logger) *Service {
	return &Service{cms: cms, cache: resolver, policies: policies, logger: logger}
}

// Team returns the studio roster.
func (service *Service) Team(context stdctx.Context) ([]TeamMember, error) {
	key := cache.Key(constants.EntityTeam)

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]TeamMember, error) {
		return service.cms.ListTeam(loadCtx)
	})
}

// Posts returns blog posts. Filtered listings are cached per filter under the
// posts prefix so a sweep catches them all.
func (service *Service) Posts(context stdctx.Context, filter PostQuery) ([]Post, error) {
	key := cache.Key(constants.EntityPosts)
	if filter != (PostQuery{}) {
		key = cache.Key(constants.EntityPosts, "filter",
			category.Fold(filter.Search), category.Fold(filter.Category), category.Fold(filter.Tag))
	}

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]Post, error) {
		return service.cms.ListPosts(loadCtx, filter)
	})
}

// PostBySlug resolves one post from the cached unfiltered list, then the CMS
// detail endpoint.
func (service *Service) PostBySlug(context stdctx.Context, slug string) (*Post, error) {
	posts, err := service.Posts(context, PostQuery{})
	if err == nil {
		for index := range posts {
			if posts[index].Slug == slug {
				return &posts[index], nil
			}
		}
	}

	found, cmsErr := service.cms.PostBySlug(context, slug)
	if cmsErr != nil {
		service.logger.WarnContext(context, "post_detail_cms_failed",
			slog.String("slug", slug),
			slog.String("error", cmsErr.Error()),
		)
	}
	if found == nil {
		return nil, apperr.NotFound("Post")
	}

	return found, nil
}

// Categories returns the blog category taxonomy.
func (service *Service) Categories(context stdctx.Context) ([]Taxonomy, error) {
	key := cache.Key(constants.EntityPosts, "categories")

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]Taxonomy, error) {
		return service.cms.ListCategories(loadCtx)
	})
}

// Tags returns the blog tag taxonomy.
func (service *Service) Tags(context stdctx.Context) ([]Taxonomy, error) {
	key := cache.Key(constants.EntityPosts, "tags")

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]Taxonomy, error) {
		return service.cms.ListTags(loadCtx)
	})
}

// Projects returns the special projects.
func (service *Service) Projects(context stdctx.Context) ([]Project, error) {
	key := cache.Key(constants.EntitySite, "projects")

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]Project, error) {
		return service.cms.ListProjects(loadCtx)
	})
}

// Events returns the public events.
func (service *Service) Events(context stdctx.Context) ([]Event, error) {
	key := cache.Key(constants.EntityEvents)

	return cache.Fetch(context, service.cache, key, service.policies.Content, func(loadCtx stdctx.Context) ([]Event, error) {
		return service.cms.ListEvents(loadCtx)
	})
}

// Design returns the site chrome settings under the long policy.
func (service *Service) Design(context stdctx.Context) (*DesignSettings, error) {
	key := cache.Key(constants.EntitySite, "design")

	return cache.Fetch(context, service.cache, key, service.policies.Settings, func(loadCtx stdctx.Context) (*DesignSettings, error) {
		return service.cms.DesignSettings(loadCtx)
	})
}

// Menus returns the navigation trees under the long policy.
func (service *Service) Menus(context stdctx.Context) ([]Menu, error) {
	key := cache.Key(constants.EntitySite, "menus")

	return cache.Fetch(context, service.cache, key, service.policies.Settings, func(loadCtx stdctx.Context) ([]Menu, error) {
		return service.cms.Menus(loadCtx)
	})
}
