// Copyright (c) 2026 OWH Studio. All rights reserved.

package site

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
)

type fakeCMS struct {
	posts       []Post
	team        []TeamMember
	menus       []Menu
	design      DesignSettings
	listCalls   int
	designCalls int
	lastFilter  PostQuery
}

func (fake *fakeCMS) ListTeam(context.Context) ([]TeamMember, error) {
	return fake.team, nil
}

func (fake *fakeCMS) ListPosts(_ context.Context, filter PostQuery) ([]Post, error) {
	fake.listCalls++
	fake.lastFilter = filter
	return fake.posts, nil
}

func (fake *fakeCMS) PostBySlug(_ context.Context, slug string) (*Post, error) {
	for index := range fake.posts {
		if fake.posts[index].Slug == slug {
			return &fake.posts[index], nil
		}
	}
	return nil, nil
}

func (fake *fakeCMS) ListCategories(context.Context) ([]Taxonomy, error) {
	return []Taxonomy{{Name: "Știri", Slug: "stiri"}}, nil
}

func (fake *fakeCMS) ListTags(context.Context) ([]Taxonomy, error) {
	return []Taxonomy{{Name: "Festival", Slug: "festival"}}, nil
}

func (fake *fakeCMS) ListProjects(context.Context) ([]Project, error) {
	return []Project{{Title: "Festival de Film", Slug: "festival-de-film"}}, nil
}

func (fake *fakeCMS) ListEvents(context.Context) ([]Event, error) {
	return []Event{{Title: "Proiecție publică", Slug: "proiectie-publica"}}, nil
}

func (fake *fakeCMS) DesignSettings(context.Context) (*DesignSettings, error) {
	fake.designCalls++
	return &fake.design, nil
}

func (fake *fakeCMS) Menus(context.Context) ([]Menu, error) {
	return fake.menus, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestService(t *testing.T, cms *fakeCMS) *Service {
	t.Helper()

	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	policies := Policies{
		Content:  cache.Policy{Fresh: time.Minute, Lifetime: 150 * time.Second},
		Settings: cache.Policy{Fresh: 4 * time.Minute, Lifetime: 10 * time.Minute},
	}
	return NewService(cms, cache.New(store, testLogger()), policies, testLogger())
}

func TestPostsFilterReachesSource(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{posts: []Post{{Title: "Premieră", Slug: "premiera"}}}
	service := newTestService(t, cms)

	_, err := service.Posts(context.Background(), PostQuery{Category: "stiri"})
	require.NoError(t, err)
	assert.Equal(t, "stiri", cms.lastFilter.Category)
}

func TestPostsFilteredAndUnfilteredCacheSeparately(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{posts: []Post{{Title: "Premieră", Slug: "premiera"}}}
	service := newTestService(t, cms)

	_, err := service.Posts(context.Background(), PostQuery{})
	require.NoError(t, err)
	_, err = service.Posts(context.Background(), PostQuery{Tag: "festival"})
	require.NoError(t, err)
	_, err = service.Posts(context.Background(), PostQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, cms.listCalls)
}

func TestPostBySlugFallsBackToDetail(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{posts: []Post{{Title: "Premieră", Slug: "premiera"}}})

	found, err := service.PostBySlug(context.Background(), "premiera")
	require.NoError(t, err)
	assert.Equal(t, "Premieră", found.Title)

	_, err = service.PostBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestDesignUsesSettingsPolicy(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{design: DesignSettings{PrimaryColor: "#0a0a0a"}}
	service := newTestService(t, cms)

	first, err := service.Design(context.Background())
	require.NoError(t, err)
	second, err := service.Design(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "#0a0a0a", first.PrimaryColor)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cms.designCalls)
}

func TestMenusRoundTrip(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{menus: []Menu{{
		Name: "principal",
		Items: []MenuItem{{
			Title:    "Filme",
			URL:      "/filme",
			Children: []MenuItem{{Title: "Documentare", URL: "/filme/documentare"}},
		}},
	}}}
	service := newTestService(t, cms)

	menus, err := service.Menus(context.Background())
	require.NoError(t, err)
	require.Len(t, menus, 1)
	require.Len(t, menus[0].Items, 1)
	assert.Equal(t, "Documentare", menus[0].Items[0].Children[0].Title)
}
