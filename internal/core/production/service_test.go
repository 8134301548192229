// Copyright (c) 2026 OWH Studio. All rights reserved.

package production

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/platform/apperr"
)

type fakeCMS struct {
	productions []Production
	err         error
}

func (fake *fakeCMS) ListProductions(_ context.Context, category string) ([]Production, error) {
	if fake.err != nil {
		return nil, fake.err
	}
	return filterByCategory(fake.productions, category), nil
}

func (fake *fakeCMS) ProductionBySlug(_ context.Context, slug string) (*Production, error) {
	if fake.err != nil {
		return nil, fake.err
	}
	for index := range fake.productions {
		if fake.productions[index].Slug == slug {
			return &fake.productions[index], nil
		}
	}
	return nil, nil
}

func (fake *fakeCMS) CreateProduction(context.Context, map[string]any) (*Production, error) {
	return nil, fake.err
}

func (fake *fakeCMS) UpdateProduction(context.Context, string, map[string]any) (*Production, error) {
	return nil, fake.err
}

func (fake *fakeCMS) DeleteProduction(context.Context, string) error {
	return fake.err
}

type fakeRepo struct {
	productions []Production
	err         error
}

func (fake *fakeRepo) ListProductions(context.Context) ([]Production, error) {
	return fake.productions, fake.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestService(t *testing.T, cms CMSSource, repo Repository) *Service {
	t.Helper()

	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	policy := cache.Policy{Fresh: 2 * time.Minute, Lifetime: 5 * time.Minute}
	return NewService(cms, repo, cache.New(store, testLogger()), policy, testLogger())
}

func TestListPrefersCMS(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{productions: []Production{{Title: "Spot TV", Slug: "spot-tv", Category: "publicitate"}}}
	repo := &fakeRepo{productions: []Production{{Title: "Din baza de date", Slug: "db", Category: "emisiuni"}}}
	service := newTestService(t, cms, repo)

	productions, err := service.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, productions, 1)
	assert.Equal(t, "spot-tv", productions[0].Slug)
}

func TestListFallsBackToPostgres(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{err: errors.New("cms down")}
	repo := &fakeRepo{productions: []Production{{Title: "Din baza de date", Slug: "db", Category: "emisiuni"}}}
	service := newTestService(t, cms, repo)

	productions, err := service.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, productions, 1)
	assert.Equal(t, "db", productions[0].Slug)
}

func TestListFallsBackToBuiltinShowcase(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{err: errors.New("cms down")}
	repo := &fakeRepo{err: errors.New("db down")}
	service := newTestService(t, cms, repo)

	productions, err := service.List(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, productions)
	assert.Equal(t, "campanie-brand-x", productions[0].Slug)
}

func TestListWithoutRepositorySkipsToBuiltin(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{err: errors.New("cms down")}, nil)

	productions, err := service.List(context.Background(), "publicitate")
	require.NoError(t, err)
	require.Len(t, productions, 1)
	assert.Equal(t, "publicitate", productions[0].Category)
}

func TestBySlugNotFound(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{productions: BuiltinProductions()}, nil)

	_, err := service.BySlug(context.Background(), "lipsa")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestWriteFailureSurfacesAsUpstreamError(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{err: errors.New("cms down")}, nil)

	_, err := service.Create(context.Background(), map[string]any{"title": "Nou"})
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_ERROR", apperr.As(err).Code)
}
