// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/cache"
)

type fakeCMS struct {
	items []Equipment
	err   error
	calls int
}

func (fake *fakeCMS) ListEquipment(_ context.Context, category string) ([]Equipment, error) {
	fake.calls++
	if fake.err != nil {
		return nil, fake.err
	}
	return filterByCategory(fake.items, category), nil
}

func (fake *fakeCMS) EquipmentBySlug(_ context.Context, slug string) (*Equipment, error) {
	if fake.err != nil {
		return nil, fake.err
	}
	for index := range fake.items {
		if fake.items[index].Slug == slug {
			return &fake.items[index], nil
		}
	}
	return nil, nil
}

func (fake *fakeCMS) CreateEquipment(context.Context, map[string]any) (*Equipment, error) {
	return &Equipment{Slug: "nou"}, fake.err
}

func (fake *fakeCMS) UpdateEquipment(context.Context, string, map[string]any) (*Equipment, error) {
	return &Equipment{Slug: "nou"}, fake.err
}

func (fake *fakeCMS) DeleteEquipment(context.Context, string) error {
	return fake.err
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

	policy := cache.Policy{Fresh: time.Minute, Lifetime: 150 * time.Second}
	return NewService(cms, nil, cache.New(store, testLogger()), policy, testLogger())
}

func TestListNeverEmpty(t *testing.T) {
	t.Parallel()

	// CMS down, no database wired: the built-in inventory carries the page.
	service := newTestService(t, &fakeCMS{err: errors.New("cms down")})

	items, err := service.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestListByCategory(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{err: errors.New("cms down")})

	items, err := service.List(context.Background(), "cameras")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "cameras", item.Category)
	}
}

func TestAvailableFiltersUnavailable(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{items: []Equipment{
		{Name: "Sony FX3", Slug: "sony-fx3", Category: "cameras", IsAvailable: true},
		{Name: "ARRI L7-C", Slug: "arri-l7c", Category: "lighting", IsAvailable: false},
	}}
	service := newTestService(t, cms)

	items, err := service.Available(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sony-fx3", items[0].Slug)
}

func TestDerivedViewsShareInvalidation(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{items: []Equipment{{Name: "Sony FX3", Slug: "sony-fx3", IsAvailable: true}}}
	service := newTestService(t, cms)

	_, err := service.List(context.Background(), "")
	require.NoError(t, err)
	_, err = service.Available(context.Background())
	require.NoError(t, err)
	callsBefore := cms.calls

	service.InvalidateViews(context.Background())

	_, err = service.List(context.Background(), "")
	require.NoError(t, err)
	_, err = service.Available(context.Background())
	require.NoError(t, err)
	assert.Greater(t, cms.calls, callsBefore)
}

func TestBySlugFromBuiltinInventory(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{err: errors.New("cms down")})

	found, err := service.BySlug(context.Background(), "sony-fx3")
	require.NoError(t, err)
	assert.Equal(t, "Sony FX3", found.Name)
}
