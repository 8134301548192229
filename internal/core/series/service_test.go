// Copyright (c) 2026 OWH Studio. All rights reserved.

package series

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
	items    []Series
	episodes map[string][]Episode
	err      error
	calls    int
}

func (fake *fakeCMS) ListSeries(context.Context) ([]Series, error) {
	fake.calls++
	if fake.err != nil {
		return nil, fake.err
	}
	return fake.items, nil
}

func (fake *fakeCMS) SeriesBySlug(_ context.Context, slug string) (*Series, error) {
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

func (fake *fakeCMS) SeriesEpisodes(_ context.Context, slug string) ([]Episode, error) {
	if fake.err != nil {
		return nil, fake.err
	}
	return fake.episodes[slug], nil
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
	return NewService(cms, cache.New(store, testLogger()), policy, testLogger())
}

func TestListCachesSnapshot(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{items: []Series{{Title: "Oameni și Destine", Slug: "oameni-si-destine"}}}
	service := newTestService(t, cms)

	first, err := service.List(context.Background())
	require.NoError(t, err)
	second, err := service.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cms.calls)
}

func TestBySlugNotFound(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &fakeCMS{})

	_, err := service.BySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestBySlugSurvivesListFailure(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{err: errors.New("cms down")}
	service := newTestService(t, cms)

	_, err := service.BySlug(context.Background(), "oameni-si-destine")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestEpisodesCachedPerSlug(t *testing.T) {
	t.Parallel()

	cms := &fakeCMS{episodes: map[string][]Episode{
		"oameni-si-destine": {{Title: "Episodul 1", EpisodeNumber: 1, VideoURL: "https://youtu.be/AAAAAAAAAAA"}},
	}}
	service := newTestService(t, cms)

	episodes, err := service.Episodes(context.Background(), "oameni-si-destine")
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 1, episodes[0].EpisodeNumber)

	other, err := service.Episodes(context.Background(), "alta-serie")
	require.NoError(t, err)
	assert.Empty(t, other)
}
