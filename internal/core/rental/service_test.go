// Copyright (c) 2026 OWH Studio. All rights reserved.

package rental

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/platform/apperr"
)

type fakeRepo struct {
	inserted []Request
	statuses map[string]string
}

func (fake *fakeRepo) InsertRequest(_ context.Context, request *Request) error {
	fake.inserted = append(fake.inserted, *request)
	return nil
}

func (fake *fakeRepo) ListRequests(context.Context) ([]Request, error) {
	return fake.inserted, nil
}

func (fake *fakeRepo) UpdateRequestStatus(_ context.Context, id, status string) error {
	if fake.statuses == nil {
		fake.statuses = map[string]string{}
	}
	fake.statuses[id] = status
	return nil
}

type fakeInvalidator struct {
	calls int
}

func (fake *fakeInvalidator) InvalidateViews(context.Context) { fake.calls++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func validInput() SubmitInput {
	return SubmitInput{
		FullName:  "Ion Creangă",
		Email:     "ion@example.md",
		Phone:     "+373 69 000 000",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Items: []Item{
			{EquipmentID: "sony-fx3", Name: "Sony FX3", Quantity: 1, DailyRate: 150},
			{EquipmentID: "aputure-600d", Name: "Aputure 600D", Quantity: 2, DailyRate: 80},
		},
	}
}

func TestSubmitStoresPendingRequest(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	invalidator := &fakeInvalidator{}
	service := NewService(repo, invalidator, testLogger())

	created, err := service.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), created.StartDate)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, 1, invalidator.calls)
}

func TestSubmitComputesTotalAmount(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeRepo{}, nil, testLogger())

	// 3 inclusive days, 150 + 2*80 = 310 per day.
	created, err := service.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.InDelta(t, 930.0, created.TotalAmount, 0.001)
}

func TestSubmitKeepsClientTotalWhenUnpriced(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeRepo{}, nil, testLogger())

	input := validInput()
	input.Items = []Item{{EquipmentID: "red-komodo", Name: "RED Komodo", Quantity: 1}}
	input.TotalAmount = 500

	created, err := service.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, created.TotalAmount, 0.001)
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeRepo{}, nil, testLogger())

	cases := map[string]func(*SubmitInput){
		"missing name":   func(input *SubmitInput) { input.FullName = "" },
		"bad email":      func(input *SubmitInput) { input.Email = "not-an-email" },
		"bad date":       func(input *SubmitInput) { input.StartDate = "01/09/2026" },
		"inverted dates": func(input *SubmitInput) { input.StartDate, input.EndDate = input.EndDate, input.StartDate },
		"no items":       func(input *SubmitInput) { input.Items = nil },
		"zero quantity":  func(input *SubmitInput) { input.Items[0].Quantity = 0 },
	}

	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input := validInput()
			mutate(&input)

			_, err := service.Submit(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	service := NewService(repo, nil, testLogger())

	err := service.UpdateStatus(context.Background(), "some-id", "archived")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	require.NoError(t, service.UpdateStatus(context.Background(), "some-id", StatusApproved))
	assert.Equal(t, StatusApproved, repo.statuses["some-id"])
}
