// Copyright (c) 2026 OWH Studio. All rights reserved.

package contact

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/platform/apperr"
)

type fakeRepo struct {
	inserted []Submission
}

func (fake *fakeRepo) InsertSubmission(_ context.Context, submission *Submission) error {
	fake.inserted = append(fake.inserted, *submission)
	return nil
}

func (fake *fakeRepo) ListSubmissions(context.Context) ([]Submission, error) {
	return fake.inserted, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestSubmitStoresNewMessage(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	service := NewService(repo, testLogger())

	created, err := service.Submit(context.Background(), SubmitInput{
		FullName: "Maria Lungu",
		Email:    "maria@example.md",
		Message:  "Bună ziua, aș dori o ofertă pentru un spot publicitar.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, repo.inserted, 1)
}

func TestSubmitOptionalFields(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeRepo{}, testLogger())

	created, err := service.Submit(context.Background(), SubmitInput{
		FullName: "Maria Lungu",
		Email:    "maria@example.md",
		Phone:    "+373 69 111 222",
		Subject:  "Colaborare",
		Message:  "Detalii despre un proiect documentar.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Colaborare", created.Subject)
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeRepo{}, testLogger())

	cases := map[string]SubmitInput{
		"missing name":    {Email: "maria@example.md", Message: "text"},
		"missing email":   {FullName: "Maria", Message: "text"},
		"bad email":       {FullName: "Maria", Email: "nope", Message: "text"},
		"missing message": {FullName: "Maria", Email: "maria@example.md"},
	}

	for name, input := range cases {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := service.Submit(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}
