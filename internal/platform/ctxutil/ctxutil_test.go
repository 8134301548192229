// Copyright (c) 2026 OWH Studio. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owhstudio/owh-api/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies logger injection and the default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// 1. Without injection, the default logger is returned
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Injected logger round-trips
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}
