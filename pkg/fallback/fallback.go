// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package fallback models an ordered chain of read sources for one entity type.

Catalog entities can be served by several backends of decreasing authority —
CMS, then the relational store, then a literal in-process dataset. Each source
satisfies the same read contract and is tried in order until one yields a
non-empty result. Keeping the chain explicit makes the per-entity source
policy visible at the wiring site and testable with fakes.
*/
package fallback

import (
	"context"
	"log/slog"
)

// Source is one named strategy in a fallback chain.
type Source[T any] struct {
	// Name identifies the backend in logs ("cms", "postgres", "builtin").
	Name string

	// Load fetches the full result set from this backend.
	Load func(ctx context.Context) ([]T, error)
}

// First tries each source in order and returns the first non-empty result.
//
// A source that errors or returns nothing is logged and skipped; sibling
// sources still run. When every source is exhausted the result is an empty
// list, never an error — list consumers render an empty state, not a failure.
func First[T any](ctx context.Context, logger *slog.Logger, sources ...Source[T]) []T {
	for _, source := range sources {
		items, err := source.Load(ctx)
		if err != nil {
			logger.WarnContext(ctx, "source_failed",
				slog.String("source", source.Name),
				slog.Any("error", err),
			)
			continue
		}

		if len(items) == 0 {
			logger.DebugContext(ctx, "source_empty", slog.String("source", source.Name))
			continue
		}

		return items
	}

	return nil
}
