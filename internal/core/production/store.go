// Copyright (c) 2026 OWH Studio. All rights reserved.

package production

import stdctx "context"

// Repository is the relational read source for productions, second in the
// fallback chain after the CMS.
type Repository interface {
	ListProductions(context stdctx.Context) ([]Production, error)
}

// CMSSource is the primary source, plus the admin passthrough writes.
type CMSSource interface {
	ListProductions(context stdctx.Context, category string) ([]Production, error)
	ProductionBySlug(context stdctx.Context, slug string) (*Production, error)
	CreateProduction(context stdctx.Context, payload map[string]any) (*Production, error)
	UpdateProduction(context stdctx.Context, slug string, payload map[string]any) (*Production, error)
	DeleteProduction(context stdctx.Context, slug string) error
}
