// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

import stdctx "context"

// Repository is the relational read source for equipment, second in the
// fallback chain after the CMS.
type Repository interface {
	ListEquipment(context stdctx.Context) ([]Equipment, error)
}

// CMSSource is the primary source, plus the admin passthrough writes.
type CMSSource interface {
	ListEquipment(context stdctx.Context, category string) ([]Equipment, error)
	EquipmentBySlug(context stdctx.Context, slug string) (*Equipment, error)
	CreateEquipment(context stdctx.Context, payload map[string]any) (*Equipment, error)
	UpdateEquipment(context stdctx.Context, slug string, payload map[string]any) (*Equipment, error)
	DeleteEquipment(context stdctx.Context, slug string) error
}
