// Copyright (c) 2026 OWH Studio. All rights reserved.

package production

// builtinProductions is the last link of the fallback chain: a small showcase
// kept in-process so the productions page still renders when both the CMS and
// the database are unreachable.
var builtinProductions = []Production{
	{
		ID:              "campanie-brand-x",
		Title:           "Campanie Brand X",
		Slug:            "campanie-brand-x",
		Client:          "Brand X",
		Category:        "publicitate",
		PreviewMediaURL: "https://images.unsplash.com/photo-1492691527719-9d1e07e534b4?w=600&h=400&fit=crop",
	},
	{
		ID:              "campanie-educationala",
		Title:           "Campanie Educațională",
		Slug:            "campanie-educationala",
		Client:          "Ministerul Educației",
		Category:        "spoturi_sociale",
		PreviewMediaURL: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=600&h=400&fit=crop",
	},
	{
		ID:              "prezentare-corporativa",
		Title:           "Prezentare Corporativă",
		Slug:            "prezentare-corporativa",
		Client:          "Corp Industries",
		Category:        "filme_institutionale",
		PreviewMediaURL: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=600&h=400&fit=crop",
	},
	{
		ID:              "animatie-explicativa",
		Title:           "Animație Explicativă",
		Slug:            "animatie-explicativa",
		Client:          "Tech Startup",
		Category:        "animatii",
		PreviewMediaURL: "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=600&h=400&fit=crop",
	},
}

// BuiltinProductions returns a copy of the built-in showcase.
func BuiltinProductions() []Production {
	out := make([]Production, len(builtinProductions))
	copy(out, builtinProductions)
	return out
}
