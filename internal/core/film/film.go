// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package film defines the canonical film entity and its read-side service.

Films are the studio's public portfolio. They are not stored locally: the
service resolves them from external content sources (the production
spreadsheet first, the CMS as fallback), normalizes them into the shape
defined here, and caches the resolved snapshots.

Core Responsibility:

  - Catalogue: Title, slug, poster, category, and release metadata.
  - Credits: The fixed crew-role list collected from the source columns.
  - Discovery: Category filtering, featured selection, and slug lookup.
*/
package film

// Category values a film can carry after normalization. Unrecognized source
// values pass through in folded form.
const (
	CategoryDocumentare = "documentare"
	CategoryFictiune    = "fictiune"
	CategoryPrezentare  = "prezentare"
)

// Credit is one crew entry, e.g. {Role: "Regie", Name: "Ion Creangă"}.
type Credit struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Film is the canonical, source-independent film shape served by the API.
// Optional metadata absent from a source stays zero-valued and is omitted
// from the JSON representation.
type Film struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Category    string   `json:"category,omitempty"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Duration    float64  `json:"duration,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	Director    string   `json:"director,omitempty"`
	TrailerURL  string   `json:"trailer_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Credits     []Credit `json:"credits,omitempty"`
}
