// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package production defines commissioned work (advertising spots, social
campaigns, institutional films) and its read-side service.

Unlike films, productions carry a looping preview clip instead of a static
poster, and a client attribution. The category vocabulary is fixed:
publicitate, spoturi_sociale, filme_institutionale, animatii, emisiuni.
*/
package production

// Production is the canonical commissioned-work shape served by the API.
type Production struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category"`
	Client          string   `json:"client,omitempty"`
	Year            int      `json:"year,omitempty"`
	PreviewMediaURL string   `json:"preview_media_url,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
	IsFeatured      bool     `json:"is_featured,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}
