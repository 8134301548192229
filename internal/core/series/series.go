// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package series defines episodic productions (web series, emissions) and
their episodes. Read-only, sourced from the CMS.
*/
package series

// Series is an episodic production.
type Series struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	PosterURL     string `json:"poster_url,omitempty"`
	IsActive      bool   `json:"is_active"`
	EpisodesCount int    `json:"episodes_count,omitempty"`
}

// Episode is one entry of a series.
type Episode struct {
	ID            string  `json:"id"`
	SeriesID      string  `json:"series_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	EpisodeNumber int     `json:"episode_number"`
	VideoURL      string  `json:"video_url"`
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
}
