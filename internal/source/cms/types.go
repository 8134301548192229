// Copyright (c) 2026 OWH Studio. All rights reserved.

package cms

import (
	"strconv"

	"github.com/owhstudio/owh-api/internal/core/equipment"
	"github.com/owhstudio/owh-api/internal/core/film"
	"github.com/owhstudio/owh-api/internal/core/production"
	"github.com/owhstudio/owh-api/internal/core/series"
	"github.com/owhstudio/owh-api/internal/core/site"
)

// Paginated is the CMS list envelope.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		PerPage    int `json:"per_page"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

// Wire shapes, as the CMS serves them. IDs are numeric on the wire and
// stringified into the canonical entities.

type wireCredit struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

type wireFilm struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	PosterURL   string       `json:"poster_url"`
	Category    string       `json:"category"`
	ReleaseYear int          `json:"release_year"`
	Year        int          `json:"year"`
	Duration    float64      `json:"duration"`
	Director    string       `json:"director"`
	TrailerURL  string       `json:"trailer_url"`
	Genre       string       `json:"genre"`
	IsFeatured  bool         `json:"is_featured"`
	Credits     []wireCredit `json:"credits"`
}

func (wire wireFilm) toFilm() film.Film {
	year := wire.ReleaseYear
	if year == 0 {
		year = wire.Year
	}

	var credits []film.Credit
	for _, credit := range wire.Credits {
		credits = append(credits, film.Credit{Role: credit.Role, Name: credit.Name})
	}

	return film.Film{
		ID:          strconv.Itoa(wire.ID),
		Title:       wire.Title,
		Slug:        wire.Slug,
		PosterURL:   wire.PosterURL,
		Category:    wire.Category,
		ReleaseYear: year,
		Duration:    wire.Duration,
		Genre:       wire.Genre,
		Director:    wire.Director,
		TrailerURL:  wire.TrailerURL,
		Description: wire.Description,
		Credits:     credits,
	}
}

type wireProduction struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Client        string   `json:"client"`
	Year          int      `json:"year"`
	GifPreviewURL string   `json:"gif_preview_url"`
	VideoURL      string   `json:"video_url"`
	IsFeatured    bool     `json:"is_featured"`
	Tags          []string `json:"tags"`
}

func (wire wireProduction) toProduction() production.Production {
	return production.Production{
		ID:              strconv.Itoa(wire.ID),
		Title:           wire.Title,
		Slug:            wire.Slug,
		Description:     wire.Description,
		Category:        wire.Category,
		Client:          wire.Client,
		Year:            wire.Year,
		PreviewMediaURL: wire.GifPreviewURL,
		VideoURL:        wire.VideoURL,
		IsFeatured:      wire.IsFeatured,
		Tags:            wire.Tags,
	}
}

type wireEquipment struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Description    string         `json:"description"`
	DailyRate      float64        `json:"daily_rate"`
	ImageURL       string         `json:"image_url"`
	Specifications map[string]any `json:"specifications"`
	IsAvailable    bool           `json:"is_available"`
}

func (wire wireEquipment) toEquipment() equipment.Equipment {
	return equipment.Equipment{
		ID:             strconv.Itoa(wire.ID),
		Name:           wire.Name,
		Slug:           wire.Slug,
		Category:       wire.Category,
		Description:    wire.Description,
		DailyRate:      wire.DailyRate,
		ImageURL:       wire.ImageURL,
		Specifications: wire.Specifications,
		IsAvailable:    wire.IsAvailable,
	}
}

type wireSeries struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	PosterURL     string `json:"poster_url"`
	IsActive      bool   `json:"is_active"`
	EpisodesCount int    `json:"episodes_count"`
}

func (wire wireSeries) toSeries() series.Series {
	return series.Series{
		ID:            strconv.Itoa(wire.ID),
		Title:         wire.Title,
		Slug:          wire.Slug,
		Description:   wire.Description,
		PosterURL:     wire.PosterURL,
		IsActive:      wire.IsActive,
		EpisodesCount: wire.EpisodesCount,
	}
}

type wireEpisode struct {
	ID            int     `json:"id"`
	SeriesID      int     `json:"series_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EpisodeNumber int     `json:"episode_number"`
	VideoURL      string  `json:"video_url"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	Duration      float64 `json:"duration"`
	ReleaseDate   string  `json:"release_date"`
}

func (wire wireEpisode) toEpisode() series.Episode {
	return series.Episode{
		ID:            strconv.Itoa(wire.ID),
		SeriesID:      strconv.Itoa(wire.SeriesID),
		Title:         wire.Title,
		Description:   wire.Description,
		EpisodeNumber: wire.EpisodeNumber,
		VideoURL:      wire.VideoURL,
		ThumbnailURL:  wire.ThumbnailURL,
		Duration:      wire.Duration,
		ReleaseDate:   wire.ReleaseDate,
	}
}

type wireTeamMember struct {
	ID           int               `json:"id"`
	FullName     string            `json:"full_name"`
	Role         string            `json:"role"`
	Bio          string            `json:"bio"`
	PhotoURL     string            `json:"photo_url"`
	DisplayOrder int               `json:"display_order"`
	IsActive     bool              `json:"is_active"`
	SocialLinks  map[string]string `json:"social_links"`
}

func (wire wireTeamMember) toTeamMember() site.TeamMember {
	return site.TeamMember{
		ID:           strconv.Itoa(wire.ID),
		FullName:     wire.FullName,
		Role:         wire.Role,
		Bio:          wire.Bio,
		PhotoURL:     wire.PhotoURL,
		DisplayOrder: wire.DisplayOrder,
		IsActive:     wire.IsActive,
		SocialLinks:  wire.SocialLinks,
	}
}

type wireTaxonomy struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

func (wire wireTaxonomy) toTaxonomy() site.Taxonomy {
	return site.Taxonomy{
		ID:    strconv.Itoa(wire.ID),
		Name:  wire.Name,
		Slug:  wire.Slug,
		Count: wire.Count,
	}
}

type wirePost struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featured_image"`
	Author        struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	} `json:"author"`
	Categories    []wireTaxonomy `json:"categories"`
	Tags          []wireTaxonomy `json:"tags"`
	PublishedDate string         `json:"published_date"`
	ReadTime      int            `json:"read_time"`
}

func (wire wirePost) toPost() site.Post {
	var categories, tags []site.Taxonomy
	for _, taxonomy := range wire.Categories {
		categories = append(categories, taxonomy.toTaxonomy())
	}
	for _, taxonomy := range wire.Tags {
		tags = append(tags, taxonomy.toTaxonomy())
	}

	return site.Post{
		ID:            strconv.Itoa(wire.ID),
		Title:         wire.Title,
		Slug:          wire.Slug,
		Excerpt:       wire.Excerpt,
		Content:       wire.Content,
		FeaturedImage: wire.FeaturedImage,
		Author: site.PostAuthor{
			ID:     strconv.Itoa(wire.Author.ID),
			Name:   wire.Author.Name,
			Avatar: wire.Author.Avatar,
		},
		Categories:    categories,
		Tags:          tags,
		PublishedDate: wire.PublishedDate,
		ReadTime:      wire.ReadTime,
	}
}

type wireEvent struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	FeaturedImage string `json:"featured_image"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time"`
	Location      string `json:"location"`
	TicketsURL    string `json:"tickets_url"`
	IsActive      bool   `json:"is_active"`
}

func (wire wireEvent) toEvent() site.Event {
	return site.Event{
		ID:            strconv.Itoa(wire.ID),
		Title:         wire.Title,
		Slug:          wire.Slug,
		Description:   wire.Description,
		FeaturedImage: wire.FeaturedImage,
		EventDate:     wire.EventDate,
		EventTime:     wire.EventTime,
		Location:      wire.Location,
		TicketsURL:    wire.TicketsURL,
		IsActive:      wire.IsActive,
	}
}

type wireProject struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category"`
	Client        string   `json:"client"`
	Year          int      `json:"year"`
	Status        string   `json:"status"`
	Partners      []string `json:"partners"`
}

func (wire wireProject) toProject() site.Project {
	return site.Project{
		ID:            strconv.Itoa(wire.ID),
		Title:         wire.Title,
		Slug:          wire.Slug,
		Description:   wire.Description,
		FeaturedImage: wire.FeaturedImage,
		Category:      wire.Category,
		Client:        wire.Client,
		Year:          wire.Year,
		Status:        wire.Status,
		Partners:      wire.Partners,
	}
}

type wireMenuItem struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	URL      string         `json:"url"`
	Target   string         `json:"target"`
	Children []wireMenuItem `json:"children"`
}

func (wire wireMenuItem) toMenuItem() site.MenuItem {
	var children []site.MenuItem
	for _, child := range wire.Children {
		children = append(children, child.toMenuItem())
	}

	return site.MenuItem{
		ID:       strconv.Itoa(wire.ID),
		Title:    wire.Title,
		URL:      wire.URL,
		Target:   wire.Target,
		Children: children,
	}
}

type wireMenu struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Items []wireMenuItem `json:"items"`
}

func (wire wireMenu) toMenu() site.Menu {
	items := make([]site.MenuItem, 0, len(wire.Items))
	for _, item := range wire.Items {
		items = append(items, item.toMenuItem())
	}

	return site.Menu{
		ID:    strconv.Itoa(wire.ID),
		Name:  wire.Name,
		Items: items,
	}
}
