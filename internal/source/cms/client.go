// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package cms adapts the headless CMS REST API into the canonical catalogue
shapes.

Every resource the CMS exposes is reachable here: films, productions, series
and their episodes, equipment, team, blog posts with taxonomy, projects,
events, design settings, and menus. List endpoints return a paginated
envelope; the listAll helper walks the cursor until the last page.

The write methods exist for the admin passthrough surface. They mutate the
CMS and nothing else; cache invalidation is the calling service's job.
*/
package cms

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/owhstudio/owh-api/internal/core/equipment"
	"github.com/owhstudio/owh-api/internal/core/film"
	"github.com/owhstudio/owh-api/internal/core/production"
	"github.com/owhstudio/owh-api/internal/core/series"
	"github.com/owhstudio/owh-api/internal/core/site"
	"github.com/owhstudio/owh-api/internal/platform/httpx"
	"github.com/owhstudio/owh-api/pkg/slice"
)

// listAllPerPage is the page size used when draining a list endpoint.
const listAllPerPage = 100

// Query carries the list parameters the CMS understands. Zero values are
// omitted from the request.
type Query struct {
	Page     int
	PerPage  int
	Search   string
	Category string
	Tag      string
	Year     int
	OrderBy  string
	Order    string
}

// Values serializes the query into URL parameters.
func (query Query) Values() url.Values {
	values := url.Values{}

	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(query.PerPage))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Tag != "" {
		values.Set("tag", query.Tag)
	}
	if query.Year > 0 {
		values.Set("year", strconv.Itoa(query.Year))
	}
	if query.OrderBy != "" {
		values.Set("orderby", query.OrderBy)
	}
	if query.Order != "" {
		values.Set("order", query.Order)
	}

	return values
}

// Config holds the CMS source settings.
type Config struct {
	// BaseURL is the CMS API root, e.g. https://cms.owh.md/wp-json/owh/v1.
	BaseURL string
	// Timeout bounds each request attempt.
	Timeout time.Duration
	// Retries is the attempt budget per request.
	Retries int
}

// Client is the typed CMS API client.
type Client struct {
	transport *httpx.Client
	logger    *slog.Logger
}

// New creates a CMS client.
func New(cfg Config, logger *slog.Logger) *Client {
	transport := httpx.New(httpx.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	}, logger)

	return &Client{transport: transport, logger: logger}
}

// listPage fetches one page of a list endpoint.
func listPage[T any](context stdctx.Context, client *Client, endpoint string, query Query) (Paginated[T], error) {
	var page Paginated[T]
	if err := client.transport.Get(context, endpoint, query.Values(), &page); err != nil {
		return Paginated[T]{}, err
	}
	return page, nil
}

// listAll drains a list endpoint page by page until the cursor reports the
// last page. A short first page also terminates the walk, guarding against
// an envelope with a wrong total_pages.
func listAll[T any](context stdctx.Context, client *Client, endpoint string, query Query) ([]T, error) {
	if query.PerPage == 0 {
		query.PerPage = listAllPerPage
	}
	query.Page = 1

	var items []T
	for {
		page, err := listPage[T](context, client, endpoint, query)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Data...)

		if page.Pagination.TotalPages == 0 ||
			page.Pagination.Page >= page.Pagination.TotalPages {
			return items, nil
		}
		if len(page.Data) == 0 {
			client.logger.WarnContext(context, "cms_pagination_short_page",
				slog.String("endpoint", endpoint),
				slog.Int("page", page.Pagination.Page),
				slog.Int("total_pages", page.Pagination.TotalPages),
			)
			return items, nil
		}

		query.Page = page.Pagination.Page + 1
	}
}

// # Films

// ListFilms returns every film, optionally narrowed to one category.
func (client *Client) ListFilms(context stdctx.Context, category string) ([]film.Film, error) {
	wire, err := listAll[wireFilm](context, client, "/films", Query{Category: category})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireFilm.toFilm), nil
}

// FeaturedFilms returns the homepage selection: the six most recent films.
func (client *Client) FeaturedFilms(context stdctx.Context) ([]film.Film, error) {
	page, err := listPage[wireFilm](context, client, "/films", Query{
		PerPage: 6,
		OrderBy: "date",
		Order:   "desc",
	})
	if err != nil {
		return nil, err
	}
	return slice.Map(page.Data, wireFilm.toFilm), nil
}

// SearchFilms runs a full-text search over the film catalogue.
func (client *Client) SearchFilms(context stdctx.Context, term string) ([]film.Film, error) {
	wire, err := listAll[wireFilm](context, client, "/films", Query{Search: term})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireFilm.toFilm), nil
}

// FilmBySlug fetches one film. Returns nil when the CMS reports not found.
func (client *Client) FilmBySlug(context stdctx.Context, slug string) (*film.Film, error) {
	var wire wireFilm
	if err := client.transport.Get(context, "/films/"+url.PathEscape(slug), nil, &wire); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	mapped := wire.toFilm()
	return &mapped, nil
}

// CreateFilm, UpdateFilm and DeleteFilm are the admin passthrough writes.

func (client *Client) CreateFilm(context stdctx.Context, payload map[string]any) (*film.Film, error) {
	var wire wireFilm
	if err := client.transport.Post(context, "/films", payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toFilm()
	return &mapped, nil
}

func (client *Client) UpdateFilm(context stdctx.Context, slug string, payload map[string]any) (*film.Film, error) {
	var wire wireFilm
	if err := client.transport.Put(context, "/films/"+url.PathEscape(slug), payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toFilm()
	return &mapped, nil
}

func (client *Client) DeleteFilm(context stdctx.Context, slug string) error {
	return client.transport.Delete(context, "/films/"+url.PathEscape(slug))
}

// # Productions

// ListProductions returns every production, optionally narrowed to one category.
func (client *Client) ListProductions(context stdctx.Context, category string) ([]production.Production, error) {
	wire, err := listAll[wireProduction](context, client, "/productions", Query{Category: category})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireProduction.toProduction), nil
}

// ProductionBySlug fetches one production. Returns nil when not found.
func (client *Client) ProductionBySlug(context stdctx.Context, slug string) (*production.Production, error) {
	var wire wireProduction
	if err := client.transport.Get(context, "/productions/"+url.PathEscape(slug), nil, &wire); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	mapped := wire.toProduction()
	return &mapped, nil
}

func (client *Client) CreateProduction(context stdctx.Context, payload map[string]any) (*production.Production, error) {
	var wire wireProduction
	if err := client.transport.Post(context, "/productions", payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toProduction()
	return &mapped, nil
}

func (client *Client) UpdateProduction(context stdctx.Context, slug string, payload map[string]any) (*production.Production, error) {
	var wire wireProduction
	if err := client.transport.Put(context, "/productions/"+url.PathEscape(slug), payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toProduction()
	return &mapped, nil
}

func (client *Client) DeleteProduction(context stdctx.Context, slug string) error {
	return client.transport.Delete(context, "/productions/"+url.PathEscape(slug))
}

// # Series

// ListSeries returns every series.
func (client *Client) ListSeries(context stdctx.Context) ([]series.Series, error) {
	wire, err := listAll[wireSeries](context, client, "/series", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireSeries.toSeries), nil
}

// SeriesBySlug fetches one series. Returns nil when not found.
func (client *Client) SeriesBySlug(context stdctx.Context, slug string) (*series.Series, error) {
	var wire wireSeries
	if err := client.transport.Get(context, "/series/"+url.PathEscape(slug), nil, &wire); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	mapped := wire.toSeries()
	return &mapped, nil
}

// SeriesEpisodes lists the episodes of one series.
func (client *Client) SeriesEpisodes(context stdctx.Context, slug string) ([]series.Episode, error) {
	wire, err := listAll[wireEpisode](context, client, fmt.Sprintf("/series/%s/episodes", url.PathEscape(slug)), Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireEpisode.toEpisode), nil
}

// # Equipment

// ListEquipment returns the rental inventory, optionally narrowed to one category.
func (client *Client) ListEquipment(context stdctx.Context, category string) ([]equipment.Equipment, error) {
	wire, err := listAll[wireEquipment](context, client, "/equipment", Query{Category: category})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireEquipment.toEquipment), nil
}

// EquipmentBySlug fetches one equipment item. Returns nil when not found.
func (client *Client) EquipmentBySlug(context stdctx.Context, slug string) (*equipment.Equipment, error) {
	var wire wireEquipment
	if err := client.transport.Get(context, "/equipment/"+url.PathEscape(slug), nil, &wire); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	mapped := wire.toEquipment()
	return &mapped, nil
}

func (client *Client) CreateEquipment(context stdctx.Context, payload map[string]any) (*equipment.Equipment, error) {
	var wire wireEquipment
	if err := client.transport.Post(context, "/equipment", payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toEquipment()
	return &mapped, nil
}

func (client *Client) UpdateEquipment(context stdctx.Context, slug string, payload map[string]any) (*equipment.Equipment, error) {
	var wire wireEquipment
	if err := client.transport.Put(context, "/equipment/"+url.PathEscape(slug), payload, &wire); err != nil {
		return nil, err
	}
	mapped := wire.toEquipment()
	return &mapped, nil
}

func (client *Client) DeleteEquipment(context stdctx.Context, slug string) error {
	return client.transport.Delete(context, "/equipment/"+url.PathEscape(slug))
}

// # Site content

// ListTeam returns the studio roster.
func (client *Client) ListTeam(context stdctx.Context) ([]site.TeamMember, error) {
	wire, err := listAll[wireTeamMember](context, client, "/team", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireTeamMember.toTeamMember), nil
}

// ListPosts returns blog posts, optionally filtered by category or tag.
func (client *Client) ListPosts(context stdctx.Context, filter site.PostQuery) ([]site.Post, error) {
	query := Query{Search: filter.Search, Category: filter.Category, Tag: filter.Tag}
	wire, err := listAll[wirePost](context, client, "/posts", query)
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wirePost.toPost), nil
}

// PostBySlug fetches one post. Returns nil when not found.
func (client *Client) PostBySlug(context stdctx.Context, slug string) (*site.Post, error) {
	var wire wirePost
	if err := client.transport.Get(context, "/posts/"+url.PathEscape(slug), nil, &wire); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	mapped := wire.toPost()
	return &mapped, nil
}

// ListCategories returns the blog category taxonomy.
func (client *Client) ListCategories(context stdctx.Context) ([]site.Taxonomy, error) {
	wire, err := listAll[wireTaxonomy](context, client, "/categories", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireTaxonomy.toTaxonomy), nil
}

// ListTags returns the blog tag taxonomy.
func (client *Client) ListTags(context stdctx.Context) ([]site.Taxonomy, error) {
	wire, err := listAll[wireTaxonomy](context, client, "/tags", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireTaxonomy.toTaxonomy), nil
}

// ListProjects returns the special projects.
func (client *Client) ListProjects(context stdctx.Context) ([]site.Project, error) {
	wire, err := listAll[wireProject](context, client, "/projects", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireProject.toProject), nil
}

// ListEvents returns the public events.
func (client *Client) ListEvents(context stdctx.Context) ([]site.Event, error) {
	wire, err := listAll[wireEvent](context, client, "/events", Query{})
	if err != nil {
		return nil, err
	}
	return slice.Map(wire, wireEvent.toEvent), nil
}

// DesignSettings fetches the site chrome settings.
func (client *Client) DesignSettings(context stdctx.Context) (*site.DesignSettings, error) {
	var settings site.DesignSettings
	if err := client.transport.Get(context, "/design", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Menus fetches the navigation trees.
func (client *Client) Menus(context stdctx.Context) ([]site.Menu, error) {
	var wire []wireMenu
	if err := client.transport.Get(context, "/menus", nil, &wire); err != nil {
		return nil, err
	}
	return slice.Map(wire, wireMenu.toMenu), nil
}

// isNotFound reports whether a transport error is an upstream 404.
func isNotFound(err error) bool {
	var transportErr *httpx.Error
	return errors.As(err, &transportErr) && transportErr.Status == http.StatusNotFound
}
