// Copyright (c) 2026 OWH Studio. All rights reserved.

package sheets

import (
	stdctx "context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/owhstudio/owh-api/internal/core/film"
	"github.com/owhstudio/owh-api/pkg/category"
	"github.com/owhstudio/owh-api/pkg/slug"
	"github.com/owhstudio/owh-api/pkg/textparse"
)

// filmTabs maps each film category to its spreadsheet tab. The editors
// maintain one tab per category.
var filmTabs = map[string]string{
	film.CategoryDocumentare: "Documentare",
	film.CategoryFictiune:    "Ficțiune",
	film.CategoryPrezentare:  "Filme de prezentare",
}

// defaultFilmTab is queried when no per-category tab yields rows.
const defaultFilmTab = "Filme"

// Column label candidates per film field. Headers drift between Romanian and
// English across tabs, so each field accepts several labels.
var (
	titleColumns       = []string{"Titlu", "Title", "Nume", "Film"}
	slugColumns        = []string{"Slug"}
	posterColumns      = []string{"Poster", "Afiș", "Afis", "Imagine poster", "Image"}
	categoryColumns    = []string{"Categorie", "Category"}
	yearColumns        = []string{"An", "Anul", "Year", "An apariție"}
	durationColumns    = []string{"Durata", "Durată", "Duration", "Minute"}
	genreColumns       = []string{"Gen", "Genre"}
	directorColumns    = []string{"Regie", "Regizor", "Director"}
	videoColumns       = []string{"Trailer", "Video", "Link", "YouTube"}
	descriptionColumns = []string{"Sinopsis", "Descriere", "Description"}
)

// creditRoles is the fixed crew-role list collected from row columns, in
// display order.
var creditRoles = []struct {
	role    string
	columns []string
}{
	{"Regie", []string{"Regie"}},
	{"Scenariu", []string{"Scenariu"}},
	{"Imagine", []string{"Imagine"}},
	{"Montaj", []string{"Montaj"}},
	{"Sunet", []string{"Sunet"}},
	{"Design grafic", []string{"Design grafic"}},
	{"Voce", []string{"Voce"}},
	{"Muzică", []string{"Muzică"}},
	{"Asistenţă tehnică", []string{"Asistenţă tehnică"}},
	{"Coordonator de proiect", []string{"Coordonator de proiect"}},
	{"Producţie", []string{"Producţie"}},
	{"Echipă", []string{"echipa", "Echipa"}},
}

// ListFilms returns the films of one category, or of every category when
// targetCategory is empty or "all". Tabs are fetched concurrently; a failing
// tab contributes nothing. Rows without a title are dropped.
func (client *Client) ListFilms(context stdctx.Context, targetCategory string) ([]film.Film, error) {
	normalized := category.Normalize(targetCategory)

	type tabSelection struct {
		category string
		tab      string
	}

	var selected []tabSelection
	if normalized != "" && normalized != "all" {
		tab, known := filmTabs[normalized]
		if !known {
			tab = defaultFilmTab
		}
		selected = []tabSelection{{category: normalized, tab: tab}}
	} else {
		// Fixed order keeps the aggregate listing stable across fetches.
		for _, categorySlug := range []string{film.CategoryDocumentare, film.CategoryFictiune, film.CategoryPrezentare} {
			selected = append(selected, tabSelection{category: categorySlug, tab: filmTabs[categorySlug]})
		}
	}

	perTab := make([][]Row, len(selected))
	group, groupCtx := errgroup.WithContext(context)
	for index, selection := range selected {
		index, selection := index, selection
		group.Go(func() error {
			rows := client.FetchTable(groupCtx, selection.tab)
			for rowIndex := range rows {
				rows[rowIndex].SetTabCategory(selection.category)
			}
			perTab[index] = rows
			return nil
		})
	}
	// FetchTable never errors, so the group cannot either.
	_ = group.Wait()

	var rows []Row
	for _, tabRows := range perTab {
		rows = append(rows, tabRows...)
	}

	// Every per-category tab coming back empty usually means the tabs were
	// renamed; the default tab is the last resort.
	if len(rows) == 0 {
		rows = client.FetchTable(context, defaultFilmTab)
	}

	films := make([]film.Film, 0, len(rows))
	for _, row := range rows {
		mapped := mapFilmRow(row)
		if mapped.Title == "" {
			continue
		}
		if normalized != "" && normalized != "all" && !strings.EqualFold(mapped.Category, normalized) {
			continue
		}
		films = append(films, mapped)
	}

	return films, nil
}

// FilmBySlug scans the full catalogue for a slug match. Returns nil when no
// film matches.
func (client *Client) FilmBySlug(context stdctx.Context, target string) (*film.Film, error) {
	films, err := client.ListFilms(context, "")
	if err != nil {
		return nil, err
	}

	for index := range films {
		if films[index].Slug == target {
			return &films[index], nil
		}
	}

	return nil, nil
}

// mapFilmRow normalizes one spreadsheet row into the canonical film shape.
func mapFilmRow(row Row) film.Film {
	title := strings.TrimSpace(row.Pick(titleColumns...))

	filmSlug := strings.TrimSpace(row.Pick(slugColumns...))
	if filmSlug == "" {
		filmSlug = slug.From(title)
	}

	rawCategory := strings.TrimSpace(row.Pick(categoryColumns...))
	if rawCategory == "" {
		rawCategory = row.TabCategory()
	}

	trailer := textparse.Sanitize(row.Pick(videoColumns...))

	poster := posterFromRow(row, trailer)

	if poster == "" && trailer != "" {
		if thumbnail, ok := textparse.YouTubeThumbnail(trailer); ok {
			poster = thumbnail
		}
	}

	credits := make([]film.Credit, 0, len(creditRoles))
	for _, role := range creditRoles {
		if name := strings.TrimSpace(row.Pick(role.columns...)); name != "" {
			credits = append(credits, film.Credit{Role: role.role, Name: name})
		}
	}
	if len(credits) == 0 {
		credits = nil
	}

	year, _ := textparse.ParseYear(row.Pick(yearColumns...))
	duration, _ := textparse.ParseNumber(row.Pick(durationColumns...))

	return film.Film{
		ID:          filmSlug,
		Title:       title,
		Slug:        filmSlug,
		PosterURL:   poster,
		Category:    category.Normalize(rawCategory),
		ReleaseYear: year,
		Duration:    duration,
		Genre:       strings.TrimSpace(row.Pick(genreColumns...)),
		Director:    strings.TrimSpace(row.Pick(directorColumns...)),
		TrailerURL:  trailer,
		Description: strings.TrimSpace(row.Pick(descriptionColumns...)),
		Credits:     credits,
	}
}

// posterFromRow resolves the poster image: the poster column first (formula
// or raw URL), then image-looking URLs elsewhere in the row, then any
// URL-bearing cell. The trailer cell is
// skipped during the row scan so the caller can still fall back to its video
// thumbnail. Candidates that are not absolute HTTP(S) URLs resolve to absent.
func posterFromRow(row Row, trailer string) string {
	candidate := ""

	if raw := row.Pick(posterColumns...); raw != "" {
		if url, ok := textparse.FirstURL(raw); ok {
			candidate = url
		} else {
			candidate = textparse.Sanitize(raw)
		}
	}

	if candidate == "" {
		// Image-looking URLs win over arbitrary links elsewhere in the row.
		candidate = scanRowURL(row, trailer, true)
	}
	if candidate == "" {
		candidate = scanRowURL(row, trailer, false)
	}

	if !textparse.IsAbsoluteHTTPURL(candidate) {
		return ""
	}

	return textparse.NormalizeImageURL(candidate)
}

// scanRowURL finds the first URL in the row outside the trailer cell,
// optionally restricted to image-looking candidates.
func scanRowURL(row Row, trailer string, imagesOnly bool) string {
	return row.Scan(func(value string) string {
		url, ok := textparse.FirstURL(value)
		if !ok || url == trailer {
			return ""
		}
		if imagesOnly && !textparse.LooksLikeImageURL(url) {
			return ""
		}
		return url
	})
}
