// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package sheets adapts the studio's production spreadsheet into the canonical
catalogue shapes.

The spreadsheet is read through the public visualization query endpoint,
which returns JSON wrapped in a JavaScript callback. One tab per film
category; rows are free-form, so every cell goes through the text parsing
helpers before anything reaches a canonical entity.

This source is deliberately forgiving: a tab that fails to load contributes
zero rows instead of an error, because the editors' spreadsheet being briefly
unreachable must never take the film catalogue down with it.
*/
package sheets

import (
	"bytes"
	stdctx "context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/owhstudio/owh-api/internal/platform/httpx"
)

// gviz wire shapes, as served by the visualization query endpoint.
type gvizResponse struct {
	Table gvizTable `json:"table"`
}

type gvizTable struct {
	Cols []gvizColumn `json:"cols"`
	Rows []gvizRow    `json:"rows"`
}

type gvizColumn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizCell struct {
	V any     `json:"v"`
	F *string `json:"f"`
}

// Config holds the spreadsheet source settings.
type Config struct {
	// BaseURL is the document host; defaults to the public one.
	BaseURL string
	// SheetID is the spreadsheet document identifier.
	SheetID string
	// Timeout bounds each fetch attempt.
	Timeout time.Duration
	// Retries is the attempt budget per request.
	Retries int
}

// Client reads spreadsheet tabs and maps their rows into catalogue entities.
type Client struct {
	transport *httpx.Client
	sheetID   string
	logger    *slog.Logger
}

// documentsBaseURL is where published spreadsheets are served from.
const documentsBaseURL = "https://docs.google.com"

// New creates a spreadsheet client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = documentsBaseURL
	}

	transport := httpx.New(httpx.Config{
		BaseURL: baseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	}, logger)

	return &Client{
		transport: transport,
		sheetID:   cfg.SheetID,
		logger:    logger,
	}
}

// FetchTable loads one tab of the spreadsheet as rows keyed by column label.
//
// The tab-scoped query is tried first; some published spreadsheets reject the
// sheet parameter, so an un-scoped query of the default tab is the fallback.
// Both failing yields an empty slice, never an error.
func (client *Client) FetchTable(context stdctx.Context, tab string) []Row {
	endpoint := fmt.Sprintf("/spreadsheets/d/%s/gviz/tq", client.sheetID)

	variants := []url.Values{
		{"tqx": {"out:json"}, "sheet": {tab}},
		{"tqx": {"out:json"}},
	}

	for _, params := range variants {
		body, err := client.transport.GetBytes(context, endpoint, params)
		if err != nil {
			client.logger.WarnContext(context, "sheets_fetch_failed",
				slog.String("tab", tab),
				slog.String("error", err.Error()),
			)
			continue
		}

		rows, err := parseGviz(body)
		if err != nil {
			client.logger.WarnContext(context, "sheets_parse_failed",
				slog.String("tab", tab),
				slog.String("error", err.Error()),
			)
			continue
		}

		return rows
	}

	return nil
}

// parseGviz strips the JavaScript callback wrapper and flattens the table
// into rows keyed by column label.
func parseGviz(body []byte) ([]Row, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("sheets: response contains no JSON object")
	}

	var response gvizResponse
	if err := json.Unmarshal(body[start:end+1], &response); err != nil {
		return nil, fmt.Errorf("sheets: decode visualization payload: %w", err)
	}

	labels := make([]string, len(response.Table.Cols))
	for index, column := range response.Table.Cols {
		switch {
		case column.Label != "":
			labels[index] = column.Label
		case column.ID != "":
			labels[index] = column.ID
		default:
			labels[index] = fmt.Sprintf("col_%d", index)
		}
	}

	rows := make([]Row, 0, len(response.Table.Rows))
	for _, wireRow := range response.Table.Rows {
		row := NewRow()
		for index, cell := range wireRow.C {
			label := fmt.Sprintf("col_%d", index)
			if index < len(labels) {
				label = labels[index]
			}

			if cell == nil {
				row.Set(label, "")
				continue
			}

			row.Set(label, stringifyCell(cell.V))
			if cell.F != nil && *cell.F != "" {
				row.Set(label+formattedSuffix, *cell.F)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// stringifyCell renders a raw cell value. Numbers drop trailing zeros so a
// year cell delivered as 2021.0 reads back as "2021".
func stringifyCell(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
