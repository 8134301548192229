// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package equipment defines the rental-equipment catalogue and its read-side
service.

Equipment backs the rental page, which must never render empty: the service
falls back from the CMS through the relational store down to a built-in
dataset. Availability is a soft flag maintained by the studio, not a booking
calendar.
*/
package equipment

// Equipment is the canonical rental-equipment shape served by the API.
type Equipment struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Description    string         `json:"description,omitempty"`
	DailyRate      float64        `json:"daily_rate"`
	ImageURL       string         `json:"image_url,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	IsAvailable    bool           `json:"is_available"`
}
