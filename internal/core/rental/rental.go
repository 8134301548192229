// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package rental defines equipment rental requests: the one user-submitted
record type with a monetary amount and a status lifecycle.

Requests are written to the relational store only; no external content source
is involved. A submission invalidates the cached equipment views, because
availability may have been edited alongside.
*/
package rental

import "time"

// Status values a request moves through. New requests start as pending; the
// studio advances them out-of-band.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Statuses lists every recognized status value.
func Statuses() []string {
	return []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
}

// Item is one requested piece of equipment inside a request.
type Item struct {
	EquipmentID string  `json:"equipment_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	DailyRate   float64 `json:"daily_rate"`
}

// Request is a stored rental request.
type Request struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Items       []Item    `json:"equipment_items"`
	Message     string    `json:"message,omitempty"`
	TotalAmount float64   `json:"total_amount,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
