// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package contact defines contact-form submissions. Insert-only through the
public API; the studio reads them directly from the database.
*/
package contact

import "time"

// StatusNew is the status every submission starts with.
const StatusNew = "new"

// Submission is a stored contact-form message.
type Submission struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
