// Copyright (c) 2026 OWH Studio. All rights reserved.

package contact

import stdctx "context"

// Repository persists contact submissions. The public API only inserts;
// reads stay available for the studio tooling.
type Repository interface {
	InsertSubmission(context stdctx.Context, submission *Submission) error
	ListSubmissions(context stdctx.Context) ([]Submission, error)
}
