// Copyright (c) 2026 OWH Studio. All rights reserved.

package rental

import stdctx "context"

// Repository persists rental requests. Submissions are insert-only from the
// public API; listing and status changes are admin operations.
type Repository interface {
	InsertRequest(context stdctx.Context, request *Request) error
	ListRequests(context stdctx.Context) ([]Request, error)
	UpdateRequestStatus(context stdctx.Context, id, status string) error
}
