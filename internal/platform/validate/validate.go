// Copyright (c) 2026 OWH Studio. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid
// data: rental requests and contact submissions are the primary consumers.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/owhstudio/owh-api/internal/platform/apperr"
)

var (
	// slugRegex matches slug format: lowercase letters, digits, hyphens.
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// DateLayout is the accepted wire format for rental interval dates.
const DateLayout = "2006-01-02"

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Slug fails if the value is not a valid URL slug.
//
// # Format
//
// Slugs must consist only of lowercase letters, digits, and hyphens,
// with no leading or trailing hyphens.
func (v *Validator) Slug(field, value string) *Validator {
	if !slugRegex.MatchString(value) {
		v.add(field, "Must be a valid URL slug (lowercase letters, digits, hyphens only)")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Date fails if the value is not a calendar date in [DateLayout] form.
func (v *Validator) Date(field, value string) *Validator {
	if _, err := time.Parse(DateLayout, value); err != nil {
		v.add(field, "Must be a date in YYYY-MM-DD format")
	}
	return v
}

// DateOrder fails when both values parse as dates and the end precedes the
// start. Unparsable values are left for the individual Date rules to report.
func (v *Validator) DateOrder(field, start, end string) *Validator {
	startDate, errStart := time.Parse(DateLayout, start)
	endDate, errEnd := time.Parse(DateLayout, end)
	if errStart == nil && errEnd == nil && endDate.Before(startDate) {
		v.add(field, "End date must not precede the start date")
	}
	return v
}

// Positive fails if the numeric value is not strictly greater than zero.
func (v *Validator) Positive(field string, value float64) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive number")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("equipment_items", len(items) == 0, "At least one item is required")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// HasErrors reports whether any rule in the chain failed.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns the accumulated failures as a single [apperr.AppError],
// or nil when every rule passed.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends one field-level failure.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
