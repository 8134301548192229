// Copyright (c) 2026 OWH Studio. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/internal/platform/apperr"
	"github.com/owhstudio/owh-api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "full_name", "Ion Creangă", false},
		{"empty_string", "full_name", "", true},
		{"whitespace_only", "full_name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Dates covers the rental-interval date rules.
*/
func TestValidator_Dates(t *testing.T) {
	t.Run("valid_interval", func(t *testing.T) {
		v := &validate.Validator{}
		err := v.
			Date("start_date", "2026-09-01").
			Date("end_date", "2026-09-03").
			DateOrder("end_date", "2026-09-01", "2026-09-03").
			Err()
		assert.NoError(t, err)
	})

	t.Run("end_before_start", func(t *testing.T) {
		v := &validate.Validator{}
		err := v.DateOrder("end_date", "2026-09-03", "2026-09-01").Err()
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "end_date", ae.Details[0].Field)
	})

	t.Run("garbage_date", func(t *testing.T) {
		v := &validate.Validator{}
		assert.Error(t, v.Date("start_date", "mâine").Err())
	})
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("full_name", "Maria").
		MinLen("full_name", "Maria", 3).
		MaxLen("full_name", "Maria", 100).
		Email("email", "maria@owh.md").
		Positive("total_amount", 120).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("full_name", "").          // Fails
		Email("email", "not-an-email").     // Fails
		Custom("equipment_items", true, "At least one item is required"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_Slug_OneOf covers the catalog-facing rules.
*/
func TestValidator_Slug_OneOf(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.Slug("slug", "un-film-2020").OneOf("category", "documentare", "documentare", "fictiune").Err())

	bad := &validate.Validator{}
	err := bad.Slug("slug", "Un Film").OneOf("category", "western", "documentare", "fictiune").Err()
	require.Error(t, err)
	assert.Len(t, apperr.As(err).Details, 2)
}
