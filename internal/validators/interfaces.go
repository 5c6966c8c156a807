// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Unlike error-returning validators, implementations collect every violation
// found so that API clients receive a complete list of problems in a single
// response instead of fixing them one at a time.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import (
	"context"

	"github.com/MKhiriev/docrelay/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific named fields. It returns every violation found;
	// a nil or empty slice means the input is valid.
	Validate(context.Context, any, ...string) []models.FieldViolation
}
