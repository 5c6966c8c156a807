package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/docrelay/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email address of a signup or login request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a signup or login request.
	FieldPassword = "password"

	// FieldName targets the optional display name of a signup request.
	FieldName = "name"
)

const (
	passwordMinLength = 6
	nameMaxLength     = 100
)

// CredentialsValidator implements the Validator interface for the
// authentication request models: SignUpRequest and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SignUpRequest / *models.SignUpRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns a single violation on the "request" pseudo-field if obj does not
// match any known model. Optional fields restrict validation to the named
// subset; when omitted, a sensible default set of fields is validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) []models.FieldViolation {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return []models.FieldViolation{{Field: "request", Message: "unsupported request type"}}
	}
}

// isValidEmail reports whether address parses as a bare RFC 5322 address
// (no display name, no surrounding whitespace).
func isValidEmail(address string) bool {
	if address != strings.TrimSpace(address) {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}
	return parsed.Address == address
}

// validateSignUpRequest validates a SignUpRequest.
//
// Default validated fields (when none specified): Email, Password, Name.
//
// All violations are collected; the request is invalid if the returned slice
// is non-empty.
func (v *CredentialsValidator) validateSignUpRequest(ctx context.Context, request models.SignUpRequest, fields ...string) []models.FieldViolation {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	var violations []models.FieldViolation
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				violations = append(violations, models.FieldViolation{Field: FieldEmail, Message: "email is required"})
			} else if !isValidEmail(request.Email) {
				violations = append(violations, models.FieldViolation{Field: FieldEmail, Message: "email is not a valid address"})
			}
		case FieldPassword:
			if request.Password == "" {
				violations = append(violations, models.FieldViolation{Field: FieldPassword, Message: "password is required"})
			} else if len(request.Password) < passwordMinLength {
				violations = append(violations, models.FieldViolation{Field: FieldPassword, Message: "password must be at least 6 characters"})
			}
		case FieldName:
			if len(request.Name) > nameMaxLength {
				violations = append(violations, models.FieldViolation{Field: FieldName, Message: "name must be at most 100 characters"})
			}
		default:
			violations = append(violations, models.FieldViolation{Field: f, Message: "unknown field for validation"})
		}
	}

	return violations
}

// validateLoginRequest validates a LoginRequest.
//
// Default validated fields: Email, Password. Login only checks presence;
// format and length rules are enforced at signup so that existing accounts
// are never locked out by a rule change.
func (v *CredentialsValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) []models.FieldViolation {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var violations []models.FieldViolation
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				violations = append(violations, models.FieldViolation{Field: FieldEmail, Message: "email is required"})
			}
		case FieldPassword:
			if request.Password == "" {
				violations = append(violations, models.FieldViolation{Field: FieldPassword, Message: "password is required"})
			}
		default:
			violations = append(violations, models.FieldViolation{Field: f, Message: "unknown field for validation"})
		}
	}

	return violations
}
