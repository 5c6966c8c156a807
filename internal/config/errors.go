package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided.
	// This condition is startup-fatal.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrMissingRelayBaseURL indicates that the document-processing backend
	// base URL was not provided.
	ErrMissingRelayBaseURL = errors.New("relay base URL is not configured")
)
