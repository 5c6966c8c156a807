// Package config loads and validates the application configuration.
//
// Configuration is assembled from four sources, merged in priority order
// (first non-zero value wins): environment variables (optionally seeded from
// a local .env file), command-line flags, an optional JSON file, and built-in
// defaults. The merged result is validated before the application starts;
// a missing token signing key, database DSN, or relay base URL aborts
// startup.
package config
