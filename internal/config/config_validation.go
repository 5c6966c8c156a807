package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key and the database DSN are hard requirements: without
// the signing key the service would accept unauthenticated traffic, so the
// process must refuse to start. The relay base URL is likewise required
// because every document upload depends on it.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Relay.BaseURL == "" {
		return ErrMissingRelayBaseURL
	}

	return nil
}
