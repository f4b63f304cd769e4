package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// settings are missing.
var (
	// ErrNoDatabaseDSN indicates that no database connection string was
	// supplied by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrNoSessionSecret indicates that no session cookie signing secret
	// was supplied by any configuration source.
	ErrNoSessionSecret = errors.New("session secret is required")
)
