// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shelfnotes Authors

package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress = ":4000"
	defaultSessionTTL  = 24 * time.Hour
)

// applyDefaults fills in fallback values for settings that every deployment
// needs but none is required to spell out: the listen address and the
// session lifetime.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The server cannot operate without a database connection string or a
// session secret, so both are required.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	if cfg.Auth.SessionSecret == "" {
		errs = append(errs, ErrNoSessionSecret)
	}

	return errors.Join(errs...)
}
