package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (missing token sign key, issuer, or audience).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
