// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The authentication gate cannot operate without a signing secret, issuer,
// and audience, and a non-positive token lifetime would mint tokens that are
// already expired, so all four are required. The server address is checked
// where the transport is constructed.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
