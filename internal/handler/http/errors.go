// SPDX-License-Identifier: Apache-2.0

package http

// Fixed plain-text bodies of the two 401 responses produced by the auth
// middleware. The invalid-token message deliberately does not distinguish
// between a bad signature, a wrong issuer or audience, and an expired token.
const (
	msgMissingAuthorizationHeader = "Missing Authorization Header"
	msgInvalidToken               = "Unauthorized: Invalid Token"
)
