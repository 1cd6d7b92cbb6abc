// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged by the authentication middleware. Clients only ever
// see the generic "unauthorized" message.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoClaimsInContext is logged when an authenticated route runs without
	// the auth middleware having stored claims.
	ErrNoClaimsInContext = errors.New("no token claims in request context")
)
