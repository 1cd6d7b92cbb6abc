// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// survey-auth server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of error response bodies. Keeping them in one place
// ensures consistent wording throughout the API and lets the client match on
// them.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails validation (e.g. blank username, malformed email).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned for every login failure, whether
	// the email is unknown or the password is wrong.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgUnauthorized is returned by authenticated routes for a missing,
	// malformed, expired or otherwise invalid bearer token, and when the
	// token's account no longer exists.
	MsgUnauthorized = "unauthorized"

	// Registration conflicts.
	MsgEmailAlreadyExists    = "Email already exists"
	MsgUsernameAlreadyExists = "Username already exists"
	MsgUserAlreadyExists     = "User already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is returned when a request outlives the configured
	// server request timeout.
	MsgRequestTimeout = "request timed out"

	MsgMethodNotAllowed = "method not allowed"
	MsgNotFound         = "not found"
)
