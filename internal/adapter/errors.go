// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNoToken is returned by authenticated calls made while logged out.
	ErrNoToken = errors.New("no token, log in first")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)

// ResponseError is a non-2xx API response. Error returns the server's
// message so it can be shown to the user as is.
type ResponseError struct {
	// Kind is one of the sentinel errors above.
	Kind       error
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}
