// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrPasswordTooLong       = errors.New("password exceeds 72 bytes")
	ErrUnsupportedAlgorithm  = errors.New("unsupported password hash algorithm")
	ErrInvalidCost           = errors.New("invalid bcrypt cost")
	ErrMalformedArgon2idHash = errors.New("malformed argon2id hash")
)
