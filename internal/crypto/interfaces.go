// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies account passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way encodings
// and checks candidates against them.
type PasswordHasher interface {
	// Hash returns a self-describing encoded hash. Two calls with the same
	// password return different encodings because each uses a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed or
	// unsupported encoding is reported as a mismatch.
	Verify(password, encodedHash string) bool
}
