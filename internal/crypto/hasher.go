// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// Supported values of the password hash algorithm setting.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// IsSupportedAlgorithm reports whether name is a known algorithm.
func IsSupportedAlgorithm(name string) bool {
	return name == AlgorithmBcrypt || name == AlgorithmArgon2id
}

// multiHasher hashes new passwords with the configured algorithm and
// verifies any supported encoding, so accounts created before an algorithm
// switch can still log in.
type multiHasher struct {
	primary  PasswordHasher
	bcrypt   *BcryptHasher
	argon2id *Argon2idHasher
}

// NewPasswordHasher returns a [PasswordHasher] that hashes with algorithm.
// cost applies to bcrypt only; zero selects the library default.
func NewPasswordHasher(algorithm string, cost int) (PasswordHasher, error) {
	bcryptHasher, err := NewBcryptHasher(cost)
	if err != nil {
		return nil, err
	}

	h := &multiHasher{
		bcrypt:   bcryptHasher,
		argon2id: NewArgon2idHasher(),
	}

	switch algorithm {
	case AlgorithmBcrypt:
		h.primary = h.bcrypt
	case AlgorithmArgon2id:
		h.primary = h.argon2id
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	return h, nil
}

func (h *multiHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *multiHasher) Verify(password, encodedHash string) bool {
	switch {
	case isBcryptHash(encodedHash):
		return h.bcrypt.Verify(password, encodedHash)
	case isArgon2idHash(encodedHash):
		return h.argon2id.Verify(password, encodedHash)
	default:
		return false
	}
}
