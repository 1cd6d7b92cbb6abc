// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

// Upper bounds for parameters read back from stored hashes.
const (
	maxArgon2Memory     = 256 * 1024 // KiB
	maxArgon2Iterations = 16
	minArgon2KeyLength  = 16
	maxArgon2KeyLength  = 64
	minArgon2SaltLength = 8
)

// Argon2idHasher implements [PasswordHasher] with Argon2id and stores the
// parameters next to the salt in the encoded hash:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
type Argon2idHasher struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// NewArgon2idHasher returns a hasher with the OWASP recommended parameters:
// 64 MiB of memory, 3 iterations, 2 lanes, 16 byte salt and 32 byte key.
func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32, // 256 bits
	}
}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.Iterations, h.Memory, h.Parallelism, h.KeyLength)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.Memory,
		h.Iterations,
		h.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *Argon2idHasher) Verify(password, encodedHash string) bool {
	params, salt, key, err := decodeArgon2idHash(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(key, computed) == 1
}

func decodeArgon2idHash(encodedHash string) (*Argon2idHasher, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, nil, ErrMalformedArgon2idHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("%w: version", ErrMalformedArgon2idHash)
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: parameters", ErrMalformedArgon2idHash)
	}
	if memory == 0 || memory > maxArgon2Memory || iterations == 0 || iterations > maxArgon2Iterations || parallelism == 0 {
		return nil, nil, nil, fmt.Errorf("%w: parameters out of range", ErrMalformedArgon2idHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < minArgon2SaltLength {
		return nil, nil, nil, fmt.Errorf("%w: salt", ErrMalformedArgon2idHash)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < minArgon2KeyLength || len(key) > maxArgon2KeyLength {
		return nil, nil, nil, fmt.Errorf("%w: key", ErrMalformedArgon2idHash)
	}

	params := &Argon2idHasher{
		Memory:      memory,
		Iterations:  iterations,
		Parallelism: parallelism,
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}

	return params, salt, key, nil
}

func isArgon2idHash(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, argon2idPrefix)
}
