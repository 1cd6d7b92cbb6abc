// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fastArgon2id keeps the tests quick; production parameters come from
// NewArgon2idHasher.
func fastArgon2id() *Argon2idHasher {
	return &Argon2idHasher{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func fastBcrypt(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// ─── bcrypt ───────────────────────────────────────────────────────────────────

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := fastBcrypt(t)

	hash1, err := h.Hash("s3cret!")
	require.NoError(t, err)
	hash2, err := h.Hash("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "salt must differ between calls")
	assert.NotContains(t, hash1, "s3cret!")
	assert.True(t, h.Verify("s3cret!", hash1))
	assert.True(t, h.Verify("s3cret!", hash2))
	assert.False(t, h.Verify("wrong", hash1))
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := fastBcrypt(t)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := fastBcrypt(t)

	for _, encoded := range []string{"", "plain", "$2a$", "$2a$04$tooShort"} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("anything", encoded))
		})
	}
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	h, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.ErrorIs(t, err, ErrInvalidCost)

	_, err = NewBcryptHasher(-1)
	assert.ErrorIs(t, err, ErrInvalidCost)
}

// ─── argon2id ─────────────────────────────────────────────────────────────────

func TestArgon2idHasher_HashFormat(t *testing.T) {
	h := fastArgon2id()

	hash, err := h.Hash("password")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.Len(t, strings.Split(hash, "$"), 6)
}

func TestArgon2idHasher_HashAndVerify(t *testing.T) {
	h := fastArgon2id()

	hash1, err := h.Hash("пароль🔐")
	require.NoError(t, err)
	hash2, err := h.Hash("пароль🔐")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, h.Verify("пароль🔐", hash1))
	assert.False(t, h.Verify("пароль", hash1))
	// параметры читаются из самого хеша
	assert.True(t, NewArgon2idHasher().Verify("пароль🔐", hash2))
}

func TestArgon2idHasher_MalformedHash(t *testing.T) {
	h := fastArgon2id()
	valid, err := h.Hash("password")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := map[string]string{
		"empty":           "",
		"wrong algorithm": strings.Replace(valid, "argon2id", "argon2i", 1),
		"wrong version":   strings.Replace(valid, "v=19", "v=16", 1),
		"bad params":      strings.Join([]string{"", parts[1], parts[2], "m=x,t=1,p=1", parts[4], parts[5]}, "$"),
		"huge memory":     strings.Join([]string{"", parts[1], parts[2], "m=99999999,t=1,p=1", parts[4], parts[5]}, "$"),
		"zero lanes":      strings.Join([]string{"", parts[1], parts[2], "m=1024,t=1,p=0", parts[4], parts[5]}, "$"),
		"bad salt":        strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$"),
		"bad key":         strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "!!!"}, "$"),
		"short key":       strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "AAAA"}, "$"),
		"missing parts":   "$argon2id$v=19$m=1024,t=1,p=1",
	}

	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			assert.False(t, h.Verify("password", encoded))
		})
	}
}

// ─── NewPasswordHasher ────────────────────────────────────────────────────────

func TestNewPasswordHasher_UnknownAlgorithm(t *testing.T) {
	_, err := NewPasswordHasher("md5", 0)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	_, err := NewPasswordHasher(AlgorithmBcrypt, 100)
	assert.ErrorIs(t, err, ErrInvalidCost)
}

// TestMultiHasher_VerifiesBothEncodings checks that a hasher configured for
// one algorithm still accepts hashes produced by the other.
func TestMultiHasher_VerifiesBothEncodings(t *testing.T) {
	h, err := NewPasswordHasher(AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	mh := h.(*multiHasher)
	mh.argon2id = fastArgon2id()

	bcryptHash, err := h.Hash("password")
	require.NoError(t, err)
	assert.True(t, isBcryptHash(bcryptHash))

	argonHash, err := mh.argon2id.Hash("password")
	require.NoError(t, err)

	assert.True(t, h.Verify("password", bcryptHash))
	assert.True(t, h.Verify("password", argonHash))
	assert.False(t, h.Verify("nope", argonHash))
	assert.False(t, h.Verify("password", "sha1:abcdef"))
}

func TestMultiHasher_HashesWithArgon2id(t *testing.T) {
	h, err := NewPasswordHasher(AlgorithmArgon2id, 0)
	require.NoError(t, err)
	mh := h.(*multiHasher)
	mh.argon2id = fastArgon2id()
	mh.primary = mh.argon2id

	hash, err := h.Hash("password")
	require.NoError(t, err)
	assert.True(t, isArgon2idHash(hash))
	assert.True(t, h.Verify("password", hash))
}

func TestIsSupportedAlgorithm(t *testing.T) {
	assert.True(t, IsSupportedAlgorithm("bcrypt"))
	assert.True(t, IsSupportedAlgorithm("argon2id"))
	assert.False(t, IsSupportedAlgorithm(""))
	assert.False(t, IsSupportedAlgorithm("scrypt"))
}
