// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The registered "sub" claim carries the account email; "iat" and "exp"
// bound the token lifetime. ID and Username are informational copies of
// the account fields at issue time.
type Claims struct {
	jwt.RegisteredClaims

	// ID is the account identifier.
	ID int64 `json:"id"`

	// Username is the account username.
	Username string `json:"username"`
}

// Email returns the account email carried in the "sub" claim.
func (c *Claims) Email() string {
	return c.Subject
}
