// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/survey-auth/models"
)

var (
	ErrInvalidJWTParams           = errors.New("invalid params for generating JWT token")
	ErrEmptySubject               = errors.New("token subject is empty")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

const bearerScheme = "bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Subject   (sub): the user email
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus lifetime, rounded up to a whole second
//   - id, username: copies of the account fields
//
// Returns an error if the user has no email, lifetime is not positive or
// signKey is empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(user models.User, lifetime time.Duration, signKey string, now time.Time) (string, error) {
	if user.Email == "" || lifetime <= 0 || signKey == "" {
		return "", ErrInvalidJWTParams
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt(now, lifetime)),
		},
		ID:       user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// expiresAt rounds now+lifetime up to the next second, since exp has
// one-second resolution. A token never expires before now+lifetime.
func expiresAt(now time.Time, lifetime time.Duration) time.Time {
	exp := now.Add(lifetime)
	if whole := exp.Truncate(time.Second); !whole.Equal(exp) {
		return whole.Add(time.Second)
	}
	return exp
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method restricted to HS256
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim presence
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, "secret", time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
