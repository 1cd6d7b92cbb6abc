// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/survey-auth/internal/service"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aliceResponse = models.AuthResponse{
	User: models.UserProfile{
		ID:        1,
		Username:  "alice",
		Email:     "alice@x.com",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	},
	Token: "T",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	h := newTestHandler(t, &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			got = req
			return aliceResponse, nil
		},
	})

	rec := serve(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@x.com","password":"pw123"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "pw123"}, got)

	var res models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, aliceResponse, res)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	for _, body := range []string{"", "{", "not json", `{"username":1}`} {
		rec := serve(t, h, http.MethodPost, "/api/auth/register", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, "invalid JSON was passed", errorMessage(t, rec))
	}
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", fmt.Errorf("%w: blank", service.ErrInvalidDataProvided), http.StatusBadRequest, "invalid data provided"},
		{"email taken", service.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
		{"username taken", service.ErrUsernameAlreadyExists, http.StatusConflict, "Username already exists"},
		{"unknown conflict", service.ErrAlreadyExists, http.StatusConflict, "User already exists"},
		{"wrapped email taken", fmt.Errorf("ctx: %w", service.ErrEmailAlreadyExists), http.StatusConflict, "Email already exists"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
		{"token failure", service.ErrTokenCreationFailed, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.err
				},
			})

			rec := serve(t, h, http.MethodPost, "/api/auth/register",
				`{"username":"bob","email":"alice@x.com","password":"pw456"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, models.LoginRequest{Email: "alice@x.com", Password: "pw123"}, req)
			return aliceResponse, nil
		},
	})

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"pw123"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var res models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "T", res.Token)
	assert.Equal(t, "alice", res.User.Username)
}

func TestLogin_InvalidJSON(t *testing.T) {
	rec := serve(t, newTestHandler(t, &mockAuthService{}), http.MethodPost, "/api/auth/login", "{", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON was passed", errorMessage(t, rec))
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_FailuresShareOneResponse(t *testing.T) {
	for _, err := range []error{service.ErrUserNotFound, service.ErrWrongPassword, service.ErrInvalidCredentials} {
		h := newTestHandler(t, &mockAuthService{
			loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
				return models.AuthResponse{}, err
			},
		})

		rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"wrong"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email or password", errorMessage(t, rec))
	}
}

func TestLogin_ValidationAndUnexpectedErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := newTestHandler(t, &mockAuthService{
			loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
				return models.AuthResponse{}, tt.err
			},
		})

		rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"","password":""}`, nil)
		assert.Equal(t, tt.wantStatus, rec.Code)
	}
}
