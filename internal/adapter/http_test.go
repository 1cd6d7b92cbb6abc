// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpAuthAPI, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpAuthAPI {
	t.Helper()
	a, err := NewHTTPAuthAPI(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAuthAPI)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

var aliceProfile = models.UserProfile{
	ID:        1,
	Username:  "alice",
	Email:     "alice@x.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "pw123"}, req)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: aliceProfile, Token: "T"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, aliceProfile, res.User)
	assert.Equal(t, "T", a.Token())
}

func TestRegister_Conflict_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Message: "Email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "bob", Email: "alice@x.com", Password: "pw"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Email already exists", err.Error())
	assert.Empty(t, a.Token())

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusConflict, respErr.StatusCode)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"message":"invalid data provided"}`, ErrBadRequest, "invalid data provided"},
		{http.StatusUnauthorized, `{"message":"invalid email or password"}`, ErrUnauthorized, "invalid email or password"},
		{http.StatusNotFound, `{"message":"not found"}`, ErrNotFound, "not found"},
		{http.StatusInternalServerError, `{"message":"internal server error"}`, ErrInternalServerError, "internal server error"},
		{http.StatusBadGateway, "", ErrInternalServerError, "Bad Gateway"},
		{http.StatusTeapot, "short and stout", ErrUnexpectedStatus, "short and stout"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "pw"})

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: aliceProfile, Token: "T2"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@x.com", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "T2", a.Token())
}

func TestLogin_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "pw"})

	require.Error(t, err)
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
}

// ── Me ──────────────────────────────────────────────────────────────────────

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, aliceProfile)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" T ")

	profile, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aliceProfile, profile)
}

func TestMe_WithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called)
}

func TestMe_UnauthorizedDropsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "unauthorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("expired")

	_, err := a.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.2.3"})
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"http://localhost:8080/", "http://localhost:8080", nil},
		{"localhost:8080", "http://localhost:8080", nil},
		{" https://auth.example.com ", "https://auth.example.com", nil},
		{"", "", ErrEmptyAddress},
		{"http://", "", ErrInvalidAddress},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "raw %q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPAuthAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAuthAPI(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
