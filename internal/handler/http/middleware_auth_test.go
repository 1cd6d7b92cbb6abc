// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/survey-auth/internal/service"
	"github.com/MKhiriev/survey-auth/internal/utils"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenParser accepts only "good".
func tokenParser() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (*models.Claims, error) {
			if token != "good" {
				return nil, service.ErrTokenIsExpiredOrInvalid
			}
			return aliceClaims(), nil
		},
	}
}

// executeAuth runs the auth middleware with authHeader and reports whether
// next was reached.
func executeAuth(t *testing.T, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandler(t, tokenParser())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"valid token", "Bearer good", http.StatusOK, true},
		{"scheme is case-insensitive", "bearer good", http.StatusOK, true},
		{"upper-case scheme", "BEARER good", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"scheme only", "Bearer", http.StatusUnauthorized, false},
		{"scheme with blank token", "Bearer   ", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, false},
		{"token without scheme", "good", http.StatusUnauthorized, false},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, false},
		{"token with inner space", "Bearer go od", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := executeAuth(t, tt.header, next)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				// one body for every cause
				assert.Equal(t, "unauthorized", errorMessage(t, rec))
			}
		})
	}
}

func TestAuth_ClaimsInContext(t *testing.T) {
	var got *models.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims
	})

	executeAuth(t, "Bearer good", next)

	require.NotNil(t, got)
	assert.Equal(t, "alice@x.com", got.Email())
	assert.Equal(t, int64(1), got.ID)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(t, tokenParser())
	mw := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	const n = 50
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if i%2 == 0 {
				req.Header.Set("Authorization", "Bearer good")
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		if i%2 == 0 {
			assert.Equal(t, http.StatusOK, code)
		} else {
			assert.Equal(t, http.StatusUnauthorized, code)
		}
	}
}
