// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/survey-auth/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected marshal error")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteError(w, "unauthorized", http.StatusUnauthorized); err != nil {
		t.Fatal(err)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusUnauthorized || body.Message != "unauthorized" {
		t.Errorf("unexpected response: %d %+v", w.Code, body)
	}
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetClaimsFromContext(ctx); ok {
		t.Error("expected no claims in empty context")
	}

	claims := &models.Claims{Username: "alice"}
	got, ok := GetClaimsFromContext(WithClaims(ctx, claims))
	if !ok || got != claims {
		t.Errorf("expected stored claims, got %v %v", got, ok)
	}

	if _, ok = GetClaimsFromContext(context.WithValue(ctx, ClaimsCtxKey, "alice")); ok {
		t.Error("expected wrong type to be rejected")
	}

	var nilClaims *models.Claims
	if _, ok = GetClaimsFromContext(WithClaims(ctx, nilClaims)); ok {
		t.Error("expected nil claims to be rejected")
	}
}

func TestNewTraceID_Unique(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	if a == "" || a == b {
		t.Errorf("expected distinct trace ids, got %q and %q", a, b)
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("http://localhost:8080", 0)
	if c.Client == nil || c.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected client: %+v", c.Client)
	}
}
