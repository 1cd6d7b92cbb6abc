// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, w.Status())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_Write_SetsImplicit200AndAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(", world"))

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 12, w.size)
	assert.Equal(t, "hello, world", rec.Body.String())
}

func TestResponseWriter_StatusBeforeAnyWrite(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
