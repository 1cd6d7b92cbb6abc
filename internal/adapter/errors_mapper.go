// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/survey-auth/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp),
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		respErr.Kind = ErrBadRequest
	case resp.StatusCode() == http.StatusUnauthorized:
		respErr.Kind = ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		respErr.Kind = ErrNotFound
	case resp.StatusCode() == http.StatusConflict:
		respErr.Kind = ErrConflict
	case resp.StatusCode() >= http.StatusInternalServerError:
		respErr.Kind = ErrInternalServerError
	default:
		respErr.Kind = ErrUnexpectedStatus
	}

	return respErr
}

// responseMessage prefers the JSON "message" field and falls back to the raw
// body, then to the status text.
func responseMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
