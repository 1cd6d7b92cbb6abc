// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/survey-auth/internal/app"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/service"
	"github.com/MKhiriev/survey-auth/internal/utils"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: specific errors come before the parents they
// wrap.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{service.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{service.ErrAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgUnauthorized},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

// responseFromError returns the status code and message for err. Anything
// unknown is an internal error.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
