// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/survey-auth/internal/app"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/service"
	"github.com/MKhiriev/survey-auth/internal/utils"
)

// me returns the profile of the account the bearer token was issued for.
// It must be mounted behind auth.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Err(ErrNoClaimsInContext).Send()
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, claims.Email())
	if errors.Is(err, service.ErrInvalidCredentials) {
		// the token outlived its account
		log.Info().Int64("user_id", claims.ID).Msg("account of a valid token not found")
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}
