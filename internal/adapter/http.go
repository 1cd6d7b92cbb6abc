// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/utils"
	"github.com/MKhiriev/survey-auth/models"
)

type httpAuthAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthAPI constructs an HTTP/REST implementation of [AuthAPI] for the
// server at adapterCfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPAuthAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to /api/auth/register.
func (h *httpAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login posts to /api/auth/login.
func (h *httpAuthAPI) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpAuthAPI) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	var res models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&res).
		Post(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("request failed")
		return models.AuthResponse{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Info().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("request rejected")
		return models.AuthResponse{}, err
	}

	h.SetToken(res.Token)
	return res, nil
}

// Me gets /api/auth/me with the stored token. A 401 drops the token since
// it can never become valid again.
func (h *httpAuthAPI) Me(ctx context.Context) (models.UserProfile, error) {
	token := h.Token()
	if token == "" {
		return models.UserProfile{}, ErrNoToken
	}

	var profile models.UserProfile
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("request /api/auth/me: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.SetToken("")
		}
		return models.UserProfile{}, err
	}

	return profile, nil
}

func (h *httpAuthAPI) Version(ctx context.Context) (string, error) {
	var res models.VersionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("request /api/version: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return res.Version, nil
}
