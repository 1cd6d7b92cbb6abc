// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/survey-auth/internal/mock"
	"github.com/MKhiriev/survey-auth/internal/validators"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedAuthSvc(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)

	return NewAuthValidationService().Wrap(inner), inner
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthValidationService_Register_TrimsBeforeDelegating(t *testing.T) {
	svc, inner := newValidatedAuthSvc(t)
	ctx := context.Background()

	inner.EXPECT().Register(ctx, models.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: " pw123 ",
	}).Return(models.AuthResponse{Token: "T"}, nil)

	res, err := svc.Register(ctx, models.RegisterRequest{
		Username: "  alice\t",
		Email:    " alice@x.com\n",
		Password: " pw123 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "T", res.Token)
}

func TestAuthValidationService_Register_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"blank username", models.RegisterRequest{Username: "   ", Email: "a@x.io", Password: "pw"}, validators.ErrEmptyUsername},
		{"blank email", models.RegisterRequest{Username: "alice", Email: " ", Password: "pw"}, validators.ErrEmptyEmail},
		{"email without at", models.RegisterRequest{Username: "alice", Email: "alice.x.com", Password: "pw"}, validators.ErrInvalidEmail},
		{"blank password", models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "  "}, validators.ErrEmptyPassword},
		{"username with space", models.RegisterRequest{Username: "al ice", Email: "a@x.io", Password: "pw"}, validators.ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// inner has no expectations: any call fails the test
			svc, _ := newValidatedAuthSvc(t)

			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthValidationService_Login(t *testing.T) {
	svc, inner := newValidatedAuthSvc(t)
	ctx := context.Background()

	inner.EXPECT().Login(ctx, models.LoginRequest{Email: "alice@x.com", Password: "pw123"}).
		Return(models.AuthResponse{Token: "T"}, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: " alice@x.com ", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "alice@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthValidationService_PassThrough(t *testing.T) {
	svc, inner := newValidatedAuthSvc(t)
	ctx := context.Background()

	inner.EXPECT().CurrentUser(ctx, "alice@x.com").Return(models.User{ID: 1}, nil)
	inner.EXPECT().ParseToken(ctx, "T").Return(&models.Claims{ID: 1}, nil)

	user, err := svc.CurrentUser(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	claims, err := svc.ParseToken(ctx, "T")
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)
}
