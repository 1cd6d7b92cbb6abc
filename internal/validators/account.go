// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/survey-auth/internal/crypto"
	"github.com/MKhiriev/survey-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 254
)

// AccountValidator implements the Validator interface for the register and
// login payloads. Values are expected to be trimmed by the caller.
type AccountValidator struct{}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms of models.RegisterRequest and models.LoginRequest
// are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Returns the first encountered validation error or nil.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = validateUsername(req.Username)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AccountValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	length := utf8.RuneCountInString(username)
	if length > maxUsernameLength {
		return ErrInvalidUsername
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ErrInvalidUsername
	}

	return nil
}

// validateEmail accepts a bare local@domain address.
func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.HasPrefix(domain, "[") {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) > crypto.MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}
