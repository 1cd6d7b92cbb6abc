// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/survey-auth/models"

// Page names known to [RootModel].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form once the server answered.
type LoginResult struct {
	Err      error
	Response models.AuthResponse
}

// RegisterResult is produced by the register form once the server answered.
type RegisterResult struct {
	Err      error
	Response models.AuthResponse
}

// AuthSuccess is delivered to the profile page after login or registration.
// Notice is shown above the profile.
type AuthSuccess struct {
	User   models.UserProfile
	Notice string
}

// LoggedOut is delivered to the menu after the token was dropped. Reason is
// empty when the user logged out.
type LoggedOut struct {
	Reason string
}

type profileLoadedMsg struct {
	profile models.UserProfile
	err     error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
