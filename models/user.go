// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account as stored in the users table.
// PasswordHash is never serialized.
type User struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Username is unique across accounts.
	Username string `json:"username"`

	// Email is unique across accounts and is the login identifier.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt or argon2id encoding.
	PasswordHash string `json:"-"`

	// CreatedAt is set by the store on insert.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the account.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserProfile is the account view returned to API clients.
type UserProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
