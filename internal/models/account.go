package models

import "time"

// Account is a stored email/password identity.
type Account struct {
	ID           string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is the signed-in user context. A nil *Session means signed out.
type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}
