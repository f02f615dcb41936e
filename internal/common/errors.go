// Package common defines shared constants and sentinel errors used across
// catboard components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidCollection = errors.New("invalid collection name")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors.
	ErrInvalidToken             = errors.New("invalid token")
	ErrTokenExpired             = errors.New("token expired")
	ErrInvalidCredentialsFormat = errors.New("invalid email or password format")

	// View errors.
	ErrEmptyName = errors.New("name must not be empty")

	// Remote image API errors.
	ErrNoImage = errors.New("image API returned no images")
)
