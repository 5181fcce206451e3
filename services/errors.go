// Package services holds the application's domain logic between the
// controllers and the backend API.
// File: services/errors.go
package services

import "errors"

// Errors shared across services and surfaced as inline messages.
var (
	// Validation and business rules checked before any request is sent
	ErrNotEnoughImages = errors.New("at least 2 images are required to start the tournament")
	ErrEmptyImageName  = errors.New("image name is required")
	ErrEmptyName       = errors.New("name is required")
)
