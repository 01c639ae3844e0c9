package service

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrNoImages           = errors.New("at least one uploaded image is required")
	ErrInvalidStatus      = errors.New("status must be one of: available, pending, sold")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("account does not have the admin role")
)
