package customer

import "errors"

var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)
