package service

import "errors"

var (
	// ErrProfileStoreUnavailable wraps any failure reaching the Profile Store.
	// Callers should not retry automatically.
	ErrProfileStoreUnavailable = errors.New("profile store unavailable")

	// ErrInvalidRoleSet is returned when a provider role set is malformed.
	ErrInvalidRoleSet = errors.New("invalid role set")
)
