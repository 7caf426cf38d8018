package domain

import "time"

// UserProfile is the subset of a Profile Store record this service reads
// and writes. Email is not guaranteed unique.
type UserProfile struct {
	ID        string
	Email     string
	Role      string // Current effective role key
	CreatedAt time.Time
	UpdatedAt time.Time
}
