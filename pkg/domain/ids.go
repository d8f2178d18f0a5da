package domain

import "github.com/google/uuid"

// UserIDLength is the length of the canonical textual form of a user id.
const UserIDLength = 36

// NewUserID returns a new random user id in canonical UUID form.
func NewUserID() string {
	return uuid.NewString()
}
