package models

import "time"

// User represents an account entity used for authentication and session
// identity. Credential-related fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user. Serialized as
	// "id" in review listings; never accepted from request bodies.
	ID int64 `json:"id"`

	// Username is the unique public name of the user. During login the
	// "username" field may also carry the user's email address.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email,omitempty"`

	// Password carries the plain-text password submitted on registration
	// or login. It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
