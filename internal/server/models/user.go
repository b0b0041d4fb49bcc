// Package models contains the server-side domain entities persisted by the
// repositories layer.
package models

import "time"

// User is a platform account. HashedPassword holds a bcrypt hash; the
// plaintext password is never stored or logged.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	IsActive       bool
	IsAdmin        bool
	CreatedAt      time.Time
}
