package domain

import "time"

// Role values stored on a user row. There is no per-role authorization
// surface yet; the role travels with the session for future use.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	Email        string
	FullName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
