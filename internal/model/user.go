package model

import "time"

// RoleUser is the default role assigned at signup.  The role is stored and
// carried in the session token but this application performs no role-based
// authorization beyond that.
const RoleUser = "USER"

// User mirrors the 'users' table.  The password hash never leaves the
// server: it is excluded from token claims and from every rendered page.
type User struct {
	ID              uint64
	FullName        string
	Email           string
	PasswordHash    string
	ProfileImageURL string
	Role            string
	CreatedAt       time.Time
}
