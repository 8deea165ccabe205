package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles on the platform.
type Role string

const (
	RolePublic     Role = "public"
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
	RoleAdmin      Role = "admin"
)

// ValidRole reports whether r is one of the four platform roles.
func ValidRole(r Role) bool {
	switch r {
	case RolePublic, RoleBrand, RoleInfluencer, RoleAdmin:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Identity is the authenticated actor carried by a session. Immutable once
// created: re-login replaces it wholesale, logout deletes it.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// User models a registered account backed by persistent storage, as opposed
// to the ephemeral Identity minted for demo logins.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
