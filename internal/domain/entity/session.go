package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider identifies how a session was established.
type AuthProvider string

const (
	AuthProviderPassword AuthProvider = "password"
	AuthProviderGoogle   AuthProvider = "google"
)

// Session is the gateway-held record of an authenticated identity. It is the
// single owner of the upstream bearer token; clients only ever hold the
// portal token whose session_id claim keys this record.
type Session struct {
	ID            uuid.UUID    `json:"id"`
	UserID        string       `json:"user_id"`
	Role          string       `json:"role"`
	DisplayName   string       `json:"display_name"`
	Email         string       `json:"email"`
	AuthProvider  AuthProvider `json:"auth_provider"`
	HasAgeSet     bool         `json:"has_age_set"`
	UpstreamToken string       `json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
}

// RequiresProfileCompletion is derived, never stored: only Google-originated
// sessions missing an age need the completion step. Password sessions never
// require it.
func (s *Session) RequiresProfileCompletion() bool {
	return s.AuthProvider == AuthProviderGoogle && !s.HasAgeSet
}

// HasRole reports whether the session's role is in the allowed set. An empty
// set means any authenticated role is permitted.
func (s *Session) HasRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
