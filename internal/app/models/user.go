package models

import (
	"time"

	"caseflow-service/internal/pkg/constvars"
)

type User struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Username   string    `bson:"username" json:"username"`
	Password   string    `bson:"password" json:"-"`
	FullName   string    `bson:"fullName" json:"full_name"`
	Role       string    `bson:"role" json:"role"`
	HospitalID string    `bson:"hospitalId,omitempty" json:"hospital_id,omitempty"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// Session is the authenticated actor resolved from the bearer token. It is
// stored as JSON in redis keyed by session id.
type Session struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	HospitalID string `json:"hospital_id,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}

func (s *Session) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
