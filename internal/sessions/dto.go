package sessions

import (
	"context"
	"time"
)

// Identity is the resolved operator behind a valid session token.
type Identity struct {
	Username string
	FullName string
}

// Checker is the surface the auth middleware depends on.
type Checker interface {
	Validate(ctx context.Context, token string) (*Identity, error)
}

// SessionDTO is the API shape of an issued session.
type SessionDTO struct {
	Token     string    `json:"sessionToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}
