package auth

import "time"

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned once per successful login; the token is never
// shown again. Keys stay snake_case because deployed clients bind to them.
type LoginResponse struct {
	Username     string    `json:"username"`
	FullName     string    `json:"fullname"`
	RoleID       int64     `json:"role_id"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ValidateResponse confirms the session behind a token is still good.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}
