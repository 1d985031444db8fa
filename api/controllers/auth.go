package controllers

import (
	"net/http"
	"strings"

	"github.com/bengkelpos/backend/api/middleware"
	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/api/validators"
	"github.com/bengkelpos/backend/internal/auth"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
)

func parseBearerToken(r *http.Request) (string, error) {
	raw := r.Header.Get("Authorization")
	if !strings.HasPrefix(raw, "Bearer ") {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided")
	}
	token := strings.TrimSpace(raw[7:])
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided")
	}
	return token, nil
}

// AuthLogin verifies credentials and issues a session token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), body, r.UserAgent())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusOK, resp, "Login successful")
	}
}

// AuthLogout invalidates the presented session token.
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		token, err := parseBearerToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, "Logged out successfully")
	}
}

// AuthValidate confirms the session resolved by the auth gate.
func AuthValidate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, auth.ValidateResponse{
			Valid:    true,
			Username: middleware.UsernameFromContext(r.Context()),
		})
	}
}
