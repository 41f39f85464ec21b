package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token from the "Authorization" header is validated with
// [service.AuthService.ParseToken] and its subject is resolved through
// [service.AuthService.VerifyIdentity], so tokens of deleted or disabled
// accounts stop working immediately. On success the account is stored in the
// request context with [utils.WithAccount].
//
// Every rejection is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request rejected")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err), "request rejected")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "error occurred during parsing token")
			return
		}

		account, err := h.services.AuthService.VerifyIdentity(ctx, token.AccountID)
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, r, ErrUnknownAccount, "request rejected")
			return
		}
		if err != nil {
			writeError(w, r, err, "resolving token subject failed")
			return
		}
		if !account.Enabled {
			writeError(w, r, ErrAccountDisabled, "request rejected")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(ctx, account)))
	})
}
