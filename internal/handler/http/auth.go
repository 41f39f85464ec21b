package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "decoding credentials failed")
		return
	}

	account, err := h.services.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, r, err, "authentication failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Info().Int64("id", account.ID).Msg("account logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AccessToken{AccessToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrUnknownAccount, "no account in context")
		return
	}

	_, _ = utils.WriteJSON(w, account, http.StatusOK)
}

// rotatePassword lets the caller replace their own secret.
func (h *Handler) rotatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnknownAccount, "no account in context")
		return
	}

	var req models.RotateSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "decoding rotate request failed")
		return
	}

	updated, err := h.services.AccountService.RotateSecret(ctx, account.Username, req.Password, req.NewPassword)
	if err != nil {
		writeError(w, r, err, "secret rotation failed")
		return
	}

	logger.FromRequest(r).Info().Int64("id", updated.ID).Msg("secret rotated")
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}
