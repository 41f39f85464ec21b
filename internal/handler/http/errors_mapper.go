package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-weather-keeper/internal/geo"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnknownAccount:             http.StatusUnauthorized,
	ErrAccountDisabled:            http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQueryParameter:      http.StatusBadRequest,
	ErrInvalidContentEncoding:     http.StatusBadRequest,

	service.ErrAuthFailure:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrSecretMismatch:          http.StatusConflict,

	geo.ErrOutOfRange:           http.StatusBadRequest,
	models.ErrUnknownSensorKind: http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:       http.StatusNotFound,
	store.ErrStore:                 http.StatusInternalServerError,
}

// statusFromError returns the status mapped to the first sentinel err
// matches, together with that sentinel. Unknown errors map to 500.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes the mapped status with a JSON error body.
// Server-side failures never expose their cause to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError || target == nil {
		log.Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, target.Error(), status)
}
