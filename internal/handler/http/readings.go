package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// readingEndpoints serves the reading routes of one sensor kind.
type readingEndpoints interface {
	listPublic(w http.ResponseWriter, r *http.Request)
	listProtected(w http.ResponseWriter, r *http.Request)
	get(w http.ResponseWriter, r *http.Request)
	ingest(w http.ResponseWriter, r *http.Request)
	remove(w http.ResponseWriter, r *http.Request)
}

// byKind resolves the {kind} URL parameter and dispatches to endpoint on the
// matching readingEndpoints. Unknown kinds get 404.
func (h *Handler) byKind(endpoint func(readingEndpoints, http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := models.ParseSensorKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, r, err, "unknown sensor kind")
			return
		}

		endpoints, ok := h.readings[kind.Slug()]
		if !ok {
			writeError(w, r, models.ErrUnknownSensorKind, "sensor kind is not served")
			return
		}

		endpoint(endpoints, w, r)
	}
}

type readingHandler[K models.SensorKind] struct {
	service service.ReadingService[K]
}

func newReadingHandler[K models.SensorKind](svc service.ReadingService[K]) *readingHandler[K] {
	return &readingHandler[K]{service: svc}
}

func (h *readingHandler[K]) listPublic(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReadingFilter(r)
	if err != nil {
		writeError(w, r, err, "invalid reading filter")
		return
	}

	readings, err := h.service.ListPublic(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "listing public readings failed")
		return
	}

	_, _ = utils.WriteJSON(w, readings, http.StatusOK)
}

func (h *readingHandler[K]) listProtected(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReadingFilter(r)
	if err != nil {
		writeError(w, r, err, "invalid reading filter")
		return
	}

	readings, err := h.service.ListProtected(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "listing protected readings failed")
		return
	}

	_, _ = utils.WriteJSON(w, readings, http.StatusOK)
}

func (h *readingHandler[K]) get(w http.ResponseWriter, r *http.Request) {
	id, err := readingID(r)
	if err != nil {
		writeError(w, r, err, "invalid reading id")
		return
	}

	reading, err := h.service.Protected(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "reading lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, reading, http.StatusOK)
}

func (h *readingHandler[K]) ingest(w http.ResponseWriter, r *http.Request) {
	var params models.ProtectedReadingParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "decoding reading failed")
		return
	}

	resp, err := h.service.Ingest(r.Context(), params)
	if err != nil {
		writeError(w, r, err, "ingesting reading failed")
		return
	}

	if accountID, ok := utils.GetAccountIDFromContext(r.Context()); ok {
		logger.FromRequest(r).Info().
			Int64("account_id", accountID).
			Int64("reading_id", resp.Protected.ID()).
			Str("kind", models.KindOf[K]().Slug()).
			Msg("reading ingested")
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *readingHandler[K]) remove(w http.ResponseWriter, r *http.Request) {
	id, err := readingID(r)
	if err != nil {
		writeError(w, r, err, "invalid reading id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "reading deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func readingID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidQueryParameter, raw)
	}
	return id, nil
}

// parseReadingFilter reads from, to (RFC 3339), city, country, limit and
// offset from the query string.
func parseReadingFilter(r *http.Request) (models.ReadingFilter, error) {
	query := r.URL.Query()
	filter := models.ReadingFilter{
		City:    query.Get("city"),
		Country: query.Get("country"),
	}

	var err error
	if filter.From, err = parseTimeParam(query.Get("from")); err != nil {
		return models.ReadingFilter{}, fmt.Errorf("%w: from: %w", ErrInvalidQueryParameter, err)
	}
	if filter.To, err = parseTimeParam(query.Get("to")); err != nil {
		return models.ReadingFilter{}, fmt.Errorf("%w: to: %w", ErrInvalidQueryParameter, err)
	}
	if filter.Limit, err = parseUintParam(query.Get("limit")); err != nil {
		return models.ReadingFilter{}, fmt.Errorf("%w: limit: %w", ErrInvalidQueryParameter, err)
	}
	if filter.Offset, err = parseUintParam(query.Get("offset")); err != nil {
		return models.ReadingFilter{}, fmt.Errorf("%w: offset: %w", ErrInvalidQueryParameter, err)
	}

	return filter, nil
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseUintParam(value string) (uint64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseUint(value, 10, 64)
}
