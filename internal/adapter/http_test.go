package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *WeatherClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewWeatherClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "host and port", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", in: "https://weather.example.com/", want: "https://weather.example.com"},
		{name: "surrounding spaces", in: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", in: "", wantErr: true},
		{name: "scheme only", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeatherClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/weather/auth", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Username != "alice" || creds.Password != "S3cret!" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "invalid credential"})
			return
		}

		w.Header().Set("Authorization", "Bearer tok-123")
		writeJSON(t, w, http.StatusOK, models.AccessToken{AccessToken: "tok-123"})
	})

	token, err := c.Login(context.Background(), "alice", "S3cret!")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "tok-123", c.Token())

	_, err = c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credential")
	assert.Equal(t, "tok-123", c.Token(), "failed login keeps the previous token")
}

func TestWeatherClient_LoginFallsBackToAuthorizationHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Authorization", "Bearer from-header")
		writeJSON(t, w, http.StatusOK, map[string]string{})
	})

	token, err := c.Login(context.Background(), "alice", "S3cret!")
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)
}

func TestWeatherClient_ProtectedCallsNeedToken(t *testing.T) {
	called := false
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = ProtectedReadings[models.Humidity](context.Background(), c, models.ReadingFilter{})
	assert.ErrorIs(t, err, ErrNoToken)

	assert.ErrorIs(t, DeleteReading[models.Humidity](context.Background(), c, 1), ErrNoToken)
	assert.False(t, called)
}

func TestWeatherClient_Me(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather/protected/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.Account{ID: 7, Username: "alice", Enabled: true})
	})
	c.SetToken(" tok ")

	account, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.True(t, account.Enabled)
}

func TestWeatherClient_RotatePassword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather/protected/accounts/password", r.URL.Path)

		var req models.RotateSecretRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "S3cret!" {
			writeJSON(t, w, http.StatusConflict, map[string]string{"error": "secrets do not match"})
			return
		}
		assert.Equal(t, "N3w!", req.NewPassword)
		writeJSON(t, w, http.StatusOK, models.Account{ID: 7, Username: "alice"})
	})
	c.SetToken("tok")

	account, err := c.RotatePassword(context.Background(), "S3cret!", "N3w!")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)

	_, err = c.RotatePassword(context.Background(), "bad", "N3w!")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			resp, err := c.request(context.Background()).Get("/")
			require.NoError(t, err)
			assert.ErrorIs(t, mapHTTPError(resp), tt.want)
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		resp, err := c.request(context.Background()).Get("/")
		require.NoError(t, err)
		assert.EqualError(t, mapHTTPError(resp), "http 418: I'm a teapot")
	})
}
