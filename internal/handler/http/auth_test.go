// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/models"
)

func TestLogin_Success(t *testing.T) {
	router, mocks := newTestRouter(t)
	account := enabledAlice()

	gomock.InOrder(
		mocks.auth.EXPECT().Authenticate(gomock.Any(), "alice", "S3cret!").Return(account, nil),
		mocks.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil),
	)

	rr := doRequest(t, router, http.MethodPost, "/weather/auth", `{"username":"alice","password":"S3cret!"}`, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))

	var body models.AccessToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "signed", body.AccessToken)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *testServices)
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidJSON.Error(),
		},
		{
			name: "invalid credential",
			body: `{"username":"alice","password":"wrong"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "alice", "wrong").Return(models.Account{}, service.ErrAuthFailure)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid credential",
		},
		{
			name: "token creation failure",
			body: `{"username":"alice","password":"S3cret!"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "alice", "S3cret!").Return(enabledAlice(), nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), enabledAlice()).
					Return(models.Token{}, errors.Join(service.ErrTokenCreationFailed, errors.New("empty key")))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			rr := doRequest(t, router, http.MethodPost, "/weather/auth", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestMe(t *testing.T) {
	router, mocks := newTestRouter(t)
	account := enabledAlice()
	account.SecretHash = "$2a$10$secret"
	mocks.expectAuthenticated(account)

	rr := doRequest(t, router, http.MethodGet, "/weather/protected/me", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")

	var got models.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, int64(7), got.ID)
}

func TestMe_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/weather/protected/me", "", false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRotatePassword(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "rotated", wantStatus: http.StatusOK},
		{name: "current secret mismatch", serviceErr: service.ErrSecretMismatch, wantStatus: http.StatusConflict},
		{name: "empty new secret", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			account := enabledAlice()
			mocks.expectAuthenticated(account)

			returned := account
			if tt.serviceErr != nil {
				returned = models.Account{}
			}
			mocks.accounts.EXPECT().
				RotateSecret(gomock.Any(), "alice", "S3cret!", "N3w").
				Return(returned, tt.serviceErr)

			rr := doRequest(t, router, http.MethodPost, "/weather/protected/accounts/password",
				`{"password":"S3cret!","new_password":"N3w"}`, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
