package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/mock"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

const testToken = "header.payload.signature"

// testServices bundles the service mocks behind one Handler.
type testServices struct {
	auth        *mock.MockAuthService
	accounts    *mock.MockAccountService
	humidity    *mock.MockReadingService[models.Humidity]
	pressure    *mock.MockReadingService[models.Pressure]
	temperature *mock.MockReadingService[models.Temperature]
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:        mock.NewMockAuthService(ctrl),
		accounts:    mock.NewMockAccountService(ctrl),
		humidity:    mock.NewMockReadingService[models.Humidity](ctrl),
		pressure:    mock.NewMockReadingService[models.Pressure](ctrl),
		temperature: mock.NewMockReadingService[models.Temperature](ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:        mocks.auth,
		AccountService:     mocks.accounts,
		HumidityService:    mocks.humidity,
		PressureService:    mocks.pressure,
		TemperatureService: mocks.temperature,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h.Init(), mocks
}

// expectAuthenticated makes the auth middleware accept testToken as account.
func (m *testServices) expectAuthenticated(account models.Account) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{AccountID: account.ID}, nil)
	m.auth.EXPECT().VerifyIdentity(gomock.Any(), account.ID).Return(account, nil)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func enabledAlice() models.Account {
	return models.Account{ID: 7, Username: "alice", Enabled: true}
}
