package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// WeatherClient is the resty-based implementation of [AccountAPI] and the
// receiver of the generic reading functions.
type WeatherClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

var _ AccountAPI = (*WeatherClient)(nil)

// NewWeatherClient returns a client for the server at address, which may
// omit the scheme ("localhost:8080"). Returns an error if address is empty or
// cannot be parsed as a URL.
func NewWeatherClient(address string, timeout time.Duration, logger *logger.Logger) (*WeatherClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &WeatherClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *WeatherClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *WeatherClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login POSTs the credentials to /weather/auth and stores the access token
// from the response body.
func (c *WeatherClient) Login(ctx context.Context, username, password string) (string, error) {
	var result models.AccessToken

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Username: username, Password: password}).
		SetResult(&result).
		Post("/weather/auth")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := result.AccessToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	c.SetToken(token)
	c.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

func (c *WeatherClient) Me(ctx context.Context) (models.Account, error) {
	var account models.Account

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Account{}, err
	}

	resp, err := req.SetResult(&account).Get("/weather/protected/me")
	if err != nil {
		return models.Account{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (c *WeatherClient) RotatePassword(ctx context.Context, current, next string) (models.Account, error) {
	var account models.Account

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Account{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.RotateSecretRequest{Password: current, NewPassword: next}).
		SetResult(&account).
		Post("/weather/protected/accounts/password")
	if err != nil {
		return models.Account{}, fmt.Errorf("rotate password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (c *WeatherClient) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// authedRequest returns a request carrying the stored bearer token, or
// ErrNoToken.
func (c *WeatherClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return c.request(ctx).SetAuthToken(token), nil
}
