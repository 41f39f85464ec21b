package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// ServerAddress is the API base URL or host:port.
	// Env: WEATHER_SERVER
	ServerAddress string `env:"WEATHER_SERVER"`

	// Token is a previously issued access token.
	// Env: WEATHER_TOKEN
	Token string `env:"WEATHER_TOKEN"`

	// Timeout bounds a single API call.
	// Env: WEATHER_TIMEOUT
	Timeout time.Duration `env:"WEATHER_TIMEOUT"`

	// LogLevel is the minimum zerolog level.
	// Env: WEATHER_LOG_LEVEL
	LogLevel string `env:"WEATHER_LOG_LEVEL"`
}

// ClientDefaults returns the values applied to client fields left unset.
func ClientDefaults() *ClientConfig {
	return &ClientConfig{
		ServerAddress: "localhost:8080",
		Timeout:       10 * time.Second,
		LogLevel:      "warn",
	}
}

// GetClientConfig loads the client configuration from environment variables
// and the leading flags of args. Flags win over the environment. The
// arguments left after the flags are returned for the client to dispatch.
//
// Flags:
//
//	-s server address or base URL
//	-t access token
//	-timeout per-call timeout (e.g., "10s")
//	-log-level minimum log level
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("weather-client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.ServerAddress, "s", "", "Server address or base URL")
	fs.StringVar(&flagCfg.Token, "t", "", "Access token")
	fs.DurationVar(&flagCfg.Timeout, "timeout", 0, "Per-call timeout (e.g., 10s)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Minimum log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if err := mergo.Merge(cfg, ClientDefaults()); err != nil {
		return nil, nil, fmt.Errorf("error applying default configs: %w", err)
	}

	if cfg.Timeout <= 0 {
		return nil, nil, fmt.Errorf("%w: non-positive timeout", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
