package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvAPIKey  = "ALPHAVANTAGE_API_KEY"
	EnvBaseURL = "ALPHAVANTAGE_BASE_URL"
)

// Config holds process configuration resolved once at startup. The API
// key is read here and passed explicitly to the client constructor; no
// call-time environment reads happen anywhere else.
type Config struct {
	APIKey  string
	BaseURL string // empty means the client default
}

// Load reads configuration from the environment. A missing API key is an
// error; the process must not serve requests without it.
func Load() (Config, error) {
	key := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if key == "" {
		return Config{}, fmt.Errorf("%s environment variable is required", EnvAPIKey)
	}
	return Config{
		APIKey:  key,
		BaseURL: strings.TrimSuffix(strings.TrimSpace(os.Getenv(EnvBaseURL)), "/"),
	}, nil
}
