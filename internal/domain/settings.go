package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const DefaultAPIEndpoint = "https://api.dhl.com"

// Administrative settings for the DHL API. APIKeyID references a secret held
// by a KeyRepository; the secret itself is never stored here.
type Settings struct {
	APIEndpoint string
	APIKeyID    string
}

// Normalize validates the settings and returns them with surrounding
// whitespace and trailing slashes removed from the endpoint.
func (s Settings) Normalize() (Settings, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(s.APIEndpoint), "/")
	keyID := strings.TrimSpace(s.APIKeyID)

	if endpoint == "" {
		return Settings{}, errors.New("settings: api endpoint is required")
	}

	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: invalid api endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Settings{}, fmt.Errorf("settings: api endpoint %q must be an absolute http(s) URL", endpoint)
	}

	if keyID == "" {
		return Settings{}, errors.New("settings: api key id is required")
	}

	return Settings{APIEndpoint: endpoint, APIKeyID: keyID}, nil
}
