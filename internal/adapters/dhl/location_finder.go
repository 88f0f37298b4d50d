package dhl

import (
	"context"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/logger"
	"dhl-location-service/internal/platform/obs"
	"dhl-location-service/internal/ports"
	"dhl-location-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const findByAddressPath = "/location-finder/v1/find-by-address"

type findResponse struct {
	Locations []domain.Location `json:"locations"`
}

// LocationFinder implements ports.LocationFinder against the DHL Location
// Finder API.
//
// Settings are read and the API key resolved on every call, so admin changes
// apply to the next search. Exactly one GET is issued per call: no retries,
// no caching.
//
// The finder is safe for concurrent use.
type LocationFinder struct {
	session  *http.Client
	settings ports.SettingsStore
	keys     ports.KeyRepository
	filter   ports.LocationFilter
}

// NewLocationFinder wires the finder. A nil client uses http.DefaultClient and
// a nil filter uses services.FilterLocations.
func NewLocationFinder(
	client *http.Client,
	settings ports.SettingsStore,
	keys ports.KeyRepository,
	filter ports.LocationFilter,
) (*LocationFinder, error) {
	if settings == nil {
		return nil, errors.New("dhl location finder: settings store is nil")
	}
	if keys == nil {
		return nil, errors.New("dhl location finder: key repository is nil")
	}

	if client == nil {
		client = http.DefaultClient
	}
	if filter == nil {
		filter = services.FilterLocations
	}

	return &LocationFinder{
		session:  client,
		settings: settings,
		keys:     keys,
		filter:   filter,
	}, nil
}

// FindByAddress searches DHL locations near the given address and applies the
// configured filter. Every failure is returned as *domain.FetchError.
func (f *LocationFinder) FindByAddress(
	ctx context.Context,
	criteria domain.SearchCriteria,
) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "dhl.FindByAddress")(&err)

	settings, err := f.settings.GetSettings(ctx)
	if err != nil {
		return nil, serviceError(err)
	}

	apiKey, err := f.keys.GetKeyValue(ctx, settings.APIKeyID)
	if err != nil {
		if errors.Is(err, domain.ErrKeyIDUnset) || errors.Is(err, domain.ErrKeyNotFound) {
			return nil, &domain.FetchError{
				Kind:    domain.KindConfiguration,
				Message: "API configuration is incomplete: " + err.Error(),
				Err:     err,
			}
		}
		return nil, serviceError(err)
	}

	endpoint := strings.TrimRight(strings.TrimSpace(settings.APIEndpoint), "/")
	if endpoint == "" || apiKey == "" {
		return nil, &domain.FetchError{
			Kind:    domain.KindConfiguration,
			Message: "API configuration is incomplete",
		}
	}

	req, err := f.newRequest(ctx, http.MethodGet, endpoint+findByAddressPath, apiKey)
	if err != nil {
		return nil, serviceError(err)
	}

	q := url.Values{}
	q.Set("countryCode", criteria.Country)
	q.Set("postalCode", criteria.PostalCode)
	q.Set("addressLocality", criteria.City)
	req.URL.RawQuery = q.Encode()

	body, err := f.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			return nil, &domain.FetchError{
				Kind:       domain.KindUpstream,
				StatusCode: he.Code,
				Body:       he.Body,
				Message:    fmt.Sprintf("API returned status code: %d", he.Code),
				Err:        err,
			}
		}
		return nil, &domain.FetchError{
			Kind:    domain.KindTransport,
			Message: "API request failed: " + err.Error(),
			Err:     err,
		}
	}

	var decoded findResponse
	err = json.Unmarshal(body, &decoded)
	if err == nil && decoded.Locations == nil {
		err = errors.New(`missing "locations" array`)
	}
	if err != nil {
		snippet := bodySnippet(body)
		return nil, &domain.FetchError{
			Kind:       domain.KindTransport,
			StatusCode: http.StatusOK,
			Body:       snippet,
			Message:    "API request failed: " + snippet,
			Err:        fmt.Errorf("decode find-by-address response: %w", err),
		}
	}

	locations := f.filter(decoded.Locations)
	logger.FromContext(ctx).Debug("dhl locations filtered",
		zap.Int("returned", len(decoded.Locations)),
		zap.Int("kept", len(locations)),
	)
	if len(locations) == 0 {
		return nil, &domain.FetchError{
			Kind:    domain.KindEmptyResult,
			Message: "No locations found",
		}
	}

	return locations, nil
}

func serviceError(err error) *domain.FetchError {
	return &domain.FetchError{
		Kind:    domain.KindService,
		Message: "Service error: " + err.Error(),
		Err:     err,
	}
}
