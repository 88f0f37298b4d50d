package handlers

import (
	"context"
	"dhl-location-service/internal/api/dto"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/logger"
	"dhl-location-service/internal/ports"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LocationHandler exposes the DHL location search.
type LocationHandler struct {
	Finder ports.LocationFinder
	// Deadline applied to each search; zero means the request context only.
	Timeout time.Duration
}

func criteriaFromQuery(r *http.Request) domain.SearchCriteria {
	q := r.URL.Query()
	return domain.SearchCriteria{
		Country:    strings.TrimSpace(q.Get("country")),
		PostalCode: strings.TrimSpace(q.Get("postal_code")),
		City:       strings.TrimSpace(q.Get("city")),
	}
}

// List returns the filtered locations for the query's country, postal_code
// and city as JSON.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	if err := criteria.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	locations, err := h.search(r.Context(), criteria)
	if err != nil {
		writeJSON(w, r, statusForFetchError(err), dto.ErrorResponse{
			Error: publicMessage(err),
			Kind:  domain.KindOf(err).String(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListLocationsResponse{Locations: locations})
}

// search runs the finder under the handler deadline and logs failures.
func (h *LocationHandler) search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Location, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	locations, err := h.Finder.FindByAddress(ctx, criteria)
	if err != nil {
		logFetchError(ctx, criteria, err)
		return nil, err
	}

	return locations, nil
}

// Every failure means "no results" to the visitor; the log level tells
// operators which ones need attention.
func logFetchError(ctx context.Context, criteria domain.SearchCriteria, err error) {
	log := logger.FromContext(ctx).With(
		zap.String("country", criteria.Country),
		zap.String("postal_code", criteria.PostalCode),
		zap.String("city", criteria.City),
		zap.String("kind", domain.KindOf(err).String()),
	)

	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		log.Error("location search failed", zap.Error(err))
		return
	}

	switch fe.Kind {
	case domain.KindEmptyResult:
		log.Info("no locations found")
	case domain.KindUpstream:
		log.Warn("DHL API returned non-200 status code",
			zap.Int("status", fe.StatusCode),
			zap.String("body", fe.Body),
		)
	case domain.KindConfiguration:
		log.Error("DHL API configuration is incomplete", zap.String("message", fe.Message))
	case domain.KindTransport:
		log.Error("DHL API request failed",
			zap.String("message", fe.Message),
			zap.String("body", fe.Body),
			zap.Error(fe.Err),
		)
	default:
		log.Error("error fetching DHL locations", zap.String("message", fe.Message), zap.Error(fe.Err))
	}
}

func statusForFetchError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindConfiguration:
		return http.StatusServiceUnavailable
	case domain.KindUpstream:
		return http.StatusBadGateway
	case domain.KindEmptyResult:
		return http.StatusNotFound
	case domain.KindTransport:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the visitor-facing text for a failed search. Upstream
// bodies and internal detail only go to the logs.
func publicMessage(err error) string {
	switch domain.KindOf(err) {
	case domain.KindEmptyResult:
		return "No locations found"
	case domain.KindConfiguration:
		return "Location search is not configured"
	case domain.KindUpstream, domain.KindTransport:
		return "Location service is currently unavailable"
	default:
		return "Internal server error"
	}
}
