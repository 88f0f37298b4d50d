package ports

import (
	"context"
	"dhl-location-service/internal/domain"
)

// Contract for searching DHL locations by address.
type LocationFinder interface {
	// Return the locations matching the criteria. Failures are reported as
	// *domain.FetchError; an empty result is itself an error.
	FindByAddress(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Location, error)
}

// Policy applied to raw API results before they are returned.
// Implementations must be pure and keep the relative order of kept items.
type LocationFilter func(locations []domain.Location) []domain.Location
