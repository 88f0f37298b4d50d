package dhl

import (
	"context"
	"dhl-location-service/internal/domain"
	"sync"
)

// MockLocationFinder returns canned results and records the criteria it was
// called with.
type MockLocationFinder struct {
	Locations []domain.Location
	Err       error

	mu    sync.Mutex
	calls []domain.SearchCriteria
}

func NewMockLocationFinder(locations []domain.Location, err error) *MockLocationFinder {
	return &MockLocationFinder{Locations: locations, Err: err}
}

func (m *MockLocationFinder) FindByAddress(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Location, error) {
	m.mu.Lock()
	m.calls = append(m.calls, criteria)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Kind: domain.KindTransport, Message: "API request failed: " + err.Error(), Err: err}
	}

	return m.Locations, nil
}

func (m *MockLocationFinder) Calls() []domain.SearchCriteria {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchCriteria(nil), m.calls...)
}
