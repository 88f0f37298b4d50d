package ports

import (
	"context"
	"dhl-location-service/internal/domain"
)

// Port: a boundary for reading and writing the DHL API settings.
type SettingsStore interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.Settings) error
}
