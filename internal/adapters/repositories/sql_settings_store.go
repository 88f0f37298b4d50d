package repositories

import (
	"context"
	"database/sql"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/platform/obs"
	"errors"
	"fmt"
)

const (
	settingAPIEndpoint = "api_endpoint"
	settingAPIKey      = "api_key"
)

// SQLSettingsStore is a key/value backed implementation of the SettingsStore port.
type SQLSettingsStore struct {
	DB *sql.DB
}

func NewSQLSettingsStore(db *sql.DB) *SQLSettingsStore {
	return &SQLSettingsStore{DB: db}
}

// Return the stored settings. Missing rows fall back to defaults: the public
// DHL endpoint and no key id.
func (s *SQLSettingsStore) GetSettings(ctx context.Context) (_ domain.Settings, err error) {
	defer obs.Time(ctx, "settings.GetSettings")(&err)

	if s.DB == nil {
		return domain.Settings{}, errors.New("settings store: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name, value
	FROM settings
	WHERE name IN ($1, $2);
	`, settingAPIEndpoint, settingAPIKey)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: query settings table: %w", err)
	}
	defer rows.Close()

	out := domain.Settings{APIEndpoint: domain.DefaultAPIEndpoint}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return domain.Settings{}, fmt.Errorf("get settings: scan rows: %w", err)
		}

		switch name {
		case settingAPIEndpoint:
			if value != "" {
				out.APIEndpoint = value
			}
		case settingAPIKey:
			out.APIKeyID = value
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: row iteration: %w", err)
	}

	return out, nil
}

// Validate, normalize and store the settings in a single transaction.
func (s *SQLSettingsStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if s.DB == nil {
		return errors.New("settings store: db is nil")
	}

	normalized, err := settings.Normalize()
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save settings: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO settings (name, value)
	VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE
	SET value = EXCLUDED.value;
	`)
	if err != nil {
		return fmt.Errorf("save settings: db prepare: %w", err)
	}
	defer stmt.Close()

	values := [][2]string{
		{settingAPIEndpoint, normalized.APIEndpoint},
		{settingAPIKey, normalized.APIKeyID},
	}
	for _, kv := range values {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save settings name=%q: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save settings commit: %w", err)
	}

	return nil
}
