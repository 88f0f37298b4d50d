package repositories

import (
	"context"
	"database/sql"
	"dhl-location-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSettingsQuery := `
	CREATE TABLE IF NOT EXISTS settings (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createKeysQuery := `
	CREATE TABLE IF NOT EXISTS keys (
		key_id TEXT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT '',
		key_value TEXT NOT NULL
	);
	`

	statements := []string{
		createSettingsQuery,
		createKeysQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type KeySeed struct {
	KeyID    string `json:"key_id"`
	Label    string `json:"label"`
	KeyValue string `json:"key_value"`
}

type SettingsSeed struct {
	APIEndpoint string `json:"api_endpoint"`
	APIKeyID    string `json:"api_key"`
}

type Seed struct {
	Settings SettingsSeed `json:"settings"`
	Keys     []KeySeed    `json:"keys"`
}

// Populate settings and keys from a JSON file. Key values are expanded with
// os.ExpandEnv so secrets can stay in the environment, e.g. "${DHL_API_KEY}".
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	keys := NewSQLKeyRepository(db)
	for i, k := range data.Keys {
		id := strings.TrimSpace(k.KeyID)
		if id == "" {
			return fmt.Errorf("seed: key at index %d: key_id cannot be empty", i+1)
		}

		value := strings.TrimSpace(os.ExpandEnv(k.KeyValue))
		if value == "" {
			return fmt.Errorf("seed: key %q: key_value is empty after expansion", id)
		}

		if err := keys.PutKey(ctx, id, k.Label, value); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	endpoint := data.Settings.APIEndpoint
	if strings.TrimSpace(endpoint) == "" {
		endpoint = domain.DefaultAPIEndpoint
	}

	settings := NewSQLSettingsStore(db)
	if err := settings.SaveSettings(ctx, domain.Settings{APIEndpoint: endpoint, APIKeyID: data.Settings.APIKeyID}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}
