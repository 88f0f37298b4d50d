package repositories

import (
	"context"
	"database/sql"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
)

// SQL-backed implementation of the KeyRepository port.
type SQLKeyRepository struct{ DB *sql.DB }

func NewSQLKeyRepository(db *sql.DB) *SQLKeyRepository {
	return &SQLKeyRepository{DB: db}
}

// Return the plaintext value stored under keyID.
func (s *SQLKeyRepository) GetKeyValue(ctx context.Context, keyID string) (_ string, err error) {
	defer obs.Time(ctx, "keys.GetKeyValue")(&err)

	keyID = strings.TrimSpace(keyID)
	if keyID == "" {
		return "", domain.ErrKeyIDUnset
	}

	if s.DB == nil {
		return "", errors.New("key repository: db is nil")
	}

	var value string
	err = s.DB.QueryRowContext(ctx, `
	SELECT key_value
	FROM keys
	WHERE key_id = $1;
	`, keyID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", domain.ErrKeyNotFound, keyID)
	}
	if err != nil {
		return "", fmt.Errorf("get key %q: %w", keyID, err)
	}

	return value, nil
}

// Insert or replace a key.
func (s *SQLKeyRepository) PutKey(ctx context.Context, keyID, label, value string) error {
	if s.DB == nil {
		return errors.New("key repository: db is nil")
	}

	keyID = strings.TrimSpace(keyID)
	if keyID == "" {
		return domain.ErrKeyIDUnset
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO keys (key_id, label, key_value)
	VALUES ($1, $2, $3)
	ON CONFLICT (key_id) DO UPDATE
	SET label = EXCLUDED.label,
		key_value = EXCLUDED.key_value;
	`, keyID, label, value)
	if err != nil {
		return fmt.Errorf("put key %q: %w", keyID, err)
	}

	return nil
}
