package keys

import (
	"context"
	"dhl-location-service/internal/domain"
	"fmt"
	"os"
	"strings"
)

// EnvKeyRepository resolves key ids from environment variables. The id
// "dhl_api" with prefix "KEY_" is read from KEY_DHL_API.
type EnvKeyRepository struct {
	Prefix string
}

func NewEnvKeyRepository(prefix string) *EnvKeyRepository {
	return &EnvKeyRepository{Prefix: prefix}
}

func (r *EnvKeyRepository) GetKeyValue(_ context.Context, keyID string) (string, error) {
	keyID = strings.TrimSpace(keyID)
	if keyID == "" {
		return "", domain.ErrKeyIDUnset
	}

	name := r.VarName(keyID)
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %s (env %s)", domain.ErrKeyNotFound, keyID, name)
	}

	return strings.TrimSpace(value), nil
}

// VarName returns the environment variable consulted for keyID.
func (r *EnvKeyRepository) VarName(keyID string) string {
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z':
			return c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		default:
			return '_'
		}
	}, strings.TrimSpace(keyID))

	return r.Prefix + name
}
