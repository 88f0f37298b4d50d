package ports

import "context"

// Resolves a stored key id to its plaintext value.
//
// Implementations return domain.ErrKeyIDUnset for a blank id and
// domain.ErrKeyNotFound when the id is unknown, so callers can tell
// misconfiguration apart from storage failures.
type KeyRepository interface {
	GetKeyValue(ctx context.Context, keyID string) (string, error)
}
