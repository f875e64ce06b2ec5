// Package credentials persists the session token across process restarts.
// Presence of the stored value is the sole durable signal that a session
// existed; the profile is never persisted.
package credentials

import (
	"context"
)

// Repository stores at most one credential. Load returns "" with a nil error
// when nothing is stored.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
