// Package session persists the authenticated user under a single durable
// key. A malformed stored value is treated as "no session", never as an
// error surfaced to callers.
package session

import (
	"context"

	"github.com/riskwatch/riskwatch/internal/models"
)

// Store is the durable backend holding the serialized current user.
type Store interface {
	// Load returns the stored user, or nil when absent or malformed.
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}
