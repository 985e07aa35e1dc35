// Package viewstate keeps the lists rendered by one page view on the server so
// that later mutation requests from that view can patch them.
package viewstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobsboard/web/pkg/configuration"
)

var ErrNotFound = errors.New("viewstate: view not found or expired")

// Store saves JSON encoded view state under a view id. Entries expire after
// the store's TTL and are never shared between views.
type Store interface {
	Save(ctx context.Context, id string, state any) error
	Load(ctx context.Context, id string, state any) error
	// Update loads state, runs fn and saves state again when fn succeeds.
	// Concurrent updates of the same view are serialized.
	Update(ctx context.Context, id string, state any, fn func() error) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

// New builds the store selected by the configuration.
func New(opts configuration.ViewStateOptions) (Store, error) {
	switch opts.Storage {
	case "redis":
		store, err := NewRedisStore(opts.RedisURL, opts.TTL)
		if err != nil {
			return nil, fmt.Errorf("viewstate: %w", err)
		}
		return store, nil
	default:
		return NewMemoryStore(opts.TTL), nil
	}
}
