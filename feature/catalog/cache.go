package catalog

import (
	"context"

	apperrors "gamegestor/core/errors"
	"gamegestor/feature/catalog/models"
)

// readThrough is the cache-aside primitive behind game resolution: the
// catalog itself is the cache, keyed by external id. Fast path is a catalog
// lookup; only on a miss is the loader (fetch + merge-or-create) invoked.
//
// Keeping the hit/miss boundary in one place makes it testable in isolation
// from the reconciliation steps.
type readThrough struct {
	lookup func(ctx context.Context, key string) (*models.Game, error)
	load   func(ctx context.Context, key string) (*models.Game, error)
}

// Get returns the cached game for key, loading and persisting it on a miss.
func (c readThrough) Get(ctx context.Context, key string) (*models.Game, error) {
	game, err := c.lookup(ctx, key)
	if err == nil {
		return game, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}
	return c.load(ctx, key)
}
