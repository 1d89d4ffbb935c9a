package catalog

import (
	"context"

	apperrors "gamegestor/core/errors"
	"gamegestor/feature/catalog/models"

	"go.uber.org/zap"
)

// Fetcher retrieves a normalized game from the external metadata provider.
type Fetcher interface {
	FetchGameByExternalID(ctx context.Context, externalID string) (*models.Game, error)
}

// Service orchestrates catalog reads, writes and external-id reconciliation.
type Service struct {
	store   *Store
	fetcher Fetcher
	covers  *CoverMirror
	logger  *zap.Logger
}

// NewService creates a catalog service. covers may be nil when cover-art
// mirroring is not configured.
func NewService(store *Store, fetcher Fetcher, covers *CoverMirror, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		covers:  covers,
		logger:  logger,
	}
}

// GetOrCreateGameByExternalID resolves an external identifier to exactly one
// catalog game, using the catalog as a read-through cache:
//
//  1. lookup by external id; on a hit, return without any network call
//  2. on a miss, fetch + normalize from the provider (failures propagate)
//  3. lookup by the normalized title (games may be pre-seeded without one)
//  4. title match: fill-empty-only merge, persist, return
//  5. otherwise create a new record from the normalized attributes
//
// Two concurrent first-time resolutions of the same id can both reach step 5;
// the loser fails with a retryable DuplicateKeyError and should re-resolve.
func (s *Service) GetOrCreateGameByExternalID(ctx context.Context, externalID string) (*models.Game, error) {
	cache := readThrough{
		lookup: s.store.FindByExternalID,
		load:   s.fetchAndReconcile,
	}
	return cache.Get(ctx, externalID)
}

// fetchAndReconcile is the cache-miss path: fetch from the provider, then
// merge into a pre-seeded title match or create a fresh record.
func (s *Service) fetchAndReconcile(ctx context.Context, externalID string) (*models.Game, error) {
	fetched, err := s.fetcher.FetchGameByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	fetched.Normalize()
	if fetched.Title == "" {
		// An untitled row would become a merge target for every later
		// untitled fetch, so it must never reach the catalog.
		return nil, apperrors.NewValidationError("titulo", "must not be empty")
	}

	existing, err := s.store.FindByTitle(ctx, fetched.Title)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		mergeMissing(existing, fetched)
		if err := s.store.Save(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("merged external metadata into existing game",
			zap.String("titulo", existing.Title),
			zap.String("external_id", externalID),
		)
		s.mirrorCover(ctx, existing)
		return existing, nil
	}

	created, err := s.store.Create(ctx, fetched)
	if err != nil {
		return nil, err
	}
	s.logger.Info("cached new game from provider",
		zap.String("titulo", created.Title),
		zap.String("external_id", externalID),
	)
	s.mirrorCover(ctx, created)
	return created, nil
}

// mirrorCover copies the game's cover into object storage when configured.
// Best effort: a failed mirror never fails the reconciliation.
func (s *Service) mirrorCover(ctx context.Context, game *models.Game) {
	if s.covers == nil || game.CoverURL == nil {
		return
	}
	if err := s.covers.Mirror(ctx, game.ID, *game.CoverURL); err != nil {
		s.logger.Warn("cover mirror failed",
			zap.Uint("game_id", game.ID),
			zap.Error(err),
		)
	}
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]models.Game, error) {
	return s.store.FindAll(ctx)
}

// GetByTitle returns one game by its unique title, or ErrNotFound.
func (s *Service) GetByTitle(ctx context.Context, title string) (*models.Game, error) {
	return s.store.FindByTitle(ctx, title)
}

// Create inserts a manually curated game.
func (s *Service) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	if game.Title == "" {
		return nil, apperrors.NewValidationError("titulo", "must not be empty")
	}
	return s.store.Create(ctx, game)
}

// UpdateByTitle applies a partial edit to a curated game.
func (s *Service) UpdateByTitle(ctx context.Context, title string, patch *models.Game) (*models.Game, error) {
	return s.store.UpdateByTitle(ctx, title, patch)
}

// DeleteByTitle removes a game from the catalog.
func (s *Service) DeleteByTitle(ctx context.Context, title string) error {
	return s.store.DeleteByTitle(ctx, title)
}

// ExistsByID reports whether the given internal id is a valid catalog game.
func (s *Service) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.store.ExistsByID(ctx, id)
}
