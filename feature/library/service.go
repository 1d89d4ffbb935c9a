package library

import (
	"context"

	apperrors "gamegestor/core/errors"
	catalogmodels "gamegestor/feature/catalog/models"
	"gamegestor/feature/library/models"

	"go.uber.org/zap"
)

// Catalog is the slice of the catalog feature the library depends on. The
// library reads the catalog; it never mutates catalog fields.
type Catalog interface {
	GetOrCreateGameByExternalID(ctx context.Context, externalID string) (*catalogmodels.Game, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// Service orchestrates create/update of library entries, resolving either a
// direct game reference or an external-identifier-driven game resolution.
type Service struct {
	store   *Store
	catalog Catalog
	logger  *zap.Logger
}

// NewService creates a library service.
func NewService(store *Store, catalog Catalog, logger *zap.Logger) *Service {
	return &Service{store: store, catalog: catalog, logger: logger}
}

// List returns the user's library with each game's display attributes
// embedded.
func (s *Service) List(ctx context.Context, userID string) ([]models.ListedEntry, error) {
	entries, err := s.store.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	listed := make([]models.ListedEntry, len(entries))
	for i, entry := range entries {
		listed[i] = entry.Listed()
	}
	return listed, nil
}

// UpsertByGameID creates or updates the entry for (userID, gameID). The game
// must exist in the catalog; a missing game fails with GameNotFoundError and
// creates no entry.
func (s *Service) UpsertByGameID(ctx context.Context, userID string, gameID uint, fields EntryFields) (*models.LibraryEntry, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.catalog.ExistsByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewGameNotFoundError(gameID)
	}

	return s.store.Upsert(ctx, userID, gameID, fields)
}

// UpsertByExternalID resolves the external identifier through the catalog
// (fetching and caching the game if needed), then upserts the entry for the
// resolved game. Resolution failures propagate unchanged.
func (s *Service) UpsertByExternalID(ctx context.Context, userID string, externalID string, fields EntryFields) (*models.LibraryEntry, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	game, err := s.catalog.GetOrCreateGameByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.UpsertByGameID(ctx, userID, game.ID, fields)
}

// Update mutates only the supplied fields of an existing entry. It never
// creates; a missing entry is reported as the not-found negative result,
// distinct from a validation failure.
func (s *Service) Update(ctx context.Context, userID string, gameID uint, fields EntryFields) (*models.LibraryEntry, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateOne(ctx, userID, gameID, fields)
}

// Remove deletes the entry for the pair, or reports not-found.
func (s *Service) Remove(ctx context.Context, userID string, gameID uint) error {
	return s.store.DeleteOne(ctx, userID, gameID)
}
