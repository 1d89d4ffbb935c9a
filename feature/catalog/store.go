package catalog

import (
	"context"
	"errors"

	apperrors "gamegestor/core/errors"
	"gamegestor/feature/catalog/models"

	"gorm.io/gorm"
)

// Store persists canonical game records. Uniqueness of title and external id
// is enforced by the database; no merge logic lives here.
type Store struct {
	db *gorm.DB
}

// NewStore creates a catalog store on the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindAll returns every catalog game.
func (s *Store) FindAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindByExternalID looks a game up by its provider identifier.
// Returns ErrNotFound when no record matches.
func (s *Store) FindByExternalID(ctx context.Context, externalID string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByTitle looks a game up by its unique title.
// Returns ErrNotFound when no record matches.
func (s *Store) FindByTitle(ctx context.Context, title string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Where("titulo = ?", title).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ExistsByID reports whether a game with the given internal id exists.
func (s *Store) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new game. A title or external id collision surfaces as a
// retryable DuplicateKeyError.
func (s *Store) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	game.Normalize()
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateKeyError("game", game.Title, err)
		}
		return nil, err
	}
	return game, nil
}

// Save persists in-place changes to an existing record (merge-on-reconcile).
func (s *Store) Save(ctx context.Context, game *models.Game) error {
	if err := s.db.WithContext(ctx).Save(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewDuplicateKeyError("game", game.Title, err)
		}
		return err
	}
	return nil
}

// UpdateByTitle applies the non-nil fields of patch to the game with the
// given title and returns the updated record, or ErrNotFound.
func (s *Store) UpdateByTitle(ctx context.Context, title string, patch *models.Game) (*models.Game, error) {
	game, err := s.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(game).Updates(patch).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.NewDuplicateKeyError("game", title, err)
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteByTitle removes the game with the given title, or ErrNotFound.
func (s *Store) DeleteByTitle(ctx context.Context, title string) error {
	result := s.db.WithContext(ctx).Where("titulo = ?", title).Delete(&models.Game{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
