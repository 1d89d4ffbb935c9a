package library

import (
	"context"
	"errors"

	apperrors "gamegestor/core/errors"
	"gamegestor/feature/library/models"

	"gorm.io/gorm"
)

// Store persists per-user tracking records. The composite unique index on
// (user_id, game_id) is the only concurrency-correctness mechanism; the
// store takes no locks.
type Store struct {
	db *gorm.DB
}

// NewStore creates a library store on the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindAllByUser returns all entries of a user with the referenced game
// preloaded for the denormalized summary.
func (s *Store) FindAllByUser(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	var entries []models.LibraryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Game").
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindOne returns the entry for a (user, game) pair, or ErrNotFound.
func (s *Store) FindOne(ctx context.Context, userID string, gameID uint) (*models.LibraryEntry, error) {
	var entry models.LibraryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert creates the entry for the pair with defaults on first call and
// mutates the same record on subsequent calls. Idempotent by key; only a
// pathological race between two first inserts surfaces a DuplicateKeyError.
func (s *Store) Upsert(ctx context.Context, userID string, gameID uint, fields EntryFields) (*models.LibraryEntry, error) {
	entry, err := s.FindOne(ctx, userID, gameID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	if entry == nil {
		entry = &models.LibraryEntry{
			UserID: userID,
			GameID: gameID,
			Status: models.StatusPending,
		}
		fields.Apply(entry)
		if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewDuplicateKeyError("library entry", userID, err)
			}
			return nil, err
		}
		return entry, nil
	}

	fields.Apply(entry)
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateOne mutates the supplied fields of an existing entry; it never
// creates. Returns ErrNotFound when the pair has no entry.
func (s *Store) UpdateOne(ctx context.Context, userID string, gameID uint, fields EntryFields) (*models.LibraryEntry, error) {
	entry, err := s.FindOne(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	fields.Apply(entry)
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteOne removes the entry for the pair, or ErrNotFound.
func (s *Store) DeleteOne(ctx context.Context, userID string, gameID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.LibraryEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
