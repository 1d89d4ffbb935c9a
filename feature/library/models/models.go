package models

import (
	"time"

	catalogmodels "gamegestor/feature/catalog/models"
)

// Tracking statuses a game can have in a user's library.
const (
	StatusPending   = "pendiente"
	StatusPlaying   = "jugando"
	StatusPaused    = "pausado"
	StatusCompleted = "completado"
	StatusAbandoned = "abandonado"
)

// NotesMaxLength bounds the free-text notes field.
const NotesMaxLength = 1000

// IsValidStatus checks if a status is one of the enumerated values.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPlaying, StatusPaused, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

// LibraryEntry is one user's tracking record for one catalog game. The
// (user_id, game_id) pair is the natural key; the composite unique index
// guarantees at most one entry per pair.
type LibraryEntry struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	UserID      string              `gorm:"size:64;not null;uniqueIndex:idx_user_game" json:"userId"`
	GameID      uint                `gorm:"not null;uniqueIndex:idx_user_game" json:"gameId"`
	Game        *catalogmodels.Game `gorm:"foreignKey:GameID" json:"-"`
	Status      string              `gorm:"size:16;not null;default:pendiente" json:"status"`
	Score       *float64            `json:"score,omitempty"`
	Notes       *string             `gorm:"size:1000" json:"notes,omitempty"`
	Favorite    bool                `gorm:"not null;default:false" json:"favorite"`
	HoursPlayed *float64            `json:"hoursPlayed,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// TableName sets the table name.
func (LibraryEntry) TableName() string {
	return "juegos_usuario"
}

// ListedEntry is a library entry with the referenced game's display
// attributes embedded, as returned by list operations.
type ListedEntry struct {
	LibraryEntry
	Game *catalogmodels.Summary `json:"game,omitempty"`
}

// Listed converts an entry with a preloaded association into the
// denormalized list shape.
func (e LibraryEntry) Listed() ListedEntry {
	listed := ListedEntry{LibraryEntry: e}
	if e.Game != nil {
		summary := e.Game.Summarize()
		listed.Game = &summary
	}
	return listed
}
