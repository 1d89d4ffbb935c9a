package library

import (
	apperrors "gamegestor/core/errors"
	"gamegestor/feature/library/models"
)

// EntryFields is the optional field set a caller can supply when creating or
// updating a library entry. Nil means "leave untouched" on update and "use
// the default" on insert.
type EntryFields struct {
	Status      *string  `json:"status"`
	Score       *float64 `json:"score"`
	Notes       *string  `json:"notes"`
	Favorite    *bool    `json:"favorite"`
	HoursPlayed *float64 `json:"hoursPlayed"`
}

// Validate re-checks the entry invariants. Handlers validate input before
// the service is reached, but the invariants hold independently of the
// transport layer.
func (f EntryFields) Validate() error {
	if f.Status != nil && !models.IsValidStatus(*f.Status) {
		return apperrors.NewValidationError("status", "must be one of pendiente, jugando, pausado, completado, abandonado")
	}
	if f.Score != nil && (*f.Score < 0 || *f.Score > 100) {
		return apperrors.NewValidationError("score", "must be between 0 and 100")
	}
	if f.Notes != nil && len(*f.Notes) > models.NotesMaxLength {
		return apperrors.NewValidationError("notes", "must not exceed 1000 characters")
	}
	if f.HoursPlayed != nil && *f.HoursPlayed < 0 {
		return apperrors.NewValidationError("hoursPlayed", "must not be negative")
	}
	return nil
}

// Apply copies the supplied fields onto the entry, leaving absent ones as
// they are.
func (f EntryFields) Apply(entry *models.LibraryEntry) {
	if f.Status != nil {
		entry.Status = *f.Status
	}
	if f.Score != nil {
		entry.Score = f.Score
	}
	if f.Notes != nil {
		entry.Notes = f.Notes
	}
	if f.Favorite != nil {
		entry.Favorite = *f.Favorite
	}
	if f.HoursPlayed != nil {
		entry.HoursPlayed = f.HoursPlayed
	}
}
