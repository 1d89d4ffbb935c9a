package catalog

import (
	"strings"

	"gamegestor/feature/catalog/models"

	"gorm.io/datatypes"
)

// The fill-empty-only merge policy: reconciliation may populate attributes
// the curated record is missing, but never overwrites a present value. Each
// helper is pure so the policy is testable per field.

// fillText returns existing unless it is nil or blank.
func fillText(existing, incoming *string) *string {
	if existing != nil && strings.TrimSpace(*existing) != "" {
		return existing
	}
	return incoming
}

// fillList returns existing unless it is empty.
func fillList(existing, incoming datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	if len(existing) > 0 {
		return existing
	}
	return incoming
}

// fillNumber returns existing unless it is nil. An explicit zero counts as
// present and survives the merge.
func fillNumber(existing, incoming *float64) *float64 {
	if existing != nil {
		return existing
	}
	return incoming
}

// mergeMissing copies each mergeable attribute of fetched onto game when the
// game's own value is absent. The title is identity, not a mergeable field.
func mergeMissing(game *models.Game, fetched *models.Game) {
	game.ExternalID = fillText(game.ExternalID, fetched.ExternalID)
	game.CoverURL = fillText(game.CoverURL, fetched.CoverURL)
	game.Genre = fillText(game.Genre, fetched.Genre)
	game.Platforms = fillList(game.Platforms, fetched.Platforms)
	game.Developer = fillText(game.Developer, fetched.Developer)
	game.Release = fillText(game.Release, fetched.Release)
	game.Modes = fillList(game.Modes, fetched.Modes)
	game.Score = fillNumber(game.Score, fetched.Score)
}
