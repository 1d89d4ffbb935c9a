package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Game is a canonical catalog entry. It is shared across users; library
// entries reference it read-only and never mutate catalog fields.
//
// A game may exist without an external id (manually created or seeded) and
// acquire one later when an external lookup matches it by title.
type Game struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	ExternalID *string                     `gorm:"uniqueIndex;size:64" json:"externalId,omitempty"`
	Title      string                      `gorm:"column:titulo;uniqueIndex;size:255;not null" json:"titulo"`
	Genre      *string                     `gorm:"column:genero;size:100" json:"genero,omitempty"`
	Platforms  datatypes.JSONSlice[string] `gorm:"column:plataformas" json:"plataformas,omitempty"`
	Developer  *string                     `gorm:"column:desarrollador;size:255" json:"desarrollador,omitempty"`
	Release    *string                     `gorm:"column:lanzamiento;size:32" json:"lanzamiento,omitempty"`
	Modes      datatypes.JSONSlice[string] `gorm:"column:modo" json:"modo,omitempty"`
	Score      *float64                    `gorm:"column:puntuacion" json:"puntuacion,omitempty"`
	CoverURL   *string                     `gorm:"column:cover_url;size:1024" json:"coverUrl,omitempty"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// TableName sets the table name.
func (Game) TableName() string {
	return "juegos"
}

// Normalize trims the identity fields before persistence.
func (g *Game) Normalize() {
	g.Title = strings.TrimSpace(g.Title)
	if g.ExternalID != nil {
		trimmed := strings.TrimSpace(*g.ExternalID)
		if trimmed == "" {
			g.ExternalID = nil
		} else {
			g.ExternalID = &trimmed
		}
	}
}

// Summary is the denormalized slice of game attributes embedded in library
// listings.
type Summary struct {
	ID        uint                        `json:"id"`
	Title     string                      `json:"titulo"`
	Genre     *string                     `json:"genero,omitempty"`
	Platforms datatypes.JSONSlice[string] `json:"plataformas,omitempty"`
	Developer *string                     `json:"desarrollador,omitempty"`
}

// Summarize extracts the display attributes of a game.
func (g *Game) Summarize() Summary {
	return Summary{
		ID:        g.ID,
		Title:     g.Title,
		Genre:     g.Genre,
		Platforms: g.Platforms,
		Developer: g.Developer,
	}
}
