package rawg

import (
	"strconv"
	"strings"

	"gamegestor/feature/catalog/models"
)

// Mode labels stored on the catalog model.
const (
	ModeSinglePlayer = "Un jugador"
	ModeMultiPlayer  = "Multijugador"
)

// gamePayload mirrors the subset of the RAWG game detail response the
// catalog cares about.
type gamePayload struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Released        string   `json:"released"`
	BackgroundImage string   `json:"background_image"`
	Metacritic      *float64 `json:"metacritic"`
	Genres          []named  `json:"genres"`
	Tags            []named  `json:"tags"`
	Developers      []named  `json:"developers"`
	Publishers      []named  `json:"publishers"`
	Platforms       []struct {
		Platform *named `json:"platform"`
	} `json:"platforms"`
}

type named struct {
	Name string `json:"name"`
}

// normalize maps a provider payload onto the catalog model: first listed
// genre, first developer (falling back to first publisher), one platform
// name per platform entry with null sub-fields dropped, and the play modes
// derived from the tag list.
func normalize(p *gamePayload) *models.Game {
	game := &models.Game{
		Title: p.Name,
		Score: p.Metacritic,
	}

	if p.ID != 0 {
		id := strconv.Itoa(p.ID)
		game.ExternalID = &id
	}
	if len(p.Genres) > 0 && p.Genres[0].Name != "" {
		game.Genre = &p.Genres[0].Name
	}
	if dev := firstName(p.Developers, p.Publishers); dev != "" {
		game.Developer = &dev
	}
	if p.Released != "" {
		game.Release = &p.Released
	}
	if p.BackgroundImage != "" {
		game.CoverURL = &p.BackgroundImage
	}

	for _, entry := range p.Platforms {
		if entry.Platform != nil && entry.Platform.Name != "" {
			game.Platforms = append(game.Platforms, entry.Platform.Name)
		}
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Name != "" {
			tags = append(tags, t.Name)
		}
	}
	game.Modes = ModesFromTags(tags)

	return game
}

func firstName(lists ...[]named) string {
	for _, list := range lists {
		if len(list) > 0 && list[0].Name != "" {
			return list[0].Name
		}
	}
	return ""
}

// ModesFromTags derives the deduplicated play-mode list from the provider's
// free-text tags by case-insensitive substring match. The heuristic misses
// tags phrased differently (co-op, "single player" with a space); it is kept
// isolated here so an exact tag mapping can replace it without touching the
// reconciliation flow.
func ModesFromTags(tags []string) []string {
	var modes []string
	seen := map[string]bool{}
	add := func(mode string) {
		if !seen[mode] {
			seen[mode] = true
			modes = append(modes, mode)
		}
	}

	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "singleplayer") {
			add(ModeSinglePlayer)
		}
		if strings.Contains(lower, "multiplayer") {
			add(ModeMultiPlayer)
		}
	}
	return modes
}
