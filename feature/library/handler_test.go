package library

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamegestor/core/database"
	apperrors "gamegestor/core/errors"
	"gamegestor/core/middleware/auth"
	"gamegestor/feature/catalog"
	catalogmodels "gamegestor/feature/catalog/models"
	"gamegestor/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, fetcher catalog.Fetcher) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogmodels.Game{}, &models.LibraryEntry{}))

	if fetcher == nil {
		fetcher = &stubFetcher{err: apperrors.NewConfigError("rawg", "no fetcher in this test")}
	}
	catalogSvc := catalog.NewService(catalog.NewStore(db), fetcher, nil, zap.NewNop())
	service := NewService(NewStore(db), catalogSvc, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsKey, "u1")
		return c.Next()
	})
	NewHandler(service, zap.NewNop()).RegisterRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandleUpsertByExternalID(t *testing.T) {
	fetched := &catalogmodels.Game{
		ExternalID: strPtr("3498"),
		Title:      "The Witcher 3: Wild Hunt",
		Genre:      strPtr("RPG"),
	}
	app, db := newTestApp(t, &stubFetcher{game: fetched})

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"externalId": "3498",
		"status":     "pendiente",
		"favorite":   true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entry models.LibraryEntry
	decode(t, resp, &entry)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.True(t, entry.Favorite)
	assert.NotZero(t, entry.GameID)

	var game catalogmodels.Game
	require.NoError(t, db.First(&game, entry.GameID).Error)
	assert.Equal(t, "The Witcher 3: Wild Hunt", game.Title)
}

func TestHandleUpsertByGameID(t *testing.T) {
	app, db := newTestApp(t, nil)
	game := &catalogmodels.Game{Title: "Hollow Knight"}
	require.NoError(t, db.Create(game).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId": game.ID,
		"status": "jugando",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entry models.LibraryEntry
	decode(t, resp, &entry)
	assert.Equal(t, game.ID, entry.GameID)
	assert.Equal(t, models.StatusPlaying, entry.Status)
}

func TestHandleUpsertRejectsAmbiguousTarget(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// neither key
	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"status": "pendiente",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// both keys
	resp = doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId":     1,
		"externalId": "3498",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleUpsertUnknownGameID(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId": 9999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleUpsertProviderFailureStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"misconfigured", apperrors.NewConfigError("rawg", "api key missing"), fiber.StatusInternalServerError},
		{"timeout", apperrors.NewTimeoutError("rawg", context.DeadlineExceeded), fiber.StatusGatewayTimeout},
		{"upstream", apperrors.NewUpstreamError("rawg", 503, "down"), fiber.StatusBadGateway},
		{"parse", apperrors.NewParseError("rawg", io.ErrUnexpectedEOF), fiber.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApp(t, &stubFetcher{err: tc.err})
			resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
				"externalId": "3498",
			})
			assert.Equal(t, tc.code, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestHandleListEmbedsGame(t *testing.T) {
	app, db := newTestApp(t, nil)
	game := &catalogmodels.Game{Title: "Hollow Knight", Genre: strPtr("Metroidvania")}
	require.NoError(t, db.Create(game).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId": game.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/usuarios/me/biblioteca/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.ListedEntry
	decode(t, resp, &listed)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Game)
	assert.Equal(t, "Hollow Knight", listed[0].Game.Title)
	require.NotNil(t, listed[0].Game.Genre)
	assert.Equal(t, "Metroidvania", *listed[0].Game.Genre)
}

func TestHandleUpdate(t *testing.T) {
	app, db := newTestApp(t, nil)
	game := &catalogmodels.Game{Title: "Hollow Knight"}
	require.NoError(t, db.Create(game).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId":      game.ID,
		"status":      "jugando",
		"hoursPlayed": 120,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPut, "/usuarios/me/biblioteca/1", map[string]any{
		"hoursPlayed": 180,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entry models.LibraryEntry
	decode(t, resp, &entry)
	assert.Equal(t, models.StatusPlaying, entry.Status)
	require.NotNil(t, entry.HoursPlayed)
	assert.Equal(t, 180.0, *entry.HoursPlayed)
}

func TestHandleUpdateValidation(t *testing.T) {
	app, db := newTestApp(t, nil)
	game := &catalogmodels.Game{Title: "Hollow Knight"}
	require.NoError(t, db.Create(game).Error)

	resp := doJSON(t, app, fiber.MethodPut, "/usuarios/me/biblioteca/1", map[string]any{
		"status": "terminado",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPut, "/usuarios/me/biblioteca/abc", map[string]any{
		"status": "jugando",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleRemove(t *testing.T) {
	app, db := newTestApp(t, nil)
	game := &catalogmodels.Game{Title: "Hollow Knight"}
	require.NoError(t, db.Create(game).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/usuarios/me/biblioteca/", map[string]any{
		"gameId": game.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, "/usuarios/me/biblioteca/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, "/usuarios/me/biblioteca/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
