package library

import (
	"context"
	"testing"
	"time"

	"gamegestor/core/database"
	apperrors "gamegestor/core/errors"
	"gamegestor/feature/catalog"
	catalogmodels "gamegestor/feature/catalog/models"
	"gamegestor/feature/library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

// stubFetcher lets the catalog service serve UpsertByExternalID in tests.
type stubFetcher struct {
	game *catalogmodels.Game
	err  error
}

func (f *stubFetcher) FetchGameByExternalID(ctx context.Context, externalID string) (*catalogmodels.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	clone := *f.game
	return &clone, nil
}

func setup(t *testing.T, fetcher catalog.Fetcher) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogmodels.Game{}, &models.LibraryEntry{}))

	if fetcher == nil {
		fetcher = &stubFetcher{err: apperrors.NewConfigError("rawg", "no fetcher in this test")}
	}
	catalogSvc := catalog.NewService(catalog.NewStore(db), fetcher, nil, zap.NewNop())
	return NewService(NewStore(db), catalogSvc, zap.NewNop()), db
}

func seedGame(t *testing.T, db *gorm.DB, title string) *catalogmodels.Game {
	t.Helper()
	game := &catalogmodels.Game{Title: title}
	require.NoError(t, db.Create(game).Error)
	return game
}

func TestUpsertByGameIDCreatesWithDefaults(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	entry, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, entry.Status)
	assert.False(t, entry.Favorite)
	assert.Nil(t, entry.Score)
	assert.Nil(t, entry.Notes)
	assert.Nil(t, entry.HoursPlayed)
}

func TestUpsertByGameIDIsIdempotentByKey(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	first, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{
		Status: strPtr(models.StatusPlaying),
	})
	require.NoError(t, err)

	second, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{
		Status:   strPtr(models.StatusCompleted),
		Favorite: boolPtr(true),
	})
	require.NoError(t, err)

	// same record, latest fields
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.StatusCompleted, second.Status)
	assert.True(t, second.Favorite)

	var count int64
	db.Model(&models.LibraryEntry{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertByGameIDMissingGame(t *testing.T) {
	svc, db := setup(t, nil)

	_, err := svc.UpsertByGameID(context.Background(), "u1", 9999, EntryFields{})
	assert.True(t, apperrors.IsNotFound(err))

	var gnf *apperrors.GameNotFoundError
	assert.ErrorAs(t, err, &gnf)

	var count int64
	db.Model(&models.LibraryEntry{}).Count(&count)
	assert.Zero(t, count, "a failed existence check must not create an entry")
}

func TestUpsertByExternalIDCreatesGameAndEntry(t *testing.T) {
	fetched := &catalogmodels.Game{
		ExternalID: strPtr("3498"),
		Title:      "The Witcher 3: Wild Hunt",
		Genre:      strPtr("RPG"),
	}
	svc, db := setup(t, &stubFetcher{game: fetched})

	entry, err := svc.UpsertByExternalID(context.Background(), "u1", "3498", EntryFields{
		Status:   strPtr(models.StatusPending),
		Favorite: boolPtr(true),
	})
	require.NoError(t, err)

	var game catalogmodels.Game
	require.NoError(t, db.Where("titulo = ?", "The Witcher 3: Wild Hunt").First(&game).Error)
	require.NotNil(t, game.ExternalID)
	assert.Equal(t, "3498", *game.ExternalID)

	assert.Equal(t, game.ID, entry.GameID)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.True(t, entry.Favorite)
	assert.Nil(t, entry.Score)
	assert.Nil(t, entry.Notes)
	assert.Nil(t, entry.HoursPlayed)
}

func TestUpsertByExternalIDMergesSeededGame(t *testing.T) {
	fetched := &catalogmodels.Game{
		ExternalID: strPtr("3498"),
		Title:      "The Witcher 3: Wild Hunt",
		Genre:      strPtr("Action"),
	}
	svc, db := setup(t, &stubFetcher{game: fetched})

	seeded := &catalogmodels.Game{Title: "The Witcher 3: Wild Hunt", Genre: strPtr("RPG")}
	require.NoError(t, db.Create(seeded).Error)

	entry, err := svc.UpsertByExternalID(context.Background(), "u1", "3498", EntryFields{})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, entry.GameID)

	var game catalogmodels.Game
	require.NoError(t, db.First(&game, seeded.ID).Error)
	require.NotNil(t, game.ExternalID)
	assert.Equal(t, "3498", *game.ExternalID)
	require.NotNil(t, game.Genre)
	assert.Equal(t, "RPG", *game.Genre, "curated genre must survive the merge")

	var count int64
	db.Model(&catalogmodels.Game{}).Count(&count)
	assert.EqualValues(t, 1, count, "no second game row")
}

func TestUpsertByExternalIDPropagatesFetchFailures(t *testing.T) {
	svc, _ := setup(t, &stubFetcher{err: apperrors.NewUpstreamError("rawg", 503, "down")})

	_, err := svc.UpsertByExternalID(context.Background(), "u1", "3498", EntryFields{})
	assert.True(t, apperrors.IsUpstream(err))
}

func TestUpdateTouchesOnlySuppliedFields(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	_, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{
		Status:      strPtr(models.StatusPlaying),
		Score:       numPtr(85),
		Notes:       strPtr("great so far"),
		Favorite:    boolPtr(true),
		HoursPlayed: numPtr(120),
	})
	require.NoError(t, err)

	before, err := svc.store.FindOne(context.Background(), "u1", game.ID)
	require.NoError(t, err)
	// Let the clock move so updatedAt is observably advanced.
	time.Sleep(10 * time.Millisecond)

	updated, err := svc.Update(context.Background(), "u1", game.ID, EntryFields{
		HoursPlayed: numPtr(180),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlaying, updated.Status)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 85.0, *updated.Score)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "great so far", *updated.Notes)
	assert.True(t, updated.Favorite)
	require.NotNil(t, updated.HoursPlayed)
	assert.Equal(t, 180.0, *updated.HoursPlayed)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateMissingEntryIsNotFound(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	_, err := svc.Update(context.Background(), "u1", game.ID, EntryFields{Score: numPtr(50)})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	cases := []struct {
		name   string
		fields EntryFields
	}{
		{"bad status", EntryFields{Status: strPtr("terminado")}},
		{"score too high", EntryFields{Score: numPtr(101)}},
		{"negative score", EntryFields{Score: numPtr(-1)}},
		{"negative hours", EntryFields{HoursPlayed: numPtr(-5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), "u1", game.ID, tc.fields)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestRemove(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	_, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "u1", game.ID))
	assert.ErrorIs(t, svc.Remove(context.Background(), "u1", game.ID), apperrors.ErrNotFound)
}

func TestListEmbedsGameSummary(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")
	require.NoError(t, db.Model(game).Updates(&catalogmodels.Game{
		Genre:     strPtr("Metroidvania"),
		Developer: strPtr("Team Cherry"),
	}).Error)

	_, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{
		Status: strPtr(models.StatusPlaying),
	})
	require.NoError(t, err)

	// another user's entry must not leak into u1's listing
	_, err = svc.UpsertByGameID(context.Background(), "u2", game.ID, EntryFields{})
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NotNil(t, listed[0].Game)
	assert.Equal(t, "Hollow Knight", listed[0].Game.Title)
	require.NotNil(t, listed[0].Game.Genre)
	assert.Equal(t, "Metroidvania", *listed[0].Game.Genre)
	require.NotNil(t, listed[0].Game.Developer)
	assert.Equal(t, "Team Cherry", *listed[0].Game.Developer)
}

func TestDistinctUsersTrackSameGameIndependently(t *testing.T) {
	svc, db := setup(t, nil)
	game := seedGame(t, db, "Hollow Knight")

	_, err := svc.UpsertByGameID(context.Background(), "u1", game.ID, EntryFields{
		Status: strPtr(models.StatusCompleted),
	})
	require.NoError(t, err)
	_, err = svc.UpsertByGameID(context.Background(), "u2", game.ID, EntryFields{
		Status: strPtr(models.StatusAbandoned),
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.LibraryEntry{}).Count(&count)
	assert.EqualValues(t, 2, count)
}
