package cmd

import (
	"log"

	"gamegestor/core/config"
	"gamegestor/core/database"
	"gamegestor/core/logger"
	"gamegestor/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func strRef(s string) *string   { return &s }
func numRef(f float64) *float64 { return &f }

// seedCmd populates the catalog with a few curated games so a fresh
// install has something to browse before any provider lookup runs.
// Seeding is idempotent; rows are matched by title.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with curated games",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Game{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		seeds := []models.Game{
			{
				Title:     "The Witcher 3: Wild Hunt",
				Genre:     strRef("RPG"),
				Platforms: datatypes.JSONSlice[string]{"PC", "PlayStation 4", "Xbox One"},
				Developer: strRef("CD Projekt Red"),
				Release:   strRef("2015-05-18"),
				Modes:     datatypes.JSONSlice[string]{"Un jugador"},
				Score:     numRef(92),
			},
			{
				Title:     "Hollow Knight",
				Genre:     strRef("Metroidvania"),
				Platforms: datatypes.JSONSlice[string]{"PC", "Nintendo Switch"},
				Developer: strRef("Team Cherry"),
				Release:   strRef("2017-02-24"),
				Modes:     datatypes.JSONSlice[string]{"Un jugador"},
			},
			{
				Title:     "Stardew Valley",
				Genre:     strRef("Simulation"),
				Platforms: datatypes.JSONSlice[string]{"PC", "Nintendo Switch", "PlayStation 4"},
				Developer: strRef("ConcernedApe"),
				Release:   strRef("2016-02-26"),
				Modes:     datatypes.JSONSlice[string]{"Un jugador", "Multijugador"},
			},
		}

		created := 0
		for i := range seeds {
			seed := seeds[i]
			result := db.Where(&models.Game{Title: seed.Title}).FirstOrCreate(&seed)
			if result.Error != nil {
				logg.Fatal("Failed to seed game", zap.String("titulo", seed.Title), zap.Error(result.Error))
			}
			if result.RowsAffected > 0 {
				created++
				logg.Info("Seeded game", zap.String("titulo", seed.Title))
			}
		}
		logg.Info("Seeding complete", zap.Int("created", created), zap.Int("total", len(seeds)))
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
