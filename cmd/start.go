package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gamegestor/core/config"
	"gamegestor/core/database"
	"gamegestor/core/loader"
	"gamegestor/core/logger"
	"gamegestor/core/middleware/auth"
	"gamegestor/core/middleware/rayid"
	"gamegestor/core/storage"

	"gamegestor/feature/catalog"
	catalogmodels "gamegestor/feature/catalog/models"
	"gamegestor/feature/catalog/rawg"
	"gamegestor/feature/library"
	librarymodels "gamegestor/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the GameGestor server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&catalogmodels.Game{}, &librarymodels.LibraryEntry{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Storage (Optional)
		// Cover mirroring degrades to remote URLs when storage is off.
		var covers *catalog.CoverMirror
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			covers = catalog.NewCoverMirror(store, cfg.Storage.Bucket)
			if err := covers.EnsureBucket(cmd.Context()); err != nil {
				logg.Fatal("Failed to prepare cover bucket", zap.Error(err))
			}
			logg.Info("Cover mirroring enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first so everything downstream is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Health probe stays public.
		app.Get("/health", func(c *fiber.Ctx) error {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Context())
			}
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
			}
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Auth (Protect API)
		app.Use(auth.New(cfg.Auth))

		// 6. Register Features
		mgr := loader.NewManager()

		catalogFeature := catalog.NewFeature(db, rawg.NewClient(cfg.Rawg), covers, logg)
		mgr.Register(catalogFeature)
		mgr.Register(library.NewFeature(db, catalogFeature.Service(), logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
