package library

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the library store, service and handler for the loader.
type Feature struct {
	service *Service
	logger  *zap.Logger
}

// NewFeature assembles the library feature on top of the catalog.
func NewFeature(db *gorm.DB, catalog Catalog, logger *zap.Logger) *Feature {
	l := logger.Named("library")
	return &Feature{
		service: NewService(NewStore(db), catalog, l),
		logger:  l,
	}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "library"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
