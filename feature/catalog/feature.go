package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the catalog store, service and handler for the loader.
type Feature struct {
	service *Service
}

// NewFeature assembles the catalog feature. covers may be nil.
func NewFeature(db *gorm.DB, fetcher Fetcher, covers *CoverMirror, logger *zap.Logger) *Feature {
	service := NewService(NewStore(db), fetcher, covers, logger.Named("catalog"))
	return &Feature{service: service}
}

// Service exposes the catalog service to sibling features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.service.logger).RegisterRoutes(app)
	return nil
}
