package catalog

import (
	apperrors "gamegestor/core/errors"
	"gamegestor/core/logger"
	"gamegestor/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the game catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/juegos")
	group.Get("/", h.HandleList)
	group.Get("/:titulo", h.HandleGetByTitle)
	group.Post("/", h.HandleCreate)
	group.Put("/:titulo", h.HandleUpdateByTitle)
	group.Delete("/:titulo", h.HandleDeleteByTitle)
}

// HandleList returns every game in the catalog.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	games, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(games)
}

// HandleGetByTitle returns one catalog game.
func (h *Handler) HandleGetByTitle(c *fiber.Ctx) error {
	game, err := h.service.GetByTitle(c.Context(), c.Params("titulo"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(game)
}

// HandleCreate inserts a manually curated game.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	created, err := h.service.Create(c.Context(), &game)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateByTitle applies a partial edit to a catalog game.
func (h *Handler) HandleUpdateByTitle(c *fiber.Ctx) error {
	var patch models.Game
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	updated, err := h.service.UpdateByTitle(c.Context(), c.Params("titulo"), &patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteByTitle removes a game from the catalog.
func (h *Handler) HandleDeleteByTitle(c *fiber.Ctx) error {
	if err := h.service.DeleteByTitle(c.Context(), c.Params("titulo")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "juego eliminado"})
}

// fail maps failure kinds to transport status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	switch {
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "juego no encontrado"})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsDuplicateKey(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("catalog request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
