package library

import (
	"strconv"

	apperrors "gamegestor/core/errors"
	"gamegestor/core/logger"
	"gamegestor/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the user's library.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the library routes. All of them operate on the
// authenticated user's own library.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/usuarios/me/biblioteca")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleUpsert)
	group.Put("/:gameId", h.HandleUpdate)
	group.Delete("/:gameId", h.HandleRemove)
}

// upsertRequest is the create/update payload. Exactly one of GameID and
// ExternalID selects the resolution path.
type upsertRequest struct {
	GameID     *uint   `json:"gameId"`
	ExternalID *string `json:"externalId"`
	EntryFields
}

// HandleList returns the authenticated user's library with game summaries.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context(), auth.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entries)
}

// HandleUpsert creates or updates a library entry, resolving the game either
// by internal id or by external provider id.
func (h *Handler) HandleUpsert(c *fiber.Ctx) error {
	var req upsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if (req.GameID == nil) == (req.ExternalID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "exactly one of gameId or externalId is required",
		})
	}

	userID := auth.UserID(c)
	var entry any
	var err error
	if req.GameID != nil {
		entry, err = h.service.UpsertByGameID(c.Context(), userID, *req.GameID, req.EntryFields)
	} else {
		entry, err = h.service.UpsertByExternalID(c.Context(), userID, *req.ExternalID, req.EntryFields)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleUpdate mutates the supplied fields of an existing entry.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
	}

	var fields EntryFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	entry, err := h.service.Update(c.Context(), auth.UserID(c), gameID, fields)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entry)
}

// HandleRemove deletes an entry from the user's library.
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
	}

	if err := h.service.Remove(c.Context(), auth.UserID(c), gameID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "juego eliminado de tu biblioteca"})
}

func parseGameID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("gameId"), 10, 32)
	return uint(id), err
}

// fail maps the failure taxonomy onto transport status codes. Retryable
// kinds (duplicate race, upstream, timeout) keep their distinct codes so
// clients can back off and retry.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	switch {
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "juego no encontrado en tu biblioteca"})
	case apperrors.IsDuplicateKey(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		l.Error("provider misconfigured", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "metadata provider is not configured"})
	case apperrors.IsTimeout(err):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "metadata provider timed out"})
	case apperrors.IsUpstream(err), apperrors.IsParse(err):
		l.Warn("metadata provider failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "metadata provider failed"})
	default:
		l.Error("library request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
