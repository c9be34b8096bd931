package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

// actorFromRequest reads the identity resolved by the fronting gateway.
// Authentication itself happens upstream; these headers are trusted input.
func actorFromRequest(c *fiber.Ctx) models.Actor {
	actor := models.Actor{
		UserID: c.Get("X-User-Id"),
		Email:  c.Get("X-User-Email"),
		Role:   models.Role(c.Get("X-User-Role")),
	}
	if raw := c.Get("X-Client-Id"); raw != "" {
		if clientID, err := uuid.Parse(raw); err == nil {
			actor.ClientID = &clientID
		}
	}
	if actor.Role == "" {
		actor.Role = models.RoleRecruiter
	}
	return actor
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	var (
		notFound     *models.NotFoundError
		invalidState *models.InvalidStateTransitionError
		unavailable  *models.SlotUnavailableError
		validation   *models.ValidationError
		conflict     *models.ConflictError
		denied       *models.AccessDeniedError
	)

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &validation), errors.As(err, &invalidState):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &unavailable), errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &denied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, &models.ValidationError{Field: name, Message: "invalid id format"}
	}
	return id, nil
}
