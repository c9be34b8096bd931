package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sammy-0y/arbeit-project/internal/services"
)

// PublicHandler serves the unauthenticated candidate booking flow. Access is
// gated by the signed booking token instead of a session.
type PublicHandler struct {
	scheduler services.SchedulerService
}

func NewPublicHandler(scheduler services.SchedulerService) *PublicHandler {
	return &PublicHandler{scheduler: scheduler}
}

// HandleGet handles GET /public/interviews/:id?token=
func (h *PublicHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	interview, err := h.scheduler.PublicGet(id, c.Query("token"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interview)
}

// HandleBook handles POST /public/interviews/:id/book?slot_id=&token=
func (h *PublicHandler) HandleBook(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	slotID := c.Query("slot_id")
	if slotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slot_id is required",
		})
	}

	interview, err := h.scheduler.PublicBook(id, slotID, c.Query("token"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Interview slot confirmed",
		"interview_id": interview.ID.String(),
	})
}
