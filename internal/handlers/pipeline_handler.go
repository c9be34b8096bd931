package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/services"
)

type PipelineHandler struct {
	pipeline services.PipelineService
}

func NewPipelineHandler(pipeline services.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipeline: pipeline}
}

// HandleStats handles GET /interviews/stats/pipeline
func (h *PipelineHandler) HandleStats(c *fiber.Ctx) error {
	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid client_id format",
			})
		}
		clientID = &id
	}

	stats, err := h.pipeline.Stats(actorFromRequest(c), clientID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}
