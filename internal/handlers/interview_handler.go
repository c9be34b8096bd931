package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
	"github.com/Sammy-0y/arbeit-project/internal/services"
)

type InterviewHandler struct {
	scheduler services.SchedulerService
}

func NewInterviewHandler(scheduler services.SchedulerService) *InterviewHandler {
	return &InterviewHandler{scheduler: scheduler}
}

// HandleCreate handles POST /interviews
func (h *InterviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	interview, err := h.scheduler.Create(actorFromRequest(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(interview)
}

// HandleList handles GET /interviews with optional job/candidate/status filters
func (h *InterviewHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.InterviewFilter{
		Status: models.InterviewStatus(c.Query("status")),
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("skip", 0),
	}
	if raw := c.Query("job_id"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job_id format"})
		}
		filter.JobID = &jobID
	}
	if raw := c.Query("candidate_id"); raw != "" {
		candidateID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid candidate_id format"})
		}
		filter.CandidateID = &candidateID
	}

	items, err := h.scheduler.List(actorFromRequest(c), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(items)
}

// HandleGet handles GET /interviews/:id
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	interview, err := h.scheduler.Get(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interview)
}

// HandleBookSlot handles POST /interviews/:id/book-slot
func (h *InterviewHandler) HandleBookSlot(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.BookSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if req.SlotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slot_id is required",
		})
	}

	interview, err := h.scheduler.BookSlot(actorFromRequest(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interview)
}

// HandleSendInvite handles POST /interviews/:id/send-invite
func (h *InterviewHandler) HandleSendInvite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.SendInviteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	interview, err := h.scheduler.SendInvite(actorFromRequest(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Interview invitation sent successfully",
		"interview_id": interview.ID.String(),
		"meeting_link": interview.MeetingLink,
		"interview":    interview,
	})
}

// HandleMarkCompleted handles POST /interviews/:id/mark-completed
func (h *InterviewHandler) HandleMarkCompleted(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	interview, err := h.scheduler.MarkCompleted(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Interview marked as completed",
		"interview_id": interview.ID.String(),
		"interview":    interview,
	})
}

// HandleMarkNoShow handles POST /interviews/:id/mark-no-show
func (h *InterviewHandler) HandleMarkNoShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	interview, err := h.scheduler.MarkNoShow(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":       "Interview marked as no-show",
		"interview_id":  interview.ID.String(),
		"no_show_count": interview.NoShowCount,
		"interview":     interview,
	})
}

// HandleCancel handles POST /interviews/:id/cancel
func (h *InterviewHandler) HandleCancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	interview, err := h.scheduler.Cancel(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Interview cancelled",
		"interview_id": interview.ID.String(),
		"interview":    interview,
	})
}

// HandleMoveToNextRound handles POST /interviews/:id/move-to-next-round
func (h *InterviewHandler) HandleMoveToNextRound(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.MoveToNextRoundRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	result, err := h.scheduler.MoveToNextRound(actorFromRequest(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleReject handles POST /interviews/:id/reject
func (h *InterviewHandler) HandleReject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.MoveToNextRoundRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	interview, err := h.scheduler.Reject(actorFromRequest(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Candidate rejected",
		"interview_id": interview.ID.String(),
		"candidate_id": interview.CandidateID.String(),
		"status":       interview.InterviewStatus,
	})
}

// HandleInitiateHiring handles POST /interviews/:id/initiate-hiring
func (h *InterviewHandler) HandleInitiateHiring(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.InitiateHiringRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	result, err := h.scheduler.InitiateHiring(actorFromRequest(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleBookingLink handles GET /interviews/:id/booking-link
func (h *InterviewHandler) HandleBookingLink(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	link, err := h.scheduler.BookingLink(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(link)
}

// HandleCandidateInterviews handles GET /candidates/:id/interviews
func (h *InterviewHandler) HandleCandidateInterviews(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.scheduler.ListForCandidate(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(items)
}

// HandleCandidateHistory handles GET /candidates/:id/interview-history
func (h *InterviewHandler) HandleCandidateHistory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	history, err := h.scheduler.History(actorFromRequest(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(history)
}
