package services

import (
	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

// PipelineService computes read-only dashboard counts. It never mutates
// interview state.
type PipelineService interface {
	Stats(actor models.Actor, clientID *uuid.UUID) (*models.PipelineStats, error)
}

type pipelineService struct {
	interviews repositories.InterviewRepository
	authorizer Authorizer
}

func NewPipelineService(interviews repositories.InterviewRepository, authorizer Authorizer) PipelineService {
	return &pipelineService{interviews: interviews, authorizer: authorizer}
}

func (s *pipelineService) Stats(actor models.Actor, clientID *uuid.UUID) (*models.PipelineStats, error) {
	decision := s.authorizer.Authorize(actor, PermPipelineRead)
	if !decision.Allowed {
		return nil, &models.AccessDeniedError{Reason: decision.Reason}
	}

	// Client users only ever see their own tenant.
	if actor.Role == models.RoleClientUser {
		clientID = actor.ClientID
	}

	counts, err := s.interviews.CountByStatus(clientID)
	if err != nil {
		return nil, err
	}

	stats := &models.PipelineStats{}
	for _, row := range counts {
		// Statuses outside the dashboard buckets (Draft, Passed, Failed)
		// still count into the total.
		stats.TotalInterviews += row.Count

		switch row.Status {
		case models.StatusAwaitingConfirmation:
			stats.AwaitingConfirmation = row.Count
		case models.StatusConfirmed:
			stats.Confirmed = row.Count
		case models.StatusScheduled:
			stats.Scheduled = row.Count
		case models.StatusCompleted:
			stats.Completed = row.Count
		case models.StatusNoShow:
			stats.NoShows = row.Count
		case models.StatusCancelled:
			stats.Cancelled = row.Count
		}
	}

	return stats, nil
}
