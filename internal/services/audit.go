package services

import (
	"context"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

// actionTypes maps event types to the audit action vocabulary the reporting
// layer expects.
var actionTypes = map[EventType]string{
	EventInterviewCreated:   "INTERVIEW_CREATE",
	EventSlotBooked:         "INTERVIEW_SLOT_BOOKED",
	EventInviteSent:         "INTERVIEW_INVITE_SENT",
	EventInterviewCompleted: "INTERVIEW_COMPLETED",
	EventInterviewNoShow:    "INTERVIEW_NO_SHOW",
	EventInterviewCancelled: "INTERVIEW_CANCELLED",
	EventInterviewPassed:    "INTERVIEW_PASSED",
	EventInterviewFailed:    "INTERVIEW_FAILED",
	EventHiringInitiated:    "HIRING_INITIATED",
}

// auditSink appends one audit row per delivered event.
type auditSink struct {
	repo repositories.AuditRepository
}

func NewAuditSink(repo repositories.AuditRepository) Sink {
	return &auditSink{repo: repo}
}

func (s *auditSink) Name() string {
	return "audit"
}

func (s *auditSink) Deliver(_ context.Context, event Event) error {
	actionType, ok := actionTypes[event.Type]
	if !ok {
		actionType = string(event.Type)
	}

	clientID := event.ClientID
	record := &models.AuditEvent{
		ActorID:        event.Actor.UserID,
		ActorEmail:     event.Actor.Email,
		ActorRole:      string(event.Actor.Role),
		ActionType:     actionType,
		EntityType:     event.EntityType,
		EntityID:       event.EntityID,
		ClientID:       &clientID,
		PreviousStatus: string(event.PreviousStatus),
		NewStatus:      string(event.NewStatus),
		Metadata:       event.Metadata,
		CreatedAt:      event.OccurredAt,
	}
	return s.repo.Append(record)
}
