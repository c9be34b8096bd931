package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

type EventType string

const (
	EventInterviewCreated   EventType = "interview_created"
	EventSlotBooked         EventType = "slot_booked"
	EventInviteSent         EventType = "invite_sent"
	EventInterviewCompleted EventType = "interview_completed"
	EventInterviewNoShow    EventType = "interview_no_show"
	EventInterviewCancelled EventType = "interview_cancelled"
	EventInterviewPassed    EventType = "interview_passed"
	EventInterviewFailed    EventType = "interview_failed"
	EventHiringInitiated    EventType = "hiring_initiated"
)

// Event is the typed record a state transition emits. Delivery is decoupled
// from the transition itself: the transition is the authoritative fact,
// delivery is advisory.
type Event struct {
	Type           EventType
	Actor          models.Actor
	EntityType     string
	EntityID       string
	InterviewID    uuid.UUID
	CandidateID    uuid.UUID
	ClientID       uuid.UUID
	PreviousStatus models.InterviewStatus
	NewStatus      models.InterviewStatus
	Metadata       models.Metadata
	OccurredAt     time.Time
}

// Sink consumes dispatched events. Implementations must treat delivery as
// best-effort: returning an error only gets logged, never retried into the
// originating command.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}
