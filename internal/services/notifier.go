package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

// notificationSink stores in-app notification records for the events people
// care about. Paced with a rate limiter so a burst of transitions cannot
// flood the notification store.
type notificationSink struct {
	repo    repositories.NotificationRepository
	limiter *rate.Limiter
}

func NewNotificationSink(repo repositories.NotificationRepository, perSecond float64, burst int) Sink {
	if perSecond <= 0 {
		perSecond = 20
	}
	if burst <= 0 {
		burst = 50
	}
	return &notificationSink{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (s *notificationSink) Name() string {
	return "notifications"
}

func (s *notificationSink) Deliver(ctx context.Context, event Event) error {
	title, message, recipients, notify := renderNotification(event)
	if !notify {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notification rate limiter: %w", err)
	}

	clientID := event.ClientID
	n := &models.Notification{
		Type:       string(event.Type),
		Title:      title,
		Message:    message,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		ClientID:   &clientID,
		Recipients: recipients,
		CreatedBy:  event.Actor.Email,
	}
	return s.repo.Create(n)
}

func renderNotification(event Event) (title, message string, recipients models.StringList, notify bool) {
	meta := event.Metadata
	str := func(key string) string {
		if meta == nil {
			return ""
		}
		if v, ok := meta[key].(string); ok {
			return v
		}
		return ""
	}
	num := func(key string) int {
		if meta == nil {
			return 0
		}
		switch v := meta[key].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
		return 0
	}

	switch event.Type {
	case EventInterviewCreated:
		return "Interview Scheduled",
			fmt.Sprintf("New interview created for round %d", num("round")),
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter), event.ClientID.String()},
			true
	case EventSlotBooked:
		return "Interview Slot Booked",
			fmt.Sprintf("Candidate booked slot %s", str("slot_id")),
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter), event.ClientID.String()},
			true
	case EventInviteSent:
		return "Interview Invite Sent",
			"Interview invitation was sent to the candidate",
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter)},
			true
	case EventInterviewPassed:
		round := num("round")
		return fmt.Sprintf("Interview Passed: Round %d", round),
			fmt.Sprintf("Ready for Round %d. %s", round+1, str("next_round_name")),
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter), event.ClientID.String()},
			true
	case EventHiringInitiated:
		return "Hiring Initiated",
			fmt.Sprintf("Candidate selected after %d round(s)", num("rounds_cleared")),
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter)},
			true
	case EventInterviewNoShow:
		return "Interview No-Show",
			fmt.Sprintf("Candidate did not attend; total no-shows: %d", num("no_show_count")),
			models.StringList{string(models.RoleAdmin), string(models.RoleRecruiter), event.ClientID.String()},
			true
	}
	return "", "", nil, false
}
