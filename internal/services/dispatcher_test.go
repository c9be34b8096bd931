package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

type captureSink struct {
	mu     sync.Mutex
	name   string
	events []Event
}

func (s *captureSink) Name() string { return s.name }

func (s *captureSink) Deliver(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcherDeliversToAllSinks(t *testing.T) {
	first := &captureSink{name: "first"}
	second := &captureSink{name: "second"}
	d := NewDispatcher(2, 16, first, second)
	d.Start(context.Background())

	for i := 0; i < 5; i++ {
		d.Publish(Event{
			Type:        EventInterviewCreated,
			EntityType:  "interview",
			EntityID:    uuid.NewString(),
			InterviewID: uuid.New(),
		})
	}
	d.Stop()

	if first.count() != 5 || second.count() != 5 {
		t.Fatalf("delivery counts: first=%d second=%d, want 5/5", first.count(), second.count())
	}
}

func TestDispatcherStopDrainsQueue(t *testing.T) {
	sink := &captureSink{name: "drain"}
	d := NewDispatcher(1, 64, sink)
	d.Start(context.Background())

	for i := 0; i < 50; i++ {
		d.Publish(Event{Type: EventSlotBooked, EntityID: uuid.NewString()})
	}
	d.Stop()

	if sink.count() != 50 {
		t.Fatalf("delivered %d events, want 50", sink.count())
	}
}

func TestDispatcherPublishAfterStop(t *testing.T) {
	sink := &captureSink{name: "late"}
	d := NewDispatcher(1, 4, sink)
	d.Start(context.Background())
	d.Stop()

	// Must neither panic nor block.
	done := make(chan struct{})
	go func() {
		d.Publish(Event{Type: EventInterviewCancelled, EntityID: uuid.NewString()})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked after Stop")
	}
}

func TestDispatcherStampsOccurredAt(t *testing.T) {
	sink := &captureSink{name: "stamp"}
	d := NewDispatcher(1, 4, sink)
	d.Start(context.Background())
	d.Publish(Event{Type: EventInviteSent, EntityID: uuid.NewString()})
	d.Stop()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) != 1 {
		t.Fatalf("delivered %d events, want 1", len(sink.events))
	}
	if sink.events[0].OccurredAt.IsZero() {
		t.Fatalf("occurred_at not stamped")
	}
}

// ---- sinks ----

type fakeAuditRepo struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (r *fakeAuditRepo) Append(event *models.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAuditRepo) ListByEntity(entityID string, _ int) ([]models.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AuditEvent
	for _, e := range r.events {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestAuditSinkTranslatesEvents(t *testing.T) {
	repo := &fakeAuditRepo{}
	sink := NewAuditSink(repo)

	actor := recruiterActor()
	err := sink.Deliver(context.Background(), Event{
		Type:           EventSlotBooked,
		Actor:          actor,
		EntityType:     "interview",
		EntityID:       "iv-1",
		ClientID:       uuid.New(),
		PreviousStatus: models.StatusAwaitingConfirmation,
		NewStatus:      models.StatusConfirmed,
		Metadata:       models.Metadata{"slot_id": "s-1"},
		OccurredAt:     time.Now(),
	})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	entries, _ := repo.ListByEntity("iv-1", 10)
	if len(entries) != 1 {
		t.Fatalf("appended %d rows, want 1", len(entries))
	}
	row := entries[0]
	if row.ActionType != "INTERVIEW_SLOT_BOOKED" {
		t.Fatalf("action type %q", row.ActionType)
	}
	if row.PreviousStatus != string(models.StatusAwaitingConfirmation) || row.NewStatus != string(models.StatusConfirmed) {
		t.Fatalf("status pair not recorded: %+v", row)
	}
	if row.ActorEmail != actor.Email {
		t.Fatalf("actor not recorded: %+v", row)
	}
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) ListForActor(_ repositories.NotificationFilter) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ uuid.UUID, _ string) error { return nil }

func (r *fakeNotificationRepo) MarkAllRead(_ repositories.NotificationFilter) (int64, error) {
	return 0, nil
}

func TestNotificationSinkStoresRenderedEvents(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sink := NewNotificationSink(repo, 100, 100)

	clientID := uuid.New()
	err := sink.Deliver(context.Background(), Event{
		Type:       EventInterviewNoShow,
		Actor:      recruiterActor(),
		EntityType: "interview",
		EntityID:   "iv-2",
		ClientID:   clientID,
		Metadata:   models.Metadata{"no_show_count": 3},
	})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	stored, _ := repo.ListForActor(repositories.NotificationFilter{})
	if len(stored) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(stored))
	}
	n := stored[0]
	if n.Title != "Interview No-Show" {
		t.Fatalf("title %q", n.Title)
	}
	if n.Message != "Candidate did not attend; total no-shows: 3" {
		t.Fatalf("message %q", n.Message)
	}
	if !n.Recipients.Contains(string(models.RoleAdmin)) || !n.Recipients.Contains(clientID.String()) {
		t.Fatalf("recipients wrong: %v", n.Recipients)
	}
}

func TestNotificationSinkSkipsAuditOnlyEvents(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sink := NewNotificationSink(repo, 100, 100)

	err := sink.Deliver(context.Background(), Event{
		Type:     EventInterviewCompleted,
		EntityID: "iv-3",
	})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if stored, _ := repo.ListForActor(repositories.NotificationFilter{}); len(stored) != 0 {
		t.Fatalf("completed events must not produce notifications")
	}
}
