package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

func seedInterviewStatuses(repo *fakeInterviewRepo, clientID uuid.UUID, statuses ...models.InterviewStatus) {
	for _, status := range statuses {
		iv := &models.Interview{
			ID:              uuid.New(),
			JobID:           uuid.New(),
			CandidateID:     uuid.New(),
			ClientID:        clientID,
			InterviewStatus: status,
		}
		_ = repo.Create(iv)
	}
}

func TestPipelineStats(t *testing.T) {
	repo := newFakeInterviewRepo()
	clientID := uuid.New()
	seedInterviewStatuses(repo, clientID,
		models.StatusAwaitingConfirmation,
		models.StatusAwaitingConfirmation,
		models.StatusConfirmed,
		models.StatusScheduled,
		models.StatusCompleted,
		models.StatusNoShow,
		models.StatusCancelled,
		models.StatusPassed, // outside the dashboard buckets
	)

	authorizer, err := NewAuthorizer("")
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	service := NewPipelineService(repo, authorizer)

	stats, err := service.Stats(recruiterActor(), nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalInterviews != 8 {
		t.Fatalf("total %d, want 8", stats.TotalInterviews)
	}
	if stats.AwaitingConfirmation != 2 {
		t.Fatalf("awaiting %d, want 2", stats.AwaitingConfirmation)
	}
	if stats.Confirmed != 1 || stats.Scheduled != 1 || stats.Completed != 1 {
		t.Fatalf("bucket counts wrong: %+v", stats)
	}
	if stats.NoShows != 1 || stats.Cancelled != 1 {
		t.Fatalf("terminal counts wrong: %+v", stats)
	}
}

func TestPipelineStatsScopesClientUsers(t *testing.T) {
	repo := newFakeInterviewRepo()
	mine := uuid.New()
	theirs := uuid.New()
	seedInterviewStatuses(repo, mine, models.StatusScheduled, models.StatusCompleted)
	seedInterviewStatuses(repo, theirs, models.StatusScheduled)

	authorizer, err := NewAuthorizer("")
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	service := NewPipelineService(repo, authorizer)

	clientUser := models.Actor{
		UserID:   "u-9",
		Email:    "viewer@example.com",
		Role:     models.RoleClientUser,
		ClientID: &mine,
	}

	// Even when the client user asks for another tenant explicitly, the
	// aggregation stays confined to their own.
	stats, err := service.Stats(clientUser, &theirs)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalInterviews != 2 {
		t.Fatalf("total %d, want 2", stats.TotalInterviews)
	}
	if stats.Scheduled != 1 || stats.Completed != 1 {
		t.Fatalf("scoped counts wrong: %+v", stats)
	}
}

func TestPipelineStatsDeniedForCandidates(t *testing.T) {
	repo := newFakeInterviewRepo()
	authorizer, err := NewAuthorizer("")
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	service := NewPipelineService(repo, authorizer)

	candidate := models.Actor{UserID: "u-10", Role: models.RoleCandidate}
	_, err = service.Stats(candidate, nil)
	var denied *models.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}
