package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

// InterviewFilter narrows List queries. Zero values mean "no filter".
type InterviewFilter struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	ClientID    *uuid.UUID
	Status      models.InterviewStatus
	Limit       int
	Offset      int
}

// StatusCount is one row of the pipeline aggregation.
type StatusCount struct {
	Status models.InterviewStatus
	Count  int64
}

// SlotClaim carries everything the booking engine writes in one conditional
// update.
type SlotClaim struct {
	Slots       models.SlotList
	SlotID      string
	StartTime   time.Time
	EndTime     time.Time
	Confirmed   bool
	ConfirmedAt *time.Time
}

// ErrStaleInterview is returned when a conditional update matched no rows. The
// caller re-reads the interview to classify the failure.
var ErrStaleInterview = fmt.Errorf("interview update matched no rows")

type InterviewRepository interface {
	Create(iv *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	List(filter InterviewFilter) ([]models.Interview, error)
	ListByCandidate(candidateID uuid.UUID) ([]models.Interview, error)

	// HasActiveRound reports whether a non-cancelled interview already exists
	// for the candidate at the given round of the job.
	HasActiveRound(jobID, candidateID uuid.UUID, round int) (bool, error)

	// ClaimSlot books one slot atomically. The update only applies while the
	// interview is awaiting confirmation and no slot has been selected yet;
	// a concurrent claim makes this return ErrStaleInterview.
	ClaimSlot(id uuid.UUID, claim SlotClaim) error

	// Transition moves the interview to a new status, conditional on the
	// current status being one of from. Extra carries additional columns
	// written with the same update. Returns ErrStaleInterview when the guard
	// does not hold.
	Transition(id uuid.UUID, from []models.InterviewStatus, to models.InterviewStatus, extra map[string]interface{}) error

	CountByStatus(clientID *uuid.UUID) ([]StatusCount, error)

	// CountNoShows returns how many of the candidate's interviews sit in the
	// No Show status. The candidate aggregate must always equal this.
	CountNoShows(candidateID uuid.UUID) (int64, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(iv *models.Interview) error {
	if err := r.db.Create(iv).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var iv models.Interview
	if err := r.db.Where("id = ?", id).First(&iv).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "Interview", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &iv, nil
}

func (r *interviewRepository) List(filter InterviewFilter) ([]models.Interview, error) {
	q := r.db.Model(&models.Interview{})

	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.JobID != nil {
		q = q.Where("job_id = ?", *filter.JobID)
	}
	if filter.CandidateID != nil {
		q = q.Where("candidate_id = ?", *filter.CandidateID)
	}
	if filter.Status != "" {
		q = q.Where("interview_status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var interviews []models.Interview
	err := q.Order("created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) ListByCandidate(candidateID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("interview_round ASC, created_at ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate interviews: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) HasActiveRound(jobID, candidateID uuid.UUID, round int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).
		Where("job_id = ? AND candidate_id = ? AND interview_round = ? AND interview_status <> ?",
			jobID, candidateID, round, models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active round: %w", err)
	}
	return count > 0, nil
}

func (r *interviewRepository) ClaimSlot(id uuid.UUID, claim SlotClaim) error {
	status := models.StatusAwaitingConfirmation
	if claim.Confirmed {
		status = models.StatusConfirmed
	}

	updates := map[string]interface{}{
		"proposed_slots":                   claim.Slots,
		"selected_slot_id":                 claim.SlotID,
		"scheduled_start_time":             claim.StartTime,
		"scheduled_end_time":               claim.EndTime,
		"interview_status":                 status,
		"candidate_confirmation_timestamp": claim.ConfirmedAt,
		"lock_version":                     gorm.Expr("lock_version + 1"),
		"updated_at":                       time.Now(),
	}

	// The WHERE clause is the booking guard: once a slot is selected (or the
	// interview left AwaitingConfirmation) no further claim can match.
	result := r.db.Model(&models.Interview{}).
		Where("id = ? AND interview_status = ? AND selected_slot_id IS NULL",
			id, models.StatusAwaitingConfirmation).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to claim slot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaleInterview
	}
	return nil
}

func (r *interviewRepository) Transition(id uuid.UUID, from []models.InterviewStatus, to models.InterviewStatus, extra map[string]interface{}) error {
	updates := map[string]interface{}{
		"interview_status": to,
		"lock_version":     gorm.Expr("lock_version + 1"),
		"updated_at":       time.Now(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	result := r.db.Model(&models.Interview{}).
		Where("id = ? AND interview_status IN ?", id, from).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to transition interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaleInterview
	}
	return nil
}

func (r *interviewRepository) CountNoShows(candidateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).
		Where("candidate_id = ? AND interview_status = ?", candidateID, models.StatusNoShow).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count no-shows: %w", err)
	}
	return count, nil
}

func (r *interviewRepository) CountByStatus(clientID *uuid.UUID) ([]StatusCount, error) {
	q := r.db.Model(&models.Interview{}).
		Select("interview_status AS status, COUNT(*) AS count").
		Group("interview_status")

	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	var counts []StatusCount
	if err := q.Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count interviews by status: %w", err)
	}
	return counts, nil
}
