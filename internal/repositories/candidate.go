package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

// OfferDetails captures the terms stored when hiring is initiated.
type OfferDetails struct {
	SalaryOffered *string
	JoiningDate   *string
	OfferNotes    *string
	SelectedBy    string
}

type CandidateRepository interface {
	FindByID(id uuid.UUID) (*models.Candidate, error)

	// MarkProgressed records a passed round. current_round only moves forward;
	// GREATEST keeps it monotonic when rounds are passed out of order.
	MarkProgressed(id uuid.UUID, nextRound int, passedInterview uuid.UUID) error

	MarkRejected(id uuid.UUID, round int, reason *string) error

	MarkSelected(id uuid.UUID, roundsCleared int, offer OfferDetails) error

	// IncrementNoShows bumps the aggregate no-show counter with a SQL
	// expression so concurrent marks on different interviews never lose
	// updates.
	IncrementNoShows(id uuid.UUID) error

	// SetNoShowCount writes the derived no-show count. Used to repair the
	// aggregate when an increment was lost after a successful transition.
	SetNoShowCount(id uuid.UUID, count int) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var c models.Candidate
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "Candidate", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &c, nil
}

func (r *candidateRepository) MarkProgressed(id uuid.UUID, nextRound int, passedInterview uuid.UUID) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                models.CandidateStatusInProgress,
			"current_round":         gorm.Expr("GREATEST(current_round, ?)", nextRound),
			"last_interview_passed": passedInterview,
			"updated_at":            time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark candidate progressed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Candidate", ID: id.String()}
	}
	return nil
}

func (r *candidateRepository) MarkRejected(id uuid.UUID, round int, reason *string) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            models.CandidateStatusRejected,
			"rejected_at_round": round,
			"rejection_reason":  reason,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark candidate rejected: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Candidate", ID: id.String()}
	}
	return nil
}

func (r *candidateRepository) MarkSelected(id uuid.UUID, roundsCleared int, offer OfferDetails) error {
	now := time.Now()
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                models.CandidateStatusSelected,
			"total_rounds_cleared":  roundsCleared,
			"selected_at":           now,
			"selected_by":           offer.SelectedBy,
			"salary_offered":        offer.SalaryOffered,
			"proposed_joining_date": offer.JoiningDate,
			"offer_notes":           offer.OfferNotes,
			"updated_at":            now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark candidate selected: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Candidate", ID: id.String()}
	}
	return nil
}

func (r *candidateRepository) IncrementNoShows(id uuid.UUID) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"no_show_count": gorm.Expr("no_show_count + ?", 1),
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment no-show count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "Candidate", ID: id.String()}
	}
	return nil
}

func (r *candidateRepository) SetNoShowCount(id uuid.UUID, count int) error {
	// Guarded so an already-consistent aggregate is left untouched.
	result := r.db.Model(&models.Candidate{}).
		Where("id = ? AND no_show_count <> ?", id, count).
		Updates(map[string]interface{}{
			"no_show_count": count,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set no-show count: %w", result.Error)
	}
	return nil
}
