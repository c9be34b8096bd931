package models

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidateStatusNew        CandidateStatus = "NEW"
	CandidateStatusPipeline   CandidateStatus = "PIPELINE"
	CandidateStatusInProgress CandidateStatus = "IN_PROGRESS"
	CandidateStatusSelected   CandidateStatus = "SELECTED"
	CandidateStatusRejected   CandidateStatus = "REJECTED"
)

// Candidate is the projection of the candidate record this core is allowed to
// mutate. The full candidate entity (CV, parsed profile, contact data) is owned
// by the CRUD layer.
type Candidate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"candidate_id"`
	JobID    uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	Name  string `gorm:"type:text" json:"name"`
	Email string `gorm:"type:text" json:"email"`

	Status       CandidateStatus `gorm:"type:text;not null;default:'NEW'" json:"status"`
	CurrentRound int             `gorm:"not null;default:1" json:"current_round"`
	NoShowCount  int             `gorm:"not null;default:0" json:"no_show_count"`

	LastInterviewPassed *uuid.UUID `gorm:"type:uuid" json:"last_interview_passed,omitempty"`
	RejectedAtRound     *int       `json:"rejected_at_round,omitempty"`
	RejectionReason     *string    `gorm:"type:text" json:"rejection_reason,omitempty"`

	TotalRoundsCleared  int        `gorm:"not null;default:0" json:"total_rounds_cleared"`
	SelectedAt          *time.Time `gorm:"type:timestamptz" json:"selected_at,omitempty"`
	SelectedBy          *string    `gorm:"type:text" json:"selected_by,omitempty"`
	SalaryOffered       *string    `gorm:"type:text" json:"salary_offered,omitempty"`
	ProposedJoiningDate *string    `gorm:"type:text" json:"proposed_joining_date,omitempty"`
	OfferNotes          *string    `gorm:"type:text" json:"offer_notes,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
