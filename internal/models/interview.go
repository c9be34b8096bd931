package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusDraft                InterviewStatus = "Draft"
	StatusAwaitingConfirmation InterviewStatus = "Awaiting Candidate Confirmation"
	StatusConfirmed            InterviewStatus = "Confirmed"
	StatusScheduled            InterviewStatus = "Scheduled"
	StatusCompleted            InterviewStatus = "Completed"
	StatusNoShow               InterviewStatus = "No Show"
	StatusCancelled            InterviewStatus = "Cancelled"
	StatusPassed               InterviewStatus = "Passed"
	StatusFailed               InterviewStatus = "Failed"
)

// NonTerminalStatuses are the states mark-no-show and cancel may leave from.
// Completed is non-terminal: it still feeds Passed/Failed.
var NonTerminalStatuses = []InterviewStatus{
	StatusDraft,
	StatusAwaitingConfirmation,
	StatusConfirmed,
	StatusScheduled,
	StatusCompleted,
}

func (s InterviewStatus) IsTerminal() bool {
	switch s {
	case StatusNoShow, StatusCancelled, StatusPassed, StatusFailed:
		return true
	}
	return false
}

type InterviewMode string

const (
	ModeVideo  InterviewMode = "Video"
	ModePhone  InterviewMode = "Phone"
	ModeOnsite InterviewMode = "Onsite"
)

func (m InterviewMode) Valid() bool {
	return m == ModeVideo || m == ModePhone || m == ModeOnsite
}

const (
	MinInterviewDuration = 15
	MaxInterviewDuration = 240
	MinProposedSlots     = 1
	MaxProposedSlots     = 5
)

// Slot is one proposed time window. Slots are generated with the interview and
// live inside its row; at most one per interview ever flips to unavailable.
type Slot struct {
	SlotID          string    `json:"slot_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsAvailable     bool      `json:"is_available"`
}

// SlotList is stored as a jsonb column on the interviews table.
type SlotList []Slot

func (s SlotList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported slot list type %T", value)
	}
	return json.Unmarshal(raw, s)
}

func (SlotList) GormDataType() string {
	return "jsonb"
}

// Find returns the slot with the given id, or nil.
func (s SlotList) Find(slotID string) *Slot {
	for i := range s {
		if s[i].SlotID == slotID {
			return &s[i]
		}
	}
	return nil
}

// WithClaimed returns a copy of the list with the given slot marked unavailable.
func (s SlotList) WithClaimed(slotID string) SlotList {
	out := make(SlotList, len(s))
	copy(out, s)
	for i := range out {
		if out[i].SlotID == slotID {
			out[i].IsAvailable = false
		}
	}
	return out
}

// ClaimedCount returns how many slots are no longer available.
func (s SlotList) ClaimedCount() int {
	n := 0
	for i := range s {
		if !s[i].IsAvailable {
			n++
		}
	}
	return n
}

type Interview struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"interview_id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index" json:"candidate_id"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	InterviewMode     InterviewMode `gorm:"type:text;not null" json:"interview_mode"`
	InterviewDuration int           `gorm:"not null" json:"interview_duration"`
	TimeZone          string        `gorm:"type:text" json:"time_zone"`

	ProposedSlots      SlotList   `gorm:"type:jsonb;not null" json:"proposed_slots"`
	SelectedSlotID     *string    `gorm:"type:text" json:"selected_slot_id,omitempty"`
	ScheduledStartTime *time.Time `gorm:"type:timestamptz" json:"scheduled_start_time,omitempty"`
	ScheduledEndTime   *time.Time `gorm:"type:timestamptz" json:"scheduled_end_time,omitempty"`

	InterviewStatus InterviewStatus `gorm:"type:text;not null;index" json:"interview_status"`

	MeetingLink            string `gorm:"type:text" json:"meeting_link,omitempty"`
	AdditionalInstructions string `gorm:"type:text" json:"additional_instructions,omitempty"`

	InviteSent   bool       `gorm:"not null;default:false" json:"invite_sent"`
	InviteSentBy *string    `gorm:"type:text" json:"invite_sent_by,omitempty"`
	InviteSentAt *time.Time `gorm:"type:timestamptz" json:"invite_sent_at,omitempty"`

	CandidateConfirmationTimestamp *time.Time `gorm:"type:timestamptz" json:"candidate_confirmation_timestamp,omitempty"`

	NoShowFlag  bool `gorm:"not null;default:false" json:"no_show_flag"`
	NoShowCount int  `gorm:"not null;default:0" json:"no_show_count"`

	InterviewRound int    `gorm:"not null;default:1" json:"interview_round"`
	RoundName      string `gorm:"type:text" json:"round_name"`

	Feedback *string `gorm:"type:text" json:"feedback,omitempty"`
	Rating   *int    `json:"rating,omitempty"`

	PassedAt   *time.Time `gorm:"type:timestamptz" json:"passed_at,omitempty"`
	PassedBy   *string    `gorm:"type:text" json:"passed_by,omitempty"`
	RejectedAt *time.Time `gorm:"type:timestamptz" json:"rejected_at,omitempty"`
	RejectedBy *string    `gorm:"type:text" json:"rejected_by,omitempty"`

	HiringInitiated   bool       `gorm:"not null;default:false" json:"hiring_initiated"`
	HiringInitiatedAt *time.Time `gorm:"type:timestamptz" json:"hiring_initiated_at,omitempty"`
	HiringInitiatedBy *string    `gorm:"type:text" json:"hiring_initiated_by,omitempty"`

	// Bumped by every conditional update; stale writers lose.
	LockVersion int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"updated_at"`
	CreatedBy string    `gorm:"type:text" json:"created_by"`
}

func (Interview) TableName() string {
	return "interviews"
}
