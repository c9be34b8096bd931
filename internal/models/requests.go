package models

import "time"

type ProposedSlotInput struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type CreateInterviewRequest struct {
	JobID                  string              `json:"job_id"`
	CandidateID            string              `json:"candidate_id"`
	InterviewMode          InterviewMode       `json:"interview_mode"`
	InterviewDuration      int                 `json:"interview_duration"`
	TimeZone               string              `json:"time_zone"`
	ProposedSlots          []ProposedSlotInput `json:"proposed_slots"`
	InterviewRound         int                 `json:"interview_round"`
	RoundName              string              `json:"round_name"`
	MeetingLink            string              `json:"meeting_link"`
	AdditionalInstructions string              `json:"additional_instructions"`
}

type BookSlotRequest struct {
	SlotID    string `json:"slot_id"`
	Confirmed *bool  `json:"confirmed"`
}

type SendInviteRequest struct {
	MeetingLink   string        `json:"meeting_link"`
	InterviewMode InterviewMode `json:"interview_mode"`
	Duration      int           `json:"duration_minutes"`
	TimeZone      string        `json:"time_zone"`
}

type MoveToNextRoundRequest struct {
	Feedback      *string `json:"feedback"`
	Rating        *int    `json:"rating"`
	NextRoundName *string `json:"next_round_name"`
}

type InitiateHiringRequest struct {
	Feedback      *string `json:"feedback"`
	Rating        *int    `json:"rating"`
	SalaryOffered *string `json:"salary_offered"`
	JoiningDate   *string `json:"joining_date"`
	OfferNotes    *string `json:"offer_notes"`
}

type RoundProgressionResponse struct {
	Message      string `json:"message"`
	InterviewID  string `json:"interview_id"`
	CandidateID  string `json:"candidate_id"`
	CurrentRound int    `json:"current_round"`
	NextRound    int    `json:"next_round"`
	Status       string `json:"status"`
}

type HiringInitiatedResponse struct {
	Message       string  `json:"message"`
	InterviewID   string  `json:"interview_id"`
	CandidateID   string  `json:"candidate_id"`
	Status        string  `json:"candidate_status"`
	RoundsCleared int     `json:"rounds_cleared"`
	SalaryOffered *string `json:"salary_offered,omitempty"`
	JoiningDate   *string `json:"joining_date,omitempty"`
}

type PipelineStats struct {
	TotalInterviews      int64 `json:"total_interviews"`
	AwaitingConfirmation int64 `json:"awaiting_confirmation"`
	Confirmed            int64 `json:"confirmed"`
	Scheduled            int64 `json:"scheduled"`
	Completed            int64 `json:"completed"`
	NoShows              int64 `json:"no_shows"`
	Cancelled            int64 `json:"cancelled"`
}

type InterviewListItem struct {
	InterviewID        string          `json:"interview_id"`
	JobID              string          `json:"job_id"`
	CandidateID        string          `json:"candidate_id"`
	CandidateName      string          `json:"candidate_name,omitempty"`
	JobTitle           string          `json:"job_title,omitempty"`
	InterviewMode      InterviewMode   `json:"interview_mode"`
	InterviewStatus    InterviewStatus `json:"interview_status"`
	InterviewRound     int             `json:"interview_round"`
	ScheduledStartTime *time.Time      `json:"scheduled_start_time,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type InterviewHistoryEntry struct {
	InterviewID   string          `json:"interview_id"`
	Round         int             `json:"round"`
	RoundName     string          `json:"round_name"`
	Status        InterviewStatus `json:"status"`
	ScheduledTime *time.Time      `json:"scheduled_time,omitempty"`
	Feedback      *string         `json:"feedback,omitempty"`
	Rating        *int            `json:"rating,omitempty"`
	InterviewMode InterviewMode   `json:"interview_mode"`
}

type InterviewHistoryResponse struct {
	CandidateID     string                  `json:"candidate_id"`
	CandidateName   string                  `json:"candidate_name"`
	CandidateStatus CandidateStatus         `json:"candidate_status"`
	TotalRounds     int                     `json:"total_rounds"`
	CurrentRound    int                     `json:"current_round"`
	Interviews      []InterviewHistoryEntry `json:"interviews"`
}

type BookingLinkResponse struct {
	InterviewID  string `json:"interview_id"`
	BookingLink  string `json:"booking_link"`
	BookingToken string `json:"booking_token"`
}

type PublicInterviewResponse struct {
	InterviewID        string          `json:"interview_id"`
	InterviewMode      InterviewMode   `json:"interview_mode"`
	InterviewDuration  int             `json:"interview_duration"`
	TimeZone           string          `json:"time_zone"`
	InterviewStatus    InterviewStatus `json:"interview_status"`
	ProposedSlots      SlotList        `json:"proposed_slots"`
	ScheduledStartTime *time.Time      `json:"scheduled_start_time,omitempty"`
	ScheduledEndTime   *time.Time      `json:"scheduled_end_time,omitempty"`
	MeetingLink        string          `json:"meeting_link,omitempty"`
	Instructions       string          `json:"additional_instructions,omitempty"`
	CandidateName      string          `json:"candidate_name,omitempty"`
	JobTitle           string          `json:"job_title,omitempty"`
	CompanyName        string          `json:"company_name,omitempty"`
}
