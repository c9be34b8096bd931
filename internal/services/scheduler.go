package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

// SchedulerService owns the interview lifecycle: proposing slots, booking,
// invites, completion, no-shows, cancellation, and round progression. Every
// mutating command is a conditional update keyed on the current status, so
// two racing commands on the same interview can never both win in conflicting
// ways.
type SchedulerService interface {
	Create(actor models.Actor, req models.CreateInterviewRequest) (*models.Interview, error)
	List(actor models.Actor, filter repositories.InterviewFilter) ([]models.InterviewListItem, error)
	Get(actor models.Actor, id uuid.UUID) (*models.Interview, error)
	BookSlot(actor models.Actor, id uuid.UUID, req models.BookSlotRequest) (*models.Interview, error)
	SendInvite(actor models.Actor, id uuid.UUID, req models.SendInviteRequest) (*models.Interview, error)
	MarkCompleted(actor models.Actor, id uuid.UUID) (*models.Interview, error)
	MarkNoShow(actor models.Actor, id uuid.UUID) (*models.Interview, error)
	Cancel(actor models.Actor, id uuid.UUID) (*models.Interview, error)
	MoveToNextRound(actor models.Actor, id uuid.UUID, req models.MoveToNextRoundRequest) (*models.RoundProgressionResponse, error)
	Reject(actor models.Actor, id uuid.UUID, req models.MoveToNextRoundRequest) (*models.Interview, error)
	InitiateHiring(actor models.Actor, id uuid.UUID, req models.InitiateHiringRequest) (*models.HiringInitiatedResponse, error)

	ListForCandidate(actor models.Actor, candidateID uuid.UUID) ([]models.InterviewListItem, error)
	History(actor models.Actor, candidateID uuid.UUID) (*models.InterviewHistoryResponse, error)

	BookingLink(actor models.Actor, id uuid.UUID) (*models.BookingLinkResponse, error)
	PublicGet(id uuid.UUID, token string) (*models.PublicInterviewResponse, error)
	PublicBook(id uuid.UUID, slotID, token string) (*models.Interview, error)
}

type scheduler struct {
	interviews repositories.InterviewRepository
	candidates repositories.CandidateRepository
	jobs       repositories.JobRepository
	authorizer Authorizer
	dispatcher Dispatcher
	tokens     BookingTokenService
}

func NewSchedulerService(
	interviews repositories.InterviewRepository,
	candidates repositories.CandidateRepository,
	jobs repositories.JobRepository,
	authorizer Authorizer,
	dispatcher Dispatcher,
	tokens BookingTokenService,
) SchedulerService {
	return &scheduler{
		interviews: interviews,
		candidates: candidates,
		jobs:       jobs,
		authorizer: authorizer,
		dispatcher: dispatcher,
		tokens:     tokens,
	}
}

func (s *scheduler) authorize(actor models.Actor, permission Permission) error {
	decision := s.authorizer.Authorize(actor, permission)
	if !decision.Allowed {
		return &models.AccessDeniedError{Reason: decision.Reason}
	}
	return nil
}

// validateRating guards the 1-5 rating scale on every command that records
// feedback, whatever the transport.
func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return &models.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return nil
}

// loadScoped fetches the interview and applies the tenant boundary.
func (s *scheduler) loadScoped(actor models.Actor, id uuid.UUID) (*models.Interview, error) {
	iv, err := s.interviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessTenant(iv.ClientID) {
		return nil, &models.AccessDeniedError{}
	}
	return iv, nil
}

func (s *scheduler) Create(actor models.Actor, req models.CreateInterviewRequest) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewCreate); err != nil {
		return nil, err
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, &models.ValidationError{Field: "job_id", Message: "invalid id format"}
	}
	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return nil, &models.ValidationError{Field: "candidate_id", Message: "invalid id format"}
	}
	if !req.InterviewMode.Valid() {
		return nil, &models.ValidationError{Field: "interview_mode", Message: "must be Video, Phone or Onsite"}
	}
	if req.InterviewDuration < models.MinInterviewDuration || req.InterviewDuration > models.MaxInterviewDuration {
		return nil, &models.ValidationError{
			Field:   "interview_duration",
			Message: fmt.Sprintf("must be between %d and %d minutes", models.MinInterviewDuration, models.MaxInterviewDuration),
		}
	}
	if len(req.ProposedSlots) < models.MinProposedSlots || len(req.ProposedSlots) > models.MaxProposedSlots {
		return nil, &models.ValidationError{
			Field:   "proposed_slots",
			Message: fmt.Sprintf("between %d and %d slots required", models.MinProposedSlots, models.MaxProposedSlots),
		}
	}
	for _, slot := range req.ProposedSlots {
		if !slot.EndTime.After(slot.StartTime) {
			return nil, &models.ValidationError{Field: "proposed_slots", Message: "end_time must be after start_time"}
		}
	}

	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	candidate, err := s.candidates.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.JobID != jobID {
		return nil, &models.ValidationError{Field: "candidate_id", Message: "candidate does not belong to this job"}
	}
	if !actor.CanAccessTenant(job.ClientID) {
		return nil, &models.AccessDeniedError{}
	}

	round := req.InterviewRound
	if round <= 0 {
		round = 1
	}
	exists, err := s.interviews.HasActiveRound(jobID, candidateID, round)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.ConflictError{
			Message: fmt.Sprintf("an active interview already exists for round %d of this job", round),
		}
	}

	roundName := req.RoundName
	if roundName == "" {
		roundName = fmt.Sprintf("Round %d", round)
	}

	slots := make(models.SlotList, 0, len(req.ProposedSlots))
	for _, in := range req.ProposedSlots {
		slots = append(slots, models.Slot{
			SlotID:          uuid.NewString(),
			StartTime:       in.StartTime,
			EndTime:         in.EndTime,
			DurationMinutes: req.InterviewDuration,
			IsAvailable:     true,
		})
	}

	now := time.Now()
	iv := &models.Interview{
		ID:                     uuid.New(),
		JobID:                  jobID,
		CandidateID:            candidateID,
		ClientID:               job.ClientID,
		InterviewMode:          req.InterviewMode,
		InterviewDuration:      req.InterviewDuration,
		TimeZone:               req.TimeZone,
		ProposedSlots:          slots,
		InterviewStatus:        models.StatusAwaitingConfirmation,
		MeetingLink:            req.MeetingLink,
		AdditionalInstructions: req.AdditionalInstructions,
		InterviewRound:         round,
		RoundName:              roundName,
		CreatedAt:              now,
		UpdatedAt:              now,
		CreatedBy:              actor.Email,
	}

	if err := s.interviews.Create(iv); err != nil {
		return nil, err
	}

	s.publish(EventInterviewCreated, actor, iv, "", models.StatusAwaitingConfirmation, models.Metadata{
		"slots_count": len(slots),
		"round":       round,
	})

	return iv, nil
}

func (s *scheduler) List(actor models.Actor, filter repositories.InterviewFilter) ([]models.InterviewListItem, error) {
	if err := s.authorize(actor, PermInterviewRead); err != nil {
		return nil, err
	}
	if actor.Role == models.RoleClientUser {
		filter.ClientID = actor.ClientID
	}

	interviews, err := s.interviews.List(filter)
	if err != nil {
		return nil, err
	}
	return s.toListItems(interviews), nil
}

func (s *scheduler) Get(actor models.Actor, id uuid.UUID) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewRead); err != nil {
		return nil, err
	}
	return s.loadScoped(actor, id)
}

func (s *scheduler) BookSlot(actor models.Actor, id uuid.UUID, req models.BookSlotRequest) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewBook); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	confirmed := true
	if req.Confirmed != nil {
		confirmed = *req.Confirmed
	}

	return s.claim(actor, iv, req.SlotID, confirmed, models.Metadata{})
}

// claim runs the booking engine: a single conditional update that flips the
// slot to unavailable, records the selection, and derives the scheduled times.
func (s *scheduler) claim(actor models.Actor, iv *models.Interview, slotID string, confirmed bool, meta models.Metadata) (*models.Interview, error) {
	if iv.InterviewStatus != models.StatusAwaitingConfirmation {
		return nil, &models.InvalidStateTransitionError{Command: "book-slot", CurrentStatus: iv.InterviewStatus}
	}

	slot := iv.ProposedSlots.Find(slotID)
	if slot == nil || !slot.IsAvailable {
		return nil, &models.SlotUnavailableError{SlotID: slotID}
	}

	claim := repositories.SlotClaim{
		Slots:     iv.ProposedSlots.WithClaimed(slotID),
		SlotID:    slotID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Confirmed: confirmed,
	}
	if confirmed {
		now := time.Now()
		claim.ConfirmedAt = &now
	}

	if err := s.interviews.ClaimSlot(iv.ID, claim); err != nil {
		if err == repositories.ErrStaleInterview {
			return nil, s.classifyClaimFailure(iv.ID, slotID)
		}
		return nil, err
	}

	newStatus := models.StatusAwaitingConfirmation
	if confirmed {
		newStatus = models.StatusConfirmed
	}

	meta["slot_id"] = slotID
	meta["start_time"] = slot.StartTime.Format(time.RFC3339)
	meta["confirmed"] = confirmed
	s.publish(EventSlotBooked, actor, iv, iv.InterviewStatus, newStatus, meta)

	return s.interviews.FindByID(iv.ID)
}

// classifyClaimFailure turns a lost booking race into the precise error the
// caller should see.
func (s *scheduler) classifyClaimFailure(id uuid.UUID, slotID string) error {
	iv, err := s.interviews.FindByID(id)
	if err != nil {
		return err
	}
	if iv.InterviewStatus != models.StatusAwaitingConfirmation {
		return &models.InvalidStateTransitionError{Command: "book-slot", CurrentStatus: iv.InterviewStatus}
	}
	return &models.SlotUnavailableError{SlotID: slotID}
}

func (s *scheduler) SendInvite(actor models.Actor, id uuid.UUID, req models.SendInviteRequest) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewInvite); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := map[string]interface{}{
		"invite_sent":    true,
		"invite_sent_by": actor.Email,
		"invite_sent_at": now,
	}
	if req.MeetingLink != "" {
		extra["meeting_link"] = req.MeetingLink
	}
	if req.InterviewMode.Valid() {
		extra["interview_mode"] = req.InterviewMode
	}
	if req.Duration >= models.MinInterviewDuration && req.Duration <= models.MaxInterviewDuration {
		extra["interview_duration"] = req.Duration
	}
	if req.TimeZone != "" {
		extra["time_zone"] = req.TimeZone
	}

	from := []models.InterviewStatus{models.StatusConfirmed, models.StatusScheduled}
	if _, err := s.transition(iv, "send-invite", from, models.StatusScheduled, extra, false); err != nil {
		return nil, err
	}

	s.publish(EventInviteSent, actor, iv, iv.InterviewStatus, models.StatusScheduled, models.Metadata{
		"meeting_link": req.MeetingLink,
	})

	return s.interviews.FindByID(id)
}

func (s *scheduler) MarkCompleted(actor models.Actor, id uuid.UUID) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewComplete); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	// Only Scheduled may win the update; a repeat (or a racer holding a stale
	// Scheduled read) falls through to the idempotent re-read and becomes a
	// no-op rather than a second Completed write.
	from := []models.InterviewStatus{models.StatusScheduled}
	applied, err := s.transition(iv, "mark-completed", from, models.StatusCompleted, nil, true)
	if err != nil {
		return nil, err
	}

	if applied {
		s.publish(EventInterviewCompleted, actor, iv, iv.InterviewStatus, models.StatusCompleted, nil)
	}

	return s.interviews.FindByID(id)
}

func (s *scheduler) MarkNoShow(actor models.Actor, id uuid.UUID) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewNoShow); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	if iv.InterviewStatus == models.StatusNoShow {
		// The transition may have landed while the aggregate bump failed;
		// a repeated mark is the retry that repairs it.
		if err := s.reconcileNoShows(iv.CandidateID); err != nil {
			return nil, err
		}
		return iv, nil
	}

	extra := map[string]interface{}{
		"no_show_flag":  true,
		"no_show_count": gorm.Expr("no_show_count + 1"),
	}
	applied, err := s.transition(iv, "mark-no-show", models.NonTerminalStatuses, models.StatusNoShow, extra, true)
	if err != nil {
		return nil, err
	}

	if applied {
		// The candidate aggregate is bumped with an atomic increment;
		// interviews for the same candidate may be marked concurrently.
		if err := s.candidates.IncrementNoShows(iv.CandidateID); err != nil {
			return nil, err
		}

		s.publish(EventInterviewNoShow, actor, iv, iv.InterviewStatus, models.StatusNoShow, models.Metadata{
			"no_show_count": iv.NoShowCount + 1,
		})
	}

	return s.interviews.FindByID(id)
}

// reconcileNoShows rewrites the candidate aggregate from the derived count so
// the two can never drift apart for good.
func (s *scheduler) reconcileNoShows(candidateID uuid.UUID) error {
	count, err := s.interviews.CountNoShows(candidateID)
	if err != nil {
		return err
	}
	return s.candidates.SetNoShowCount(candidateID, int(count))
}

func (s *scheduler) Cancel(actor models.Actor, id uuid.UUID) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewCancel); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	if iv.InterviewStatus == models.StatusCancelled {
		return iv, nil
	}

	applied, err := s.transition(iv, "cancel", models.NonTerminalStatuses, models.StatusCancelled, nil, true)
	if err != nil {
		return nil, err
	}

	if applied {
		s.publish(EventInterviewCancelled, actor, iv, iv.InterviewStatus, models.StatusCancelled, nil)
	}

	return s.interviews.FindByID(id)
}

func (s *scheduler) MoveToNextRound(actor models.Actor, id uuid.UUID, req models.MoveToNextRoundRequest) (*models.RoundProgressionResponse, error) {
	if err := s.authorize(actor, PermInterviewProgress); err != nil {
		return nil, err
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := map[string]interface{}{
		"feedback":  req.Feedback,
		"rating":    req.Rating,
		"passed_by": actor.Email,
		"passed_at": now,
	}
	from := []models.InterviewStatus{models.StatusCompleted, models.StatusScheduled}
	if _, err := s.transition(iv, "move-to-next-round", from, models.StatusPassed, extra, false); err != nil {
		return nil, err
	}

	round := iv.InterviewRound
	if err := s.candidates.MarkProgressed(iv.CandidateID, round+1, iv.ID); err != nil {
		return nil, err
	}

	meta := models.Metadata{
		"round":      round,
		"next_round": round + 1,
	}
	if req.Feedback != nil {
		meta["feedback"] = *req.Feedback
	}
	if req.Rating != nil {
		meta["rating"] = *req.Rating
	}
	if req.NextRoundName != nil {
		meta["next_round_name"] = *req.NextRoundName
	}
	s.publish(EventInterviewPassed, actor, iv, iv.InterviewStatus, models.StatusPassed, meta)

	return &models.RoundProgressionResponse{
		Message:      fmt.Sprintf("Candidate passed Round %d. Ready for Round %d.", round, round+1),
		InterviewID:  iv.ID.String(),
		CandidateID:  iv.CandidateID.String(),
		CurrentRound: round,
		NextRound:    round + 1,
		Status:       string(models.StatusPassed),
	}, nil
}

func (s *scheduler) Reject(actor models.Actor, id uuid.UUID, req models.MoveToNextRoundRequest) (*models.Interview, error) {
	if err := s.authorize(actor, PermInterviewReject); err != nil {
		return nil, err
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := map[string]interface{}{
		"feedback":    req.Feedback,
		"rating":      req.Rating,
		"rejected_by": actor.Email,
		"rejected_at": now,
	}
	// Rejection is allowed from any state; it is terminal for this application.
	if _, err := s.transition(iv, "reject", allStatuses, models.StatusFailed, extra, false); err != nil {
		return nil, err
	}

	if err := s.candidates.MarkRejected(iv.CandidateID, iv.InterviewRound, req.Feedback); err != nil {
		return nil, err
	}

	meta := models.Metadata{"round": iv.InterviewRound}
	if req.Feedback != nil {
		meta["feedback"] = *req.Feedback
	}
	s.publish(EventInterviewFailed, actor, iv, iv.InterviewStatus, models.StatusFailed, meta)

	return s.interviews.FindByID(id)
}

func (s *scheduler) InitiateHiring(actor models.Actor, id uuid.UUID, req models.InitiateHiringRequest) (*models.HiringInitiatedResponse, error) {
	if err := s.authorize(actor, PermInterviewHire); err != nil {
		return nil, err
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := map[string]interface{}{
		"feedback":            req.Feedback,
		"rating":              req.Rating,
		"hiring_initiated":    true,
		"hiring_initiated_at": now,
		"hiring_initiated_by": actor.Email,
	}
	if _, err := s.transition(iv, "initiate-hiring", allStatuses, models.StatusPassed, extra, false); err != nil {
		return nil, err
	}

	round := iv.InterviewRound
	offer := repositories.OfferDetails{
		SalaryOffered: req.SalaryOffered,
		JoiningDate:   req.JoiningDate,
		OfferNotes:    req.OfferNotes,
		SelectedBy:    actor.Email,
	}
	if err := s.candidates.MarkSelected(iv.CandidateID, round, offer); err != nil {
		return nil, err
	}

	meta := models.Metadata{"rounds_cleared": round}
	if req.SalaryOffered != nil {
		meta["salary_offered"] = *req.SalaryOffered
	}
	if req.JoiningDate != nil {
		meta["joining_date"] = *req.JoiningDate
	}
	s.publish(EventHiringInitiated, actor, iv, iv.InterviewStatus, models.StatusPassed, meta)

	return &models.HiringInitiatedResponse{
		Message:       fmt.Sprintf("Hiring initiated for candidate after %d round(s)", round),
		InterviewID:   iv.ID.String(),
		CandidateID:   iv.CandidateID.String(),
		Status:        string(models.CandidateStatusSelected),
		RoundsCleared: round,
		SalaryOffered: req.SalaryOffered,
		JoiningDate:   req.JoiningDate,
	}, nil
}

var allStatuses = []models.InterviewStatus{
	models.StatusDraft,
	models.StatusAwaitingConfirmation,
	models.StatusConfirmed,
	models.StatusScheduled,
	models.StatusCompleted,
	models.StatusNoShow,
	models.StatusCancelled,
	models.StatusPassed,
	models.StatusFailed,
}

// transition performs the guarded status change and classifies a guard miss.
// When idempotent is set the command tolerates finding the interview already
// in the target status; applied reports whether this call actually won the
// update, so side effects are never replayed by a losing duplicate.
func (s *scheduler) transition(iv *models.Interview, command string, from []models.InterviewStatus, to models.InterviewStatus, extra map[string]interface{}, idempotent bool) (applied bool, err error) {
	err = s.interviews.Transition(iv.ID, from, to, extra)
	if err == nil {
		return true, nil
	}
	if err != repositories.ErrStaleInterview {
		return false, err
	}

	current, ferr := s.interviews.FindByID(iv.ID)
	if ferr != nil {
		return false, ferr
	}
	if current.InterviewStatus == to && idempotent {
		return false, nil
	}
	if current.InterviewStatus.IsTerminal() {
		return false, &models.ConflictError{
			Message: fmt.Sprintf("interview already resolved to %s", current.InterviewStatus),
		}
	}
	return false, &models.InvalidStateTransitionError{Command: command, CurrentStatus: current.InterviewStatus}
}

func (s *scheduler) ListForCandidate(actor models.Actor, candidateID uuid.UUID) ([]models.InterviewListItem, error) {
	if err := s.authorize(actor, PermInterviewRead); err != nil {
		return nil, err
	}
	candidate, err := s.candidates.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessTenant(candidate.ClientID) {
		return nil, &models.AccessDeniedError{}
	}

	interviews, err := s.interviews.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	return s.toListItems(interviews), nil
}

func (s *scheduler) History(actor models.Actor, candidateID uuid.UUID) (*models.InterviewHistoryResponse, error) {
	if err := s.authorize(actor, PermInterviewRead); err != nil {
		return nil, err
	}
	candidate, err := s.candidates.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessTenant(candidate.ClientID) {
		return nil, &models.AccessDeniedError{}
	}

	interviews, err := s.interviews.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.InterviewHistoryEntry, 0, len(interviews))
	for _, iv := range interviews {
		entries = append(entries, models.InterviewHistoryEntry{
			InterviewID:   iv.ID.String(),
			Round:         iv.InterviewRound,
			RoundName:     iv.RoundName,
			Status:        iv.InterviewStatus,
			ScheduledTime: iv.ScheduledStartTime,
			Feedback:      iv.Feedback,
			Rating:        iv.Rating,
			InterviewMode: iv.InterviewMode,
		})
	}

	return &models.InterviewHistoryResponse{
		CandidateID:     candidateID.String(),
		CandidateName:   candidate.Name,
		CandidateStatus: candidate.Status,
		TotalRounds:     len(entries),
		CurrentRound:    candidate.CurrentRound,
		Interviews:      entries,
	}, nil
}

func (s *scheduler) BookingLink(actor models.Actor, id uuid.UUID) (*models.BookingLinkResponse, error) {
	if err := s.authorize(actor, PermInterviewRead); err != nil {
		return nil, err
	}
	iv, err := s.loadScoped(actor, id)
	if err != nil {
		return nil, err
	}

	return &models.BookingLinkResponse{
		InterviewID:  iv.ID.String(),
		BookingLink:  s.tokens.BookingLink(iv.ID),
		BookingToken: s.tokens.Generate(iv.ID),
	}, nil
}

func (s *scheduler) PublicGet(id uuid.UUID, token string) (*models.PublicInterviewResponse, error) {
	if !s.tokens.Verify(id, token) {
		return nil, &models.AccessDeniedError{Reason: "Invalid or expired booking link"}
	}

	iv, err := s.interviews.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := &models.PublicInterviewResponse{
		InterviewID:        iv.ID.String(),
		InterviewMode:      iv.InterviewMode,
		InterviewDuration:  iv.InterviewDuration,
		TimeZone:           iv.TimeZone,
		InterviewStatus:    iv.InterviewStatus,
		ProposedSlots:      iv.ProposedSlots,
		ScheduledStartTime: iv.ScheduledStartTime,
		ScheduledEndTime:   iv.ScheduledEndTime,
		MeetingLink:        iv.MeetingLink,
		Instructions:       iv.AdditionalInstructions,
	}

	if candidate, err := s.candidates.FindByID(iv.CandidateID); err == nil {
		resp.CandidateName = candidate.Name
	}
	if job, err := s.jobs.FindByID(iv.JobID); err == nil {
		resp.JobTitle = job.Title
	}
	if client, err := s.jobs.FindClientByID(iv.ClientID); err == nil {
		resp.CompanyName = client.CompanyName
	}

	return resp, nil
}

func (s *scheduler) PublicBook(id uuid.UUID, slotID, token string) (*models.Interview, error) {
	if !s.tokens.Verify(id, token) {
		return nil, &models.AccessDeniedError{Reason: "Invalid or expired booking link"}
	}

	iv, err := s.interviews.FindByID(id)
	if err != nil {
		return nil, err
	}

	return s.claim(models.SystemActor, iv, slotID, true, models.Metadata{
		"booked_via": "public_link",
	})
}

func (s *scheduler) toListItems(interviews []models.Interview) []models.InterviewListItem {
	items := make([]models.InterviewListItem, 0, len(interviews))
	for _, iv := range interviews {
		item := models.InterviewListItem{
			InterviewID:        iv.ID.String(),
			JobID:              iv.JobID.String(),
			CandidateID:        iv.CandidateID.String(),
			InterviewMode:      iv.InterviewMode,
			InterviewStatus:    iv.InterviewStatus,
			InterviewRound:     iv.InterviewRound,
			ScheduledStartTime: iv.ScheduledStartTime,
			CreatedAt:          iv.CreatedAt,
		}
		if candidate, err := s.candidates.FindByID(iv.CandidateID); err == nil {
			item.CandidateName = candidate.Name
		}
		if job, err := s.jobs.FindByID(iv.JobID); err == nil {
			item.JobTitle = job.Title
		}
		items = append(items, item)
	}
	return items
}

// publish emits the transition event carrying the audit payload. Delivery is
// asynchronous and may not block or fail the command.
func (s *scheduler) publish(eventType EventType, actor models.Actor, iv *models.Interview, previous, next models.InterviewStatus, meta models.Metadata) {
	s.dispatcher.Publish(Event{
		Type:           eventType,
		Actor:          actor,
		EntityType:     "interview",
		EntityID:       iv.ID.String(),
		InterviewID:    iv.ID,
		CandidateID:    iv.CandidateID,
		ClientID:       iv.ClientID,
		PreviousStatus: previous,
		NewStatus:      next,
		Metadata:       meta,
		OccurredAt:     time.Now(),
	})
}
