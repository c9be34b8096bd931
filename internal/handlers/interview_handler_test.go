package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sammy-0y/arbeit-project/internal/models"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

// stubScheduler returns canned results per operation; tests swap the fields
// they care about.
type stubScheduler struct {
	interview *models.Interview
	items     []models.InterviewListItem
	history   *models.InterviewHistoryResponse
	link      *models.BookingLinkResponse
	publicIV  *models.PublicInterviewResponse
	round     *models.RoundProgressionResponse
	hired     *models.HiringInitiatedResponse
	err       error

	lastActor  models.Actor
	lastFilter repositories.InterviewFilter
	lastReq    interface{}
}

func (s *stubScheduler) Create(actor models.Actor, req models.CreateInterviewRequest) (*models.Interview, error) {
	s.lastActor, s.lastReq = actor, req
	return s.interview, s.err
}

func (s *stubScheduler) List(actor models.Actor, filter repositories.InterviewFilter) ([]models.InterviewListItem, error) {
	s.lastActor, s.lastFilter = actor, filter
	return s.items, s.err
}

func (s *stubScheduler) Get(actor models.Actor, _ uuid.UUID) (*models.Interview, error) {
	s.lastActor = actor
	return s.interview, s.err
}

func (s *stubScheduler) BookSlot(actor models.Actor, _ uuid.UUID, req models.BookSlotRequest) (*models.Interview, error) {
	s.lastActor, s.lastReq = actor, req
	return s.interview, s.err
}

func (s *stubScheduler) SendInvite(actor models.Actor, _ uuid.UUID, req models.SendInviteRequest) (*models.Interview, error) {
	s.lastActor, s.lastReq = actor, req
	return s.interview, s.err
}

func (s *stubScheduler) MarkCompleted(actor models.Actor, _ uuid.UUID) (*models.Interview, error) {
	s.lastActor = actor
	return s.interview, s.err
}

func (s *stubScheduler) MarkNoShow(actor models.Actor, _ uuid.UUID) (*models.Interview, error) {
	s.lastActor = actor
	return s.interview, s.err
}

func (s *stubScheduler) Cancel(actor models.Actor, _ uuid.UUID) (*models.Interview, error) {
	s.lastActor = actor
	return s.interview, s.err
}

func (s *stubScheduler) MoveToNextRound(actor models.Actor, _ uuid.UUID, req models.MoveToNextRoundRequest) (*models.RoundProgressionResponse, error) {
	s.lastActor, s.lastReq = actor, req
	return s.round, s.err
}

func (s *stubScheduler) Reject(actor models.Actor, _ uuid.UUID, req models.MoveToNextRoundRequest) (*models.Interview, error) {
	s.lastActor, s.lastReq = actor, req
	return s.interview, s.err
}

func (s *stubScheduler) InitiateHiring(actor models.Actor, _ uuid.UUID, req models.InitiateHiringRequest) (*models.HiringInitiatedResponse, error) {
	s.lastActor, s.lastReq = actor, req
	return s.hired, s.err
}

func (s *stubScheduler) ListForCandidate(actor models.Actor, _ uuid.UUID) ([]models.InterviewListItem, error) {
	s.lastActor = actor
	return s.items, s.err
}

func (s *stubScheduler) History(actor models.Actor, _ uuid.UUID) (*models.InterviewHistoryResponse, error) {
	s.lastActor = actor
	return s.history, s.err
}

func (s *stubScheduler) BookingLink(actor models.Actor, _ uuid.UUID) (*models.BookingLinkResponse, error) {
	s.lastActor = actor
	return s.link, s.err
}

func (s *stubScheduler) PublicGet(_ uuid.UUID, _ string) (*models.PublicInterviewResponse, error) {
	return s.publicIV, s.err
}

func (s *stubScheduler) PublicBook(_ uuid.UUID, _, _ string) (*models.Interview, error) {
	return s.interview, s.err
}

func sampleInterview() *models.Interview {
	return &models.Interview{
		ID:              uuid.New(),
		JobID:           uuid.New(),
		CandidateID:     uuid.New(),
		ClientID:        uuid.New(),
		InterviewMode:   models.ModeVideo,
		InterviewStatus: models.StatusAwaitingConfirmation,
		InterviewRound:  1,
		CreatedAt:       time.Now(),
	}
}

func newTestApp(stub *stubScheduler) *fiber.App {
	handler := NewInterviewHandler(stub)
	public := NewPublicHandler(stub)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/interviews", handler.HandleCreate)
	api.Get("/interviews", handler.HandleList)
	api.Get("/interviews/:id", handler.HandleGet)
	api.Post("/interviews/:id/book-slot", handler.HandleBookSlot)
	api.Post("/interviews/:id/send-invite", handler.HandleSendInvite)
	api.Post("/interviews/:id/mark-completed", handler.HandleMarkCompleted)
	api.Post("/interviews/:id/move-to-next-round", handler.HandleMoveToNextRound)
	api.Get("/public/interviews/:id", public.HandleGet)
	api.Post("/public/interviews/:id/book", public.HandleBook)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestHandleCreate(t *testing.T) {
	stub := &stubScheduler{interview: sampleInterview()}
	app := newTestApp(stub)

	body := map[string]interface{}{
		"job_id":             uuid.NewString(),
		"candidate_id":       uuid.NewString(),
		"interview_mode":     "Video",
		"interview_duration": 60,
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/interviews", body, map[string]string{
		"X-User-Id":    "u-1",
		"X-User-Email": "recruiter@example.com",
		"X-User-Role":  "recruiter",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status %d, want 201", resp.StatusCode)
	}
	if stub.lastActor.Email != "recruiter@example.com" || stub.lastActor.Role != models.RoleRecruiter {
		t.Fatalf("actor headers not propagated: %+v", stub.lastActor)
	}
}

func TestHandleCreateDefaultsRole(t *testing.T) {
	stub := &stubScheduler{interview: sampleInterview()}
	app := newTestApp(stub)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/interviews", map[string]interface{}{}, nil)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status %d, want 201", resp.StatusCode)
	}
	if stub.lastActor.Role != models.RoleRecruiter {
		t.Fatalf("missing role should default to recruiter, got %q", stub.lastActor.Role)
	}
}

func TestHandleGetInvalidID(t *testing.T) {
	app := newTestApp(&stubScheduler{})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/interviews/not-a-uuid", nil, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestErrorMapping(t *testing.T) {
	id := uuid.NewString()
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &models.NotFoundError{Entity: "Interview", ID: id}, fiber.StatusNotFound},
		{"validation", &models.ValidationError{Field: "slot_id", Message: "required"}, fiber.StatusBadRequest},
		{"invalid transition", &models.InvalidStateTransitionError{Command: "cancel", CurrentStatus: models.StatusPassed}, fiber.StatusBadRequest},
		{"slot unavailable", &models.SlotUnavailableError{SlotID: "s"}, fiber.StatusConflict},
		{"conflict", &models.ConflictError{Message: "busy"}, fiber.StatusConflict},
		{"denied", &models.AccessDeniedError{}, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&stubScheduler{err: tc.err})
			resp := doJSON(t, app, http.MethodGet, "/api/v1/interviews/"+id, nil, nil)
			if resp.StatusCode != tc.want {
				t.Fatalf("status %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestHandleBookSlotRequiresSlotID(t *testing.T) {
	app := newTestApp(&stubScheduler{interview: sampleInterview()})

	resp := doJSON(t, app, http.MethodPost, "/api/v1/interviews/"+uuid.NewString()+"/book-slot",
		map[string]interface{}{}, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestHandleBookSlotPassesConfirmedFlag(t *testing.T) {
	stub := &stubScheduler{interview: sampleInterview()}
	app := newTestApp(stub)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/interviews/"+uuid.NewString()+"/book-slot",
		map[string]interface{}{"slot_id": "s-1", "confirmed": false}, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	req, ok := stub.lastReq.(models.BookSlotRequest)
	if !ok {
		t.Fatalf("request not forwarded")
	}
	if req.SlotID != "s-1" || req.Confirmed == nil || *req.Confirmed {
		t.Fatalf("booking request wrong: %+v", req)
	}
}

func TestHandleSendInviteWithoutBody(t *testing.T) {
	stub := &stubScheduler{interview: sampleInterview()}
	app := newTestApp(stub)

	// No body at all: the invite falls back to the stored meeting details.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/interviews/"+uuid.NewString()+"/send-invite", nil, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
}

func TestHandleMoveToNextRoundRatingBounds(t *testing.T) {
	stub := &stubScheduler{round: &models.RoundProgressionResponse{NextRound: 2}}
	app := newTestApp(stub)
	path := "/api/v1/interviews/" + uuid.NewString() + "/move-to-next-round"

	resp := doJSON(t, app, http.MethodPost, path, map[string]interface{}{"rating": 9}, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("out-of-range rating: status %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, path, map[string]interface{}{"rating": 4, "feedback": "solid"}, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
}

func TestHandleListParsesFilters(t *testing.T) {
	stub := &stubScheduler{items: []models.InterviewListItem{}}
	app := newTestApp(stub)

	jobID := uuid.New()
	resp := doJSON(t, app, http.MethodGet,
		"/api/v1/interviews?job_id="+jobID.String()+"&status=Scheduled&limit=10", nil, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	if stub.lastFilter.JobID == nil || *stub.lastFilter.JobID != jobID {
		t.Fatalf("job filter not parsed: %+v", stub.lastFilter)
	}
	if stub.lastFilter.Status != models.StatusScheduled || stub.lastFilter.Limit != 10 {
		t.Fatalf("filter wrong: %+v", stub.lastFilter)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/interviews?job_id=bogus", nil, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("bad job_id: status %d, want 400", resp.StatusCode)
	}
}

func TestPublicBookRequiresSlotID(t *testing.T) {
	stub := &stubScheduler{interview: sampleInterview()}
	app := newTestApp(stub)

	resp := doJSON(t, app, http.MethodPost,
		"/api/v1/public/interviews/"+uuid.NewString()+"/book?token=abc", nil, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost,
		"/api/v1/public/interviews/"+uuid.NewString()+"/book?token=abc&slot_id=s-1", nil, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
}

func TestPublicGetDeniedMapsTo403(t *testing.T) {
	app := newTestApp(&stubScheduler{err: &models.AccessDeniedError{Reason: "Invalid or expired booking link"}})

	resp := doJSON(t, app, http.MethodGet,
		"/api/v1/public/interviews/"+uuid.NewString()+"?token=bad", nil, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status %d, want 403", resp.StatusCode)
	}
}
