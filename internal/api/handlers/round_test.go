package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jeichenberger88/golf-tracker/internal/api/websocket"
	"github.com/jeichenberger88/golf-tracker/internal/storage"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// mockRoundService is a mock storage service for round handler tests.
type mockRoundService struct {
	rounds []*models.Round
	err    error

	added      []*models.Round
	addErr     error
	lastHoleBy bool
}

func (m *mockRoundService) AddRound(_ context.Context, round *models.Round, useHoleByHole bool) error {
	if m.addErr != nil {
		return m.addErr
	}
	round.ID = int64(len(m.added) + 1)
	m.added = append(m.added, round)
	m.lastHoleBy = useHoleByHole
	return nil
}

func (m *mockRoundService) ListRounds(_ context.Context) ([]*models.Round, error) {
	return m.rounds, m.err
}

func (m *mockRoundService) GetRound(_ context.Context, id int64) (*models.Round, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rounds {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRoundService) RecentRounds(_ context.Context, n int) ([]*models.Round, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.rounds) <= n {
		return m.rounds, nil
	}
	return m.rounds[len(m.rounds)-n:], nil
}

// mockBroadcaster records broadcast events.
type mockBroadcaster struct {
	events []websocket.Event
}

func (m *mockBroadcaster) BroadcastEvent(event websocket.Event) bool {
	m.events = append(m.events, event)
	return true
}

func sampleRounds() []*models.Round {
	return []*models.Round{
		{ID: 1, Course: "Torrey Pines South", Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Score: 90, Par: 72, RoundType: models.RoundType18, Tees: models.TeesWhite},
		{ID: 2, Course: "Local Muni", Date: time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC), Score: 44, Par: 36, RoundType: models.RoundType9, Tees: models.TeesWhite},
		{ID: 3, Course: "Local Muni", Date: time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC), Score: 43, Par: 36, RoundType: models.RoundType9, Tees: models.TeesWhite},
	}
}

func TestCreateRound(t *testing.T) {
	service := &mockRoundService{}
	events := &mockBroadcaster{}
	handler := NewRoundHandler(service, events, nil)

	body, _ := json.Marshal(CreateRoundRequest{
		Course: "Torrey Pines South",
		Date:   "2026-05-02",
		Score:  intPtr(90),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateRound(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	if len(service.added) != 1 {
		t.Fatalf("service received %d rounds, want 1", len(service.added))
	}
	added := service.added[0]
	if added.Course != "Torrey Pines South" || added.Score != 90 {
		t.Errorf("stored round = %+v", added)
	}
	if !added.Date.Equal(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("stored date = %v", added.Date)
	}

	var resp struct {
		Data models.Round `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.ID != 1 {
		t.Errorf("response ID = %d, want the stored ID", resp.Data.ID)
	}

	// A successful create announces itself over the event stream.
	if len(events.events) != 2 {
		t.Fatalf("broadcast %d events, want round.created + stats.updated", len(events.events))
	}
	if events.events[0].Type != websocket.EventRoundCreated {
		t.Errorf("first event type = %q", events.events[0].Type)
	}
	if events.events[1].Type != websocket.EventStatsUpdated {
		t.Errorf("second event type = %q", events.events[1].Type)
	}
}

func TestCreateRoundHoleByHoleFlag(t *testing.T) {
	service := &mockRoundService{}
	handler := NewRoundHandler(service, nil, nil)

	holes := make([]*int, models.HolesPerRound)
	for i := 0; i < 9; i++ {
		holes[i] = intPtr(5)
	}
	body, _ := json.Marshal(CreateRoundRequest{
		Course:        "Local Muni",
		Date:          "2026-05-09",
		RoundType:     models.RoundType9,
		HoleScores:    holes,
		UseHoleByHole: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateRound(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	if !service.lastHoleBy {
		t.Error("useHoleByHole flag not passed through to the service")
	}
}

func TestCreateRoundBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"course": `},
		{"bad date", `{"course": "Local Muni", "date": "05/02/2026", "score": 90}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockRoundService{}
			handler := NewRoundHandler(service, nil, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			handler.CreateRound(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(service.added) != 0 {
				t.Errorf("service received %d rounds, want 0", len(service.added))
			}
		})
	}
}

func TestCreateRoundInvalidRound(t *testing.T) {
	service := &mockRoundService{addErr: storage.ErrInvalidRound}
	handler := NewRoundHandler(service, nil, nil)

	body, _ := json.Marshal(CreateRoundRequest{Course: "Local Muni", Date: "2026-05-02"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateRound(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for a rejected round", rec.Code, http.StatusBadRequest)
	}
}

func TestListRounds(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{rounds: sampleRounds()}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rounds", nil)
	rec := httptest.NewRecorder()
	handler.ListRounds(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Data []models.Round `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("got %d rounds, want 3", len(resp.Data))
	}
}

func TestListRoundsRecent(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{rounds: sampleRounds()}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rounds?recent=2", nil)
	rec := httptest.NewRecorder()
	handler.ListRounds(rec, req)

	var resp struct {
		Data []models.Round `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d rounds, want 2", len(resp.Data))
	}
	if resp.Data[0].ID != 2 || resp.Data[1].ID != 3 {
		t.Errorf("recent rounds = %d, %d; want the last two in order", resp.Data[0].ID, resp.Data[1].ID)
	}
}

func TestListRoundsBadRecent(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rounds?recent=zero", nil)
	rec := httptest.NewRecorder()
	handler.ListRounds(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListRoundsEmpty(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rounds", nil)
	rec := httptest.NewRecorder()
	handler.ListRounds(rec, req)

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(resp.Data) != "[]" {
		t.Errorf("empty list serialized as %s, want []", resp.Data)
	}
}

func TestGetRound(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{rounds: sampleRounds()}, nil, nil)

	req := newURLParamRequest(http.MethodGet, "/api/v1/rounds/2", "roundID", "2")
	rec := httptest.NewRecorder()
	handler.GetRound(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Data models.Round `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.ID != 2 || resp.Data.Course != "Local Muni" {
		t.Errorf("round = %+v", resp.Data)
	}
}

func TestGetRoundNotFound(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{rounds: sampleRounds()}, nil, nil)

	req := newURLParamRequest(http.MethodGet, "/api/v1/rounds/99", "roundID", "99")
	rec := httptest.NewRecorder()
	handler.GetRound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetRoundBadID(t *testing.T) {
	handler := NewRoundHandler(&mockRoundService{}, nil, nil)

	req := newURLParamRequest(http.MethodGet, "/api/v1/rounds/abc", "roundID", "abc")
	rec := httptest.NewRecorder()
	handler.GetRound(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// mockTeeResolver serves fixed tee data for one course ID.
type mockTeeResolver struct {
	courseID string
	info     models.TeeInfo
}

func (m *mockTeeResolver) Lookup(_ context.Context, courseID, _ string) (models.TeeInfo, bool) {
	if courseID != m.courseID {
		return models.TeeInfo{}, false
	}
	return m.info, true
}

func TestCreateRoundFillsCourseReference(t *testing.T) {
	service := &mockRoundService{}
	tees := &mockTeeResolver{
		courseID: "local-pebble-beach",
		info:     models.TeeInfo{Yardage: 6146, Rating: 71.7, Slope: 135},
	}
	handler := NewRoundHandler(service, nil, tees)

	courseID := "local-pebble-beach"
	body, _ := json.Marshal(CreateRoundRequest{
		Course:   "Pebble Beach Golf Links",
		CourseID: &courseID,
		Date:     "2026-05-02",
		Score:    intPtr(92),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateRound(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body)
	}
	added := service.added[0]
	if added.CourseRating == nil || *added.CourseRating != 71.7 {
		t.Errorf("CourseRating = %v, want 71.7", added.CourseRating)
	}
	if added.SlopeRating == nil || *added.SlopeRating != 135 {
		t.Errorf("SlopeRating = %v, want 135", added.SlopeRating)
	}
	if added.Yardage == nil || *added.Yardage != 6146 {
		t.Errorf("Yardage = %v, want 6146", added.Yardage)
	}
}

func TestCreateRoundKeepsClientCourseData(t *testing.T) {
	service := &mockRoundService{}
	tees := &mockTeeResolver{
		courseID: "local-pebble-beach",
		info:     models.TeeInfo{Yardage: 6146, Rating: 71.7, Slope: 135},
	}
	handler := NewRoundHandler(service, nil, tees)

	courseID := "local-pebble-beach"
	rating := 70.0
	body, _ := json.Marshal(CreateRoundRequest{
		Course:       "Pebble Beach Golf Links",
		CourseID:     &courseID,
		Date:         "2026-05-02",
		Score:        intPtr(92),
		CourseRating: &rating,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateRound(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	added := service.added[0]
	if added.CourseRating == nil || *added.CourseRating != 70.0 {
		t.Errorf("CourseRating = %v, want the client's 70.0", added.CourseRating)
	}
	if added.SlopeRating != nil {
		t.Errorf("SlopeRating = %v, want untouched nil", added.SlopeRating)
	}
}

func intPtr(v int) *int { return &v }

// newURLParamRequest builds a request carrying a chi URL parameter.
func newURLParamRequest(method, target, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
