package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conferencecentral/internal/domain"
)

type mockSpeakerService struct {
	speaker  *domain.Speaker
	speakers []*domain.Speaker
	err      error
}

func (m *mockSpeakerService) Create(ctx context.Context, name, organization, email string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

func (m *mockSpeakerService) List(ctx context.Context) ([]*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speakers, nil
}

func TestSpeakerController_CreateSpeaker(t *testing.T) {
	svc := &mockSpeakerService{speaker: &domain.Speaker{ID: "spkr-1", Name: "Rob"}}
	ctrl := NewSpeakerController(discardLogger(), svc)

	body := strings.NewReader(`{"name":"Rob","organization":"Acme"}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/speakers", body))
	w := httptest.NewRecorder()

	ctrl.CreateSpeaker(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var resp SpeakerSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.Name != "Rob" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestSpeakerController_CreateSpeaker_MissingName(t *testing.T) {
	ctrl := NewSpeakerController(discardLogger(), &mockSpeakerService{})

	body := strings.NewReader(`{"organization":"Acme"}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/speakers", body))
	w := httptest.NewRecorder()

	ctrl.CreateSpeaker(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSpeakerController_ListSpeakers(t *testing.T) {
	svc := &mockSpeakerService{speakers: []*domain.Speaker{{ID: "spkr-1", Name: "Rob"}}}
	ctrl := NewSpeakerController(discardLogger(), svc)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/speakers", nil))
	w := httptest.NewRecorder()

	ctrl.ListSpeakers(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp ListSpeakersSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected one speaker, got %d", len(resp.Data))
	}
}

func TestSpeakerController_ListSpeakers_Error(t *testing.T) {
	ctrl := NewSpeakerController(discardLogger(), &mockSpeakerService{err: errors.New("db down")})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/speakers", nil))
	w := httptest.NewRecorder()

	ctrl.ListSpeakers(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
