package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"conferencecentral/internal/domain"
)

type fakeSpeakerRepository struct {
	speakers []*domain.Speaker
	err      error
}

func (r *fakeSpeakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	if r.err != nil {
		return r.err
	}
	s.ID = fmt.Sprintf("spkr-%d", len(r.speakers)+1)
	r.speakers = append(r.speakers, s)
	return nil
}

func (r *fakeSpeakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	return r.speakers, r.err
}

func TestSpeakerService_Create(t *testing.T) {
	repo := &fakeSpeakerRepository{}
	svc := NewSpeakerService(repo)

	speaker, err := svc.Create(context.Background(), " Rob ", "Acme", "rob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speaker.ID == "" {
		t.Fatal("expected speaker to be persisted")
	}
	if speaker.Name != "Rob" {
		t.Errorf("expected trimmed name, got %q", speaker.Name)
	}
}

func TestSpeakerService_Create_NameRequired(t *testing.T) {
	svc := NewSpeakerService(&fakeSpeakerRepository{})

	_, err := svc.Create(context.Background(), "  ", "", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSpeakerService_List(t *testing.T) {
	repo := &fakeSpeakerRepository{speakers: []*domain.Speaker{{ID: "spkr-1", Name: "Rob"}}}
	svc := NewSpeakerService(repo)

	speakers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(speakers) != 1 || speakers[0].Name != "Rob" {
		t.Fatalf("unexpected speakers: %v", speakers)
	}
}
