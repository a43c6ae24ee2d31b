package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// SpeakerService defines the business logic for the speaker directory.
type SpeakerService interface {
	Create(ctx context.Context, name, organization, email string) (*domain.Speaker, error)
	List(ctx context.Context) ([]*domain.Speaker, error)
}

type speakerService struct {
	speakerRepo domain.SpeakerRepository
}

// NewSpeakerService creates a SpeakerService with the given repository.
func NewSpeakerService(speakerRepo domain.SpeakerRepository) SpeakerService {
	return &speakerService{speakerRepo: speakerRepo}
}

func (s *speakerService) Create(ctx context.Context, name, organization, email string) (*domain.Speaker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: speaker 'name' field required", domain.ErrInvalidInput)
	}
	now := time.Now()
	speaker := domain.NewSpeaker(name, organization, email, now, now)
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) List(ctx context.Context) ([]*domain.Speaker, error) {
	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}
