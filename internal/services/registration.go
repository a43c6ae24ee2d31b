package services

import (
	"context"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	profileRepo      domain.ProfileRepository
}

// NewRegistrationService creates a RegistrationService with the given
// repositories.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	profileRepo domain.ProfileRepository,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		profileRepo:      profileRepo,
	}
}

func (s *registrationService) Register(ctx context.Context, identity domain.Identity, conferenceID string) (bool, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	err = s.registrationRepo.Register(ctx, conferenceID, prof.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrAlreadyRegistered),
			errors.Is(err, domain.ErrNoSeatsAvailable):
			return false, err
		}
		return false, fmt.Errorf("register for conference: %w", err)
	}
	return true, nil
}

func (s *registrationService) Unregister(ctx context.Context, identity domain.Identity, conferenceID string) (bool, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	applied, err := s.registrationRepo.Unregister(ctx, conferenceID, prof.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("unregister from conference: %w", err)
	}
	return applied, nil
}
