package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type profileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a ProfileService with the given repository.
func NewProfileService(profileRepo domain.ProfileRepository) domain.ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	return ensureProfile(ctx, s.profileRepo, identity)
}

func (s *profileService) Save(ctx context.Context, identity domain.Identity, input *domain.SaveProfileInput) (*domain.Profile, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.DisplayName); name != "" {
		prof.DisplayName = name
	}
	if input.TeeShirtSize != "" {
		if !input.TeeShirtSize.Valid() {
			return nil, fmt.Errorf("%w: unknown tee shirt size %q", domain.ErrInvalidInput, input.TeeShirtSize)
		}
		prof.TeeShirtSize = input.TeeShirtSize
	}

	prof.UpdatedAt = time.Now()
	if err := s.profileRepo.Update(ctx, prof); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return prof, nil
}

// ensureProfile returns the caller's profile, creating it from the identity
// claims on first authenticated access.
func ensureProfile(ctx context.Context, repo domain.ProfileRepository, identity domain.Identity) (*domain.Profile, error) {
	prof, err := repo.GetByUserID(ctx, identity.UserID)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	now := time.Now()
	prof = domain.NewProfile(identity.UserID, identity.DisplayName, identity.Email, domain.TeeShirtNotSpecified, now, now)
	if err := repo.Create(ctx, prof); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return prof, nil
}
