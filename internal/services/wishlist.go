package services

import (
	"context"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type wishlistService struct {
	wishlistRepo domain.WishlistRepository
	sessionRepo  domain.SessionRepository
	profileRepo  domain.ProfileRepository
}

// NewWishlistService creates a WishlistService with the given repositories.
func NewWishlistService(
	wishlistRepo domain.WishlistRepository,
	sessionRepo domain.SessionRepository,
	profileRepo domain.ProfileRepository,
) domain.WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		sessionRepo:  sessionRepo,
		profileRepo:  profileRepo,
	}
}

func (s *wishlistService) Add(ctx context.Context, identity domain.Identity, sessionID string) (bool, error) {
	// Ensure the session exists.
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}

	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	if err := s.wishlistRepo.Add(ctx, sessionID, prof.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyInWishlist) {
			return false, domain.ErrAlreadyInWishlist
		}
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	return true, nil
}

func (s *wishlistService) Remove(ctx context.Context, identity domain.Identity, sessionID string) (bool, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}

	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	applied, err := s.wishlistRepo.Remove(ctx, sessionID, prof.ID)
	if err != nil {
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	return applied, nil
}

func (s *wishlistService) ListSessions(ctx context.Context, identity domain.Identity) ([]*domain.Session, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	ids, err := s.wishlistRepo.ListSessionIDs(ctx, prof.ID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	sessions, err := s.sessionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}
	return sessions, nil
}
