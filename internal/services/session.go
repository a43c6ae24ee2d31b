package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const (
	featuredSpeakerTpl = "Catch speaker %s at the following sessions: %s"
	sessionTimeFmt     = "15:04"
	// Sessions starting at or after this time do not count as early.
	earlyCutoff = "19:00"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	conferenceRepo domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	cache          domain.StringCache
	tasks          domain.TaskQueue
	logger         *slog.Logger
}

// NewSessionService creates a SessionService with the given repositories,
// derived cache, and task queue.
func NewSessionService(
	sessionRepo domain.SessionRepository,
	conferenceRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	cache domain.StringCache,
	tasks domain.TaskQueue,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		conferenceRepo: conferenceRepo,
		profileRepo:    profileRepo,
		cache:          cache,
		tasks:          tasks,
		logger:         logger,
	}
}

func (s *sessionService) Create(ctx context.Context, identity domain.Identity, conferenceID string, input *domain.CreateSessionInput) (*domain.Session, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: session 'name' field required", domain.ErrInvalidInput)
	}

	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}

	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	// Only the conference organizer can add sessions.
	if conf.OrganizerID != prof.ID {
		return nil, domain.ErrForbidden
	}

	sessionType := input.TypeOfSession
	if sessionType == "" {
		sessionType = domain.SessionNotSpecified
	}
	if !sessionType.Valid() {
		return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, input.TypeOfSession)
	}

	now := time.Now()
	session := &domain.Session{
		ConferenceID:  conferenceID,
		Name:          strings.TrimSpace(input.Name),
		Highlights:    input.Highlights,
		Speaker:       strings.TrimSpace(input.Speaker),
		Duration:      input.Duration,
		TypeOfSession: sessionType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if input.Date != "" {
		date, err := parseDate(input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must have format YYYY-MM-DD", domain.ErrInvalidInput)
		}
		session.Date = &date
	}
	if input.StartTime != "" {
		if len(input.StartTime) != len(sessionTimeFmt) {
			return nil, fmt.Errorf("%w: start time must be HH:MM using 24 hour notation", domain.ErrInvalidInput)
		}
		if _, err := time.Parse(sessionTimeFmt, input.StartTime); err != nil {
			return nil, fmt.Errorf("%w: start time must be HH:MM using 24 hour notation", domain.ErrInvalidInput)
		}
		session.StartTime = input.StartTime
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// The featured-speaker recompute runs out-of-band; an enqueue failure
	// must not fail the creation.
	if session.Speaker != "" {
		if err := s.tasks.Enqueue(ctx, domain.TaskSetFeaturedSpeaker, map[string]string{
			domain.TaskParamConferenceID: conferenceID,
			domain.TaskParamSpeaker:      session.Speaker,
		}); err != nil {
			s.logger.Warn("failed to enqueue featured speaker task", "conference_id", conferenceID, "err", err)
		}
	}

	return session, nil
}

func (s *sessionService) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if err := s.checkConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConference(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListByConferenceAndType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, t)
	}
	if err := s.checkConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConferenceAndType(ctx, conferenceID, t)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListByConferenceOrdered(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if err := s.checkConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConferenceOrdered(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions ordered: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListBySpeaker(ctx, speaker)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListByCity(ctx context.Context, city string) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("list sessions by city: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListEarlyNonWorkshop(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListEarlyNonWorkshop(ctx, earlyCutoff)
	if err != nil {
		return nil, fmt.Errorf("list early non-workshop sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) FeaturedSpeaker(ctx context.Context) (string, error) {
	announcement, _ := s.cache.Get(domain.FeaturedSpeakerCacheKey)
	return announcement, nil
}

// RecomputeFeaturedSpeaker rebuilds the featured-speaker string for the
// conference. A speaker with more than one session becomes featured;
// otherwise the cache key is cleared. Last write wins.
func (s *sessionService) RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, speaker string) (string, error) {
	sessions, err := s.sessionRepo.ListByConferenceAndSpeaker(ctx, conferenceID, speaker)
	if err != nil {
		return "", fmt.Errorf("list sessions by speaker: %w", err)
	}

	if len(sessions) <= 1 {
		s.cache.Delete(domain.FeaturedSpeakerCacheKey)
		return "", nil
	}

	names := make([]string, len(sessions))
	for i, sess := range sessions {
		names[i] = sess.Name
	}
	announcement := fmt.Sprintf(featuredSpeakerTpl, speaker, strings.Join(names, ", "))
	s.cache.Set(domain.FeaturedSpeakerCacheKey, announcement)
	return announcement, nil
}

func (s *sessionService) checkConference(ctx context.Context, conferenceID string) error {
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get conference: %w", err)
	}
	return nil
}
