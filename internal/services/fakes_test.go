package services

import (
	"context"
	"fmt"

	"conferencecentral/internal/domain"
)

type fakeProfileRepository struct {
	byUserID map[string]*domain.Profile
	created  []*domain.Profile
	err      error
}

func newFakeProfileRepository(profiles ...*domain.Profile) *fakeProfileRepository {
	r := &fakeProfileRepository{byUserID: map[string]*domain.Profile{}}
	for _, p := range profiles {
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if r.err != nil {
		return r.err
	}
	p.ID = fmt.Sprintf("prof-%d", len(r.byUserID)+1)
	r.byUserID[p.UserID] = p
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	for _, p := range r.byUserID {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	return r.err
}

type fakeConferenceRepository struct {
	byID          map[string]*domain.Conference
	queryResult   []*domain.Conference
	almostSoldOut []*domain.Conference
	gotFilters    []domain.ConferenceFilter
	gotOrderBy    []string
	created       []*domain.Conference
	err           error
}

func newFakeConferenceRepository(conferences ...*domain.Conference) *fakeConferenceRepository {
	r := &fakeConferenceRepository{byID: map[string]*domain.Conference{}}
	for _, c := range conferences {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeConferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	if r.err != nil {
		return r.err
	}
	c.ID = fmt.Sprintf("conf-%d", len(r.byID)+1)
	r.byID[c.ID] = c
	r.created = append(r.created, c)
	return nil
}

func (r *fakeConferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeConferenceRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	out := []*domain.Conference{}
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	out := []*domain.Conference{}
	for _, c := range r.byID {
		if c.OrganizerID == organizerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConferenceRepository) Query(ctx context.Context, filters []domain.ConferenceFilter, orderBy []string) ([]*domain.Conference, error) {
	r.gotFilters = filters
	r.gotOrderBy = orderBy
	return r.queryResult, r.err
}

func (r *fakeConferenceRepository) ListAlmostSoldOut(ctx context.Context, limit int) ([]*domain.Conference, error) {
	return r.almostSoldOut, r.err
}

type fakeSessionRepository struct {
	byID                   map[string]*domain.Session
	byConferenceAndSpeaker map[string][]*domain.Session
	created                []*domain.Session
	err                    error
}

func newFakeSessionRepository(sessions ...*domain.Session) *fakeSessionRepository {
	r := &fakeSessionRepository{
		byID:                   map[string]*domain.Session{},
		byConferenceAndSpeaker: map[string][]*domain.Session{},
	}
	for _, s := range sessions {
		r.byID[s.ID] = s
		key := s.ConferenceID + ":" + s.Speaker
		r.byConferenceAndSpeaker[key] = append(r.byConferenceAndSpeaker[key], s)
	}
	return r
}

func (r *fakeSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if r.err != nil {
		return r.err
	}
	s.ID = fmt.Sprintf("sess-%d", len(r.byID)+1)
	r.byID[s.ID] = s
	key := s.ConferenceID + ":" + s.Speaker
	r.byConferenceAndSpeaker[key] = append(r.byConferenceAndSpeaker[key], s)
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, id := range ids {
		if s, ok := r.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepository) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, s := range r.byID {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, r.err
}

func (r *fakeSessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, s := range r.byID {
		if s.ConferenceID == conferenceID && s.TypeOfSession == t {
			out = append(out, s)
		}
	}
	return out, r.err
}

func (r *fakeSessionRepository) ListByConferenceOrdered(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	return r.ListByConference(ctx, conferenceID)
}

func (r *fakeSessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*domain.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byConferenceAndSpeaker[conferenceID+":"+speaker], nil
}

func (r *fakeSessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, s := range r.byID {
		if s.Speaker == speaker {
			out = append(out, s)
		}
	}
	return out, r.err
}

func (r *fakeSessionRepository) ListByCity(ctx context.Context, city string) ([]*domain.Session, error) {
	return nil, r.err
}

func (r *fakeSessionRepository) ListEarlyNonWorkshop(ctx context.Context, before string) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, s := range r.byID {
		if s.TypeOfSession != domain.SessionWorkshop && s.StartTime != "" && s.StartTime < before {
			out = append(out, s)
		}
	}
	return out, r.err
}

type fakeRegistrationRepository struct {
	registerErr       error
	unregisterApplied bool
	unregisterErr     error
	conferenceIDs     []string
	listErr           error
}

func (r *fakeRegistrationRepository) Register(ctx context.Context, conferenceID, profileID string) error {
	return r.registerErr
}

func (r *fakeRegistrationRepository) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	return r.unregisterApplied, r.unregisterErr
}

func (r *fakeRegistrationRepository) ListConferenceIDs(ctx context.Context, profileID string) ([]string, error) {
	return r.conferenceIDs, r.listErr
}

type fakeWishlistRepository struct {
	addErr        error
	removeApplied bool
	removeErr     error
	sessionIDs    []string
	listErr       error
}

func (r *fakeWishlistRepository) Add(ctx context.Context, sessionID, profileID string) error {
	return r.addErr
}

func (r *fakeWishlistRepository) Remove(ctx context.Context, sessionID, profileID string) (bool, error) {
	return r.removeApplied, r.removeErr
}

func (r *fakeWishlistRepository) ListSessionIDs(ctx context.Context, profileID string) ([]string, error) {
	return r.sessionIDs, r.listErr
}

type fakeStringCache struct {
	values map[string]string
}

func newFakeStringCache() *fakeStringCache {
	return &fakeStringCache{values: map[string]string{}}
}

func (c *fakeStringCache) Set(key, value string) {
	c.values[key] = value
}

func (c *fakeStringCache) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *fakeStringCache) Delete(key string) {
	delete(c.values, key)
}

type enqueuedTask struct {
	task   string
	params map[string]string
}

type fakeTaskQueue struct {
	enqueued []enqueuedTask
	err      error
}

func (q *fakeTaskQueue) Enqueue(ctx context.Context, task string, params map[string]string) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, enqueuedTask{task: task, params: params})
	return nil
}
