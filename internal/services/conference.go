package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const (
	announcementTpl   = "Last chance to attend! The following conferences are nearly sold out: %s"
	almostSoldOutMax  = 5
	defaultCity       = "Default City"
	conferenceDateFmt = "2006-01-02"
)

var defaultTopics = []string{"Default", "Topic"}

// queryFields maps wire filter fields to conference columns.
var queryFields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "max_attendees",
}

// queryOperators maps wire filter operators to SQL comparison operators.
var queryOperators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "!=",
}

type conferenceService struct {
	conferenceRepo   domain.ConferenceRepository
	registrationRepo domain.RegistrationRepository
	profileRepo      domain.ProfileRepository
	cache            domain.StringCache
	tasks            domain.TaskQueue
	logger           *slog.Logger
}

// NewConferenceService creates a ConferenceService with the given
// repositories, derived cache, and task queue.
func NewConferenceService(
	conferenceRepo domain.ConferenceRepository,
	registrationRepo domain.RegistrationRepository,
	profileRepo domain.ProfileRepository,
	cache domain.StringCache,
	tasks domain.TaskQueue,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo:   conferenceRepo,
		registrationRepo: registrationRepo,
		profileRepo:      profileRepo,
		cache:            cache,
		tasks:            tasks,
		logger:           logger,
	}
}

func (s *conferenceService) Create(ctx context.Context, identity domain.Identity, input *domain.CreateConferenceInput) (*domain.Conference, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: conference 'name' field required", domain.ErrInvalidInput)
	}

	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	conf := &domain.Conference{
		Name:                 strings.TrimSpace(input.Name),
		Description:          input.Description,
		OrganizerID:          prof.ID,
		OrganizerDisplayName: prof.DisplayName,
		Topics:               input.Topics,
		City:                 input.City,
		MaxAttendees:         input.MaxAttendees,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Server-side defaults for missing values.
	if conf.City == "" {
		conf.City = defaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string{}, defaultTopics...)
	}
	if conf.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max attendees must not be negative", domain.ErrInvalidInput)
	}

	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start date must have format YYYY-MM-DD", domain.ErrInvalidInput)
		}
		conf.StartDate = &start
		conf.Month = int(start.Month())
	}
	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end date must have format YYYY-MM-DD", domain.ErrInvalidInput)
		}
		conf.EndDate = &end
	}

	// All seats start open.
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	// Confirmation mail is fire-and-forget; an enqueue failure must not fail
	// the creation.
	if err := s.tasks.Enqueue(ctx, domain.TaskSendConfirmationEmail, map[string]string{
		domain.TaskParamEmail:          prof.MainEmail,
		domain.TaskParamConferenceInfo: describeConference(conf),
	}); err != nil {
		s.logger.Warn("failed to enqueue confirmation email", "conference_id", conf.ID, "err", err)
	}

	return conf, nil
}

func (s *conferenceService) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) ListCreated(ctx context.Context, identity domain.Identity) ([]*domain.Conference, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	conferences, err := s.conferenceRepo.ListByOrganizerID(ctx, prof.ID)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) Query(ctx context.Context, filters []domain.QueryFilter) ([]*domain.Conference, error) {
	repoFilters, orderBy, err := buildConferenceFilters(filters)
	if err != nil {
		return nil, err
	}
	conferences, err := s.conferenceRepo.Query(ctx, repoFilters, orderBy)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) ListAttending(ctx context.Context, identity domain.Identity) ([]*domain.Conference, error) {
	prof, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	ids, err := s.registrationRepo.ListConferenceIDs(ctx, prof.ID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	// Unresolvable references are skipped by the batch fetch; registrations
	// may dangle if a conference disappears.
	conferences, err := s.conferenceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) Announcement(ctx context.Context) (string, error) {
	announcement, _ := s.cache.Get(domain.AnnouncementCacheKey)
	return announcement, nil
}

// RecomputeAnnouncement rebuilds the almost-sold-out announcement from the
// current seat inventory. Last write to the cache key wins.
func (s *conferenceService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	conferences, err := s.conferenceRepo.ListAlmostSoldOut(ctx, almostSoldOutMax)
	if err != nil {
		return "", fmt.Errorf("list almost sold out conferences: %w", err)
	}

	if len(conferences) == 0 {
		s.cache.Delete(domain.AnnouncementCacheKey)
		return "", nil
	}

	names := make([]string, len(conferences))
	for i, c := range conferences {
		names[i] = c.Name
	}
	announcement := fmt.Sprintf(announcementTpl, strings.Join(names, ", "))
	s.cache.Set(domain.AnnouncementCacheKey, announcement)
	return announcement, nil
}

// buildConferenceFilters validates the wire filters against the closed
// field/operator sets and rejects inequality filters on more than one field.
func buildConferenceFilters(filters []domain.QueryFilter) ([]domain.ConferenceFilter, []string, error) {
	out := make([]domain.ConferenceFilter, 0, len(filters))
	inequalityColumn := ""
	for _, f := range filters {
		column, ok := queryFields[f.Field]
		if !ok {
			return nil, nil, fmt.Errorf("%w: filter contains invalid field %q", domain.ErrInvalidInput, f.Field)
		}
		op, ok := queryOperators[f.Operator]
		if !ok {
			return nil, nil, fmt.Errorf("%w: filter contains invalid operator %q", domain.ErrInvalidInput, f.Operator)
		}

		// Every operator except "=" is an inequality; only one field may
		// carry inequality filters.
		if op != "=" {
			if inequalityColumn != "" && inequalityColumn != column {
				return nil, nil, fmt.Errorf("%w: inequality filter is allowed on only one field", domain.ErrInvalidInput)
			}
			inequalityColumn = column
		}

		var value any = f.Value
		if column == "month" || column == "max_attendees" {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: filter value for %s must be an integer", domain.ErrInvalidInput, f.Field)
			}
			value = n
		}
		out = append(out, domain.ConferenceFilter{Column: column, Op: op, Value: value})
	}

	// Sort on the inequality column first when one is present.
	var orderBy []string
	if inequalityColumn != "" {
		orderBy = []string{inequalityColumn}
	}
	return out, orderBy, nil
}

func parseDate(value string) (time.Time, error) {
	if len(value) > len(conferenceDateFmt) {
		value = value[:len(conferenceDateFmt)]
	}
	return time.Parse(conferenceDateFmt, value)
}

func describeConference(c *domain.Conference) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", c.Name, c.City)
	if c.StartDate != nil {
		fmt.Fprintf(&b, ", starting %s", c.StartDate.Format(conferenceDateFmt))
	}
	if len(c.Topics) > 0 {
		fmt.Fprintf(&b, ". Topics: %s", strings.Join(c.Topics, ", "))
	}
	return b.String()
}
