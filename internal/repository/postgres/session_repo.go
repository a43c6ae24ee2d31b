package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const sessionColumns = `s.id, s.conference_id, s.name, s.highlights, s.speaker,
		       s.duration, s.type_of_session, s.date, s.start_time, s.created_at, s.updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, highlights, speaker, duration,
		                      type_of_session, date, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var startTime interface{}
	if s.StartTime != "" {
		startTime = s.StartTime
	}
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, s.Highlights, s.Speaker, s.Duration,
		string(s.TypeOfSession), s.Date, startTime, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.id = $1
	`, sessionColumns)
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.id = ANY($1)
		ORDER BY s.name ASC
	`, sessionColumns)
	return r.list(ctx, query, pq.Array(ids))
}

func (r *sessionRepository) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.conference_id = $1
		ORDER BY s.created_at ASC
	`, sessionColumns)
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.conference_id = $1 AND s.type_of_session = $2
		ORDER BY s.created_at ASC
	`, sessionColumns)
	return r.list(ctx, query, conferenceID, string(t))
}

func (r *sessionRepository) ListByConferenceOrdered(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.conference_id = $1
		ORDER BY s.date ASC NULLS LAST, s.start_time ASC NULLS LAST
	`, sessionColumns)
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.conference_id = $1 AND s.speaker = $2
		ORDER BY s.created_at ASC
	`, sessionColumns)
	return r.list(ctx, query, conferenceID, speaker)
}

func (r *sessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.speaker = $1
		ORDER BY s.created_at ASC
	`, sessionColumns)
	return r.list(ctx, query, speaker)
}

func (r *sessionRepository) ListByCity(ctx context.Context, city string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		JOIN conferences c ON c.id = s.conference_id
		WHERE c.city = $1
		ORDER BY s.created_at ASC
	`, sessionColumns)
	return r.list(ctx, query, city)
}

func (r *sessionRepository) ListEarlyNonWorkshop(ctx context.Context, before string) ([]*domain.Session, error) {
	// start_time holds zero-padded HH:MM, so the string comparison is
	// chronological.
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions s
		WHERE s.type_of_session <> $1 AND s.start_time IS NOT NULL AND s.start_time < $2
		ORDER BY s.start_time ASC
	`, sessionColumns)
	return r.list(ctx, query, string(domain.SessionWorkshop), before)
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var sessionType string
	var dateNull sql.NullTime
	var startNull sql.NullString
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, &s.Highlights, &s.Speaker,
		&s.Duration, &sessionType, &dateNull, &startNull, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.TypeOfSession = domain.SessionType(sessionType)
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	if startNull.Valid {
		s.StartTime = startNull.String
	}
	return s, nil
}
