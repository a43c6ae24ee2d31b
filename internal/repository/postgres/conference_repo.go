package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const conferenceColumns = `c.id, c.name, c.description, c.organizer_id, p.display_name,
		       c.topics, c.city, c.start_date, c.end_date, c.month,
		       c.max_attendees, c.seats_available, c.created_at, c.updated_at`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (name, description, organizer_id, topics, city,
		                         start_date, end_date, month, max_attendees, seats_available,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Description, c.OrganizerID, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM conferences c
		JOIN profiles p ON p.id = c.organizer_id
		WHERE c.id = $1
	`, conferenceColumns)
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM conferences c
		JOIN profiles p ON p.id = c.organizer_id
		WHERE c.id = ANY($1)
		ORDER BY c.name ASC
	`, conferenceColumns)
	return r.list(ctx, query, pq.Array(ids))
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM conferences c
		JOIN profiles p ON p.id = c.organizer_id
		WHERE c.organizer_id = $1
		ORDER BY c.created_at DESC
	`, conferenceColumns)
	return r.list(ctx, query, organizerID)
}

func (r *conferenceRepository) Query(ctx context.Context, filters []domain.ConferenceFilter, orderBy []string) ([]*domain.Conference, error) {
	where := []string{}
	args := []interface{}{}
	n := 1
	for _, f := range filters {
		// topics is text[]; equality means array membership.
		if f.Column == "topics" {
			if f.Op == "!=" {
				where = append(where, fmt.Sprintf("NOT ($%d = ANY(c.topics))", n))
			} else {
				where = append(where, fmt.Sprintf("$%d = ANY(c.topics)", n))
			}
		} else {
			where = append(where, fmt.Sprintf("c.%s %s $%d", f.Column, f.Op, n))
		}
		args = append(args, f.Value)
		n++
	}

	order := make([]string, 0, len(orderBy)+1)
	for _, col := range orderBy {
		order = append(order, "c."+col+" ASC")
	}
	order = append(order, "c.name ASC")

	query := fmt.Sprintf(`
		SELECT %s
		FROM conferences c
		JOIN profiles p ON p.id = c.organizer_id
	`, conferenceColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + strings.Join(order, ", ")

	return r.list(ctx, query, args...)
}

func (r *conferenceRepository) ListAlmostSoldOut(ctx context.Context, limit int) ([]*domain.Conference, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM conferences c
		JOIN profiles p ON p.id = c.organizer_id
		WHERE c.seats_available > 0 AND c.seats_available <= $1
		ORDER BY c.name ASC
	`, conferenceColumns)
	return r.list(ctx, query, limit)
}

func (r *conferenceRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conferences := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	return conferences, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var startNull, endNull sql.NullTime
	var topics []string
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.OrganizerID, &c.OrganizerDisplayName,
		pq.Array(&topics), &c.City, &startNull, &endNull, &c.Month,
		&c.MaxAttendees, &c.SeatsAvailable, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Topics = topics
	if c.Topics == nil {
		c.Topics = []string{}
	}
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}
