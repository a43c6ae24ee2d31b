package postgres

import (
	"context"
	"database/sql"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, organization, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.Name, s.Organization, s.Email, s.CreatedAt, s.UpdatedAt).
		Scan(&s.ID)
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT id, name, organization, email, created_at, updated_at
		FROM speakers
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Organization, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
