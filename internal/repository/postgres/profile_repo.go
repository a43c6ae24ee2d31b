package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, main_email, tee_shirt_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.UserID, p.DisplayName, p.MainEmail, string(p.TeeShirtSize), p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, display_name, main_email, tee_shirt_size, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, display_name, main_email, tee_shirt_size, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, tee_shirt_size = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, p.DisplayName, string(p.TeeShirtSize), p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) scanOne(row *sql.Row) (*domain.Profile, error) {
	p := &domain.Profile{}
	var size string
	err := row.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.MainEmail, &size, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.TeeShirtSize = domain.TeeShirtSize(size)
	return p, nil
}
