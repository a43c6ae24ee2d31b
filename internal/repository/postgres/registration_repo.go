package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register runs the seat-conserving registration transaction. The conference
// row is locked for the duration, so two concurrent calls for the last seat
// serialize and exactly one succeeds.
func (r *registrationRepository) Register(ctx context.Context, conferenceID, profileID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var seats int
	err = tx.QueryRowContext(ctx, `
		SELECT seats_available
		FROM conferences
		WHERE id = $1
		FOR UPDATE
	`, conferenceID).Scan(&seats)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock conference: %w", err)
	}

	var registered bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM conference_attendance
			WHERE conference_id = $1 AND profile_id = $2
		)
	`, conferenceID, profileID).Scan(&registered)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("check registration: %w", err)
	}
	if registered {
		_ = tx.Rollback()
		return domain.ErrAlreadyRegistered
	}

	if seats <= 0 {
		_ = tx.Rollback()
		return domain.ErrNoSeatsAvailable
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO conference_attendance (conference_id, profile_id)
		VALUES ($1, $2)
	`, conferenceID, profileID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create registration: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE conferences
		SET seats_available = seats_available - 1, updated_at = NOW()
		WHERE id = $1
	`, conferenceID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("take seat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Unregister removes the registration and returns the seat in one
// transaction. A missing registration is a no-op, not an error.
func (r *registrationRepository) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var seats int
	err = tx.QueryRowContext(ctx, `
		SELECT seats_available
		FROM conferences
		WHERE id = $1
		FOR UPDATE
	`, conferenceID).Scan(&seats)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("lock conference: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM conference_attendance
		WHERE conference_id = $1 AND profile_id = $2
	`, conferenceID, profileID)
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("delete registration: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		_ = tx.Rollback()
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE conferences
		SET seats_available = seats_available + 1, updated_at = NOW()
		WHERE id = $1
	`, conferenceID); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("return seat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

func (r *registrationRepository) ListConferenceIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT conference_id
		FROM conference_attendance
		WHERE profile_id = $1
		ORDER BY created_at ASC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
