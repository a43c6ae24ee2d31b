package postgres

import (
	"context"
	"database/sql"

	"conferencecentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, sessionID, profileID string) error {
	// The primary key enforces uniqueness; ON CONFLICT turns the duplicate
	// into a zero-row insert.
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO session_wishlist (session_id, profile_id)
		VALUES ($1, $2)
		ON CONFLICT (session_id, profile_id) DO NOTHING
	`, sessionID, profileID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadyInWishlist
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, sessionID, profileID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM session_wishlist
		WHERE session_id = $1 AND profile_id = $2
	`, sessionID, profileID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *wishlistRepository) ListSessionIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT session_id
		FROM session_wishlist
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
