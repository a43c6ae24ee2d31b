package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var conferenceRows = []string{
	"id", "name", "description", "organizer_id", "display_name",
	"topics", "city", "start_date", "end_date", "month",
	"max_attendees", "seats_available", "created_at", "updated_at",
}

func TestConferenceRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conf := &domain.Conference{
		Name:           "GopherCon",
		Description:    "Annual Go conference",
		OrganizerID:    "prof-1",
		Topics:         []string{"Go", "Cloud"},
		City:           "Berlin",
		StartDate:      &start,
		Month:          6,
		MaxAttendees:   100,
		SeatsAvailable: 100,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectQuery(`INSERT INTO conferences`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("conf-1"))

	repo := NewConferenceRepository(db)
	require.NoError(t, repo.Create(ctx, conf))
	require.Equal(t, "conf-1", conf.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConferenceRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Conference
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE c.id = \$1`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows(conferenceRows).
						AddRow("conf-1", "GopherCon", "Annual", "prof-1", "Alice",
							"{Go,Cloud}", "Berlin", start, nil, 6,
							100, 42, now, now))
			},
			want: &domain.Conference{
				ID:                   "conf-1",
				Name:                 "GopherCon",
				Description:          "Annual",
				OrganizerID:          "prof-1",
				OrganizerDisplayName: "Alice",
				Topics:               []string{"Go", "Cloud"},
				City:                 "Berlin",
				StartDate:            &start,
				Month:                6,
				MaxAttendees:         100,
				SeatsAvailable:       42,
				CreatedAt:            now,
				UpdatedAt:            now,
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE c.id = \$1`).
					WithArgs("conf-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewConferenceRepository(db)
			id := "conf-1"
			if tt.wantErr != nil {
				id = "conf-missing"
			}
			got, err := repo.GetByID(ctx, id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConferenceRepository_GetByIDs_Empty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConferenceRepository(db)
	got, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestConferenceRepository_Query(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE c.city = \$1 AND c.month > \$2 ORDER BY c.month ASC, c.name ASC`).
		WithArgs("Berlin", 5).
		WillReturnRows(sqlmock.NewRows(conferenceRows).
			AddRow("conf-1", "GopherCon", "", "prof-1", "Alice",
				"{}", "Berlin", nil, nil, 6,
				100, 42, now, now))

	repo := NewConferenceRepository(db)
	got, err := repo.Query(ctx, []domain.ConferenceFilter{
		{Column: "city", Op: "=", Value: "Berlin"},
		{Column: "month", Op: ">", Value: 5},
	}, []string{"month"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "conf-1", got[0].ID)
	require.Nil(t, got[0].StartDate)
	require.Empty(t, got[0].Topics)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConferenceRepository_ListAlmostSoldOut(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE c.seats_available > 0 AND c.seats_available <= \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(conferenceRows).
			AddRow("conf-1", "GopherCon", "", "prof-1", "Alice",
				"{}", "Berlin", nil, nil, 6,
				100, 3, now, now).
			AddRow("conf-2", "RustConf", "", "prof-2", "Bob",
				"{}", "Portland", nil, nil, 9,
				50, 1, now, now))

	repo := NewConferenceRepository(db)
	got, err := repo.ListAlmostSoldOut(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].SeatsAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
