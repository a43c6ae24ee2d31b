package domain

import (
	"context"
	"time"
)

// Conference represents a conference, owned by its organizer's profile.
// swagger:model Conference
type Conference struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	OrganizerID          string     `json:"organizer_id"`
	OrganizerDisplayName string     `json:"organizer_display_name,omitempty"`
	Topics               []string   `json:"topics"`
	City                 string     `json:"city"`
	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Month                int        `json:"month"`
	MaxAttendees         int        `json:"max_attendees"`
	SeatsAvailable       int        `json:"seats_available"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CreateConferenceInput holds the conference creation fields as they arrive on
// the wire. Dates are YYYY-MM-DD strings; zero values get server defaults.
type CreateConferenceInput struct {
	Name         string
	Description  string
	Topics       []string
	City         string
	StartDate    string
	EndDate      string
	MaxAttendees int
}

// QueryFilter is one user-supplied conference filter. Field and Operator are
// validated against the closed sets (CITY, TOPIC, MONTH, MAX_ATTENDEES and
// EQ, GT, GTEQ, LT, LTEQ, NE).
type QueryFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// ConferenceFilter is a validated filter ready for the repository: a column
// name, a SQL comparison operator, and a typed value.
type ConferenceFilter struct {
	Column string
	Op     string
	Value  any
}

// ConferenceRepository defines the interface for conference storage
type ConferenceRepository interface {
	Create(ctx context.Context, conference *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Conference, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	// Query lists conferences matching all filters, ordered by the given
	// columns (ascending) with name as the final tie-breaker.
	Query(ctx context.Context, filters []ConferenceFilter, orderBy []string) ([]*Conference, error)
	// ListAlmostSoldOut lists conferences with 0 < seats_available <= limit.
	ListAlmostSoldOut(ctx context.Context, limit int) ([]*Conference, error)
}

// ConferenceService defines the business logic for conferences and the
// derived announcement.
type ConferenceService interface {
	Create(ctx context.Context, identity Identity, input *CreateConferenceInput) (*Conference, error)
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListCreated(ctx context.Context, identity Identity) ([]*Conference, error)
	Query(ctx context.Context, filters []QueryFilter) ([]*Conference, error)
	ListAttending(ctx context.Context, identity Identity) ([]*Conference, error)
	Announcement(ctx context.Context) (string, error)
	RecomputeAnnouncement(ctx context.Context) (string, error)
}
