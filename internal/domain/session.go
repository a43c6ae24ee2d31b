package domain

import (
	"context"
	"time"
)

// SessionType is the closed session type enumeration. Stored as text on the
// session row and validated at the boundary.
type SessionType string

// SessionType values.
const (
	SessionNotSpecified SessionType = "NOT_SPECIFIED"
	SessionWorkshop     SessionType = "WORKSHOP"
	SessionLecture      SessionType = "LECTURE"
	SessionKeynote      SessionType = "KEYNOTE"
)

// Valid reports whether t is one of the named enumeration values.
func (t SessionType) Valid() bool {
	switch t {
	case SessionNotSpecified, SessionWorkshop, SessionLecture, SessionKeynote:
		return true
	}
	return false
}

// Session represents a conference session or talk. StartTime is a zero-padded
// HH:MM string in 24 hour notation, empty when not set.
// swagger:model Session
type Session struct {
	ID            string      `json:"id"`
	ConferenceID  string      `json:"conference_id"`
	Name          string      `json:"name"`
	Highlights    string      `json:"highlights,omitempty"`
	Speaker       string      `json:"speaker,omitempty"`
	Duration      int         `json:"duration,omitempty"`
	TypeOfSession SessionType `json:"type_of_session"`
	Date          *time.Time  `json:"date,omitempty"`
	StartTime     string      `json:"start_time,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CreateSessionInput holds the session creation fields as they arrive on the
// wire. Date is a YYYY-MM-DD string, StartTime an HH:MM string.
type CreateSessionInput struct {
	Name          string
	Highlights    string
	Speaker       string
	Duration      int
	TypeOfSession SessionType
	Date          string
	StartTime     string
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID string, t SessionType) ([]*Session, error)
	// ListByConferenceOrdered orders by session date, then start time.
	ListByConferenceOrdered(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListByCity(ctx context.Context, city string) ([]*Session, error)
	// ListEarlyNonWorkshop lists sessions that are not workshops and start
	// strictly before the given HH:MM time.
	ListEarlyNonWorkshop(ctx context.Context, before string) ([]*Session, error)
}

// SessionService defines the business logic for sessions and the derived
// featured-speaker announcement.
type SessionService interface {
	Create(ctx context.Context, identity Identity, conferenceID string, input *CreateSessionInput) (*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID string, t SessionType) ([]*Session, error)
	ListByConferenceOrdered(ctx context.Context, conferenceID string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListByCity(ctx context.Context, city string) ([]*Session, error)
	ListEarlyNonWorkshop(ctx context.Context) ([]*Session, error)
	FeaturedSpeaker(ctx context.Context) (string, error)
	RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, speaker string) (string, error)
}
