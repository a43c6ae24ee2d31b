package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker. Sessions reference speakers by name string;
// there is no foreign key between the two.
// swagger:model Speaker
type Speaker struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is typically set by the repository on create.
func NewSpeaker(name, organization, email string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		Name:         name,
		Organization: organization,
		Email:        email,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	List(ctx context.Context) ([]*Speaker, error)
}
