package domain

import (
	"context"
	"time"
)

// TeeShirtSize is the closed t-shirt size enumeration. Stored as text on the
// profile row and validated at the boundary.
type TeeShirtSize string

// TeeShirtSize values.
const (
	TeeShirtNotSpecified TeeShirtSize = "NOT_SPECIFIED"
	TeeShirtXSM          TeeShirtSize = "XS_M"
	TeeShirtXSW          TeeShirtSize = "XS_W"
	TeeShirtSM           TeeShirtSize = "S_M"
	TeeShirtSW           TeeShirtSize = "S_W"
	TeeShirtMM           TeeShirtSize = "M_M"
	TeeShirtMW           TeeShirtSize = "M_W"
	TeeShirtLM           TeeShirtSize = "L_M"
	TeeShirtLW           TeeShirtSize = "L_W"
	TeeShirtXLM          TeeShirtSize = "XL_M"
	TeeShirtXLW          TeeShirtSize = "XL_W"
	TeeShirtXXLM         TeeShirtSize = "XXL_M"
	TeeShirtXXLW         TeeShirtSize = "XXL_W"
	TeeShirtXXXLM        TeeShirtSize = "XXXL_M"
	TeeShirtXXXLW        TeeShirtSize = "XXXL_W"
)

var teeShirtSizes = map[TeeShirtSize]struct{}{
	TeeShirtNotSpecified: {},
	TeeShirtXSM:          {},
	TeeShirtXSW:          {},
	TeeShirtSM:           {},
	TeeShirtSW:           {},
	TeeShirtMM:           {},
	TeeShirtMW:           {},
	TeeShirtLM:           {},
	TeeShirtLW:           {},
	TeeShirtXLM:          {},
	TeeShirtXLW:          {},
	TeeShirtXXLM:         {},
	TeeShirtXXLW:         {},
	TeeShirtXXXLM:        {},
	TeeShirtXXXLW:        {},
}

// Valid reports whether s is one of the named enumeration values.
func (s TeeShirtSize) Valid() bool {
	_, ok := teeShirtSizes[s]
	return ok
}

// Profile represents a user profile, one per identity-provider user.
// swagger:model Profile
type Profile struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	DisplayName  string       `json:"display_name"`
	MainEmail    string       `json:"main_email"`
	TeeShirtSize TeeShirtSize `json:"tee_shirt_size"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewProfile returns a new Profile with the given fields. ID is typically set by the repository on create.
func NewProfile(userID, displayName, mainEmail string, size TeeShirtSize, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		UserID:       userID,
		DisplayName:  displayName,
		MainEmail:    mainEmail,
		TeeShirtSize: size,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// SaveProfileInput holds the user-modifiable profile fields. Empty fields are
// left unchanged.
type SaveProfileInput struct {
	DisplayName  string
	TeeShirtSize TeeShirtSize
}

// ProfileService defines the business logic for user profiles. Both methods
// create the profile lazily from the identity claims when it does not exist.
type ProfileService interface {
	Get(ctx context.Context, identity Identity) (*Profile, error)
	Save(ctx context.Context, identity Identity, input *SaveProfileInput) (*Profile, error)
}
