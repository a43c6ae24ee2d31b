package domain

import "context"

// RegistrationRepository defines storage operations for conference
// registrations. Register and Unregister run in a single transaction that
// keeps the attendance set and the conference seat count consistent.
type RegistrationRepository interface {
	// Register adds the profile to the conference's attendance set and takes
	// one seat. Returns ErrNotFound for an unknown conference,
	// ErrAlreadyRegistered for a duplicate registration, and
	// ErrNoSeatsAvailable when the conference is full.
	Register(ctx context.Context, conferenceID, profileID string) error
	// Unregister removes the profile's registration and returns the seat.
	// Returns (false, nil) when the profile was not registered.
	Unregister(ctx context.Context, conferenceID, profileID string) (bool, error)
	// ListConferenceIDs returns the ids of conferences the profile attends.
	ListConferenceIDs(ctx context.Context, profileID string) ([]string, error)
}

// RegistrationService defines register/unregister for the calling user.
type RegistrationService interface {
	Register(ctx context.Context, identity Identity, conferenceID string) (bool, error)
	Unregister(ctx context.Context, identity Identity, conferenceID string) (bool, error)
}

// WishlistRepository defines storage operations for the profile's session
// wishlist.
type WishlistRepository interface {
	// Add puts the session on the profile's wishlist. Returns
	// ErrAlreadyInWishlist on a duplicate add.
	Add(ctx context.Context, sessionID, profileID string) error
	// Remove takes the session off the wishlist. Returns (false, nil) when
	// the session was not on it.
	Remove(ctx context.Context, sessionID, profileID string) (bool, error)
	// ListSessionIDs returns the ids of the profile's wishlisted sessions.
	ListSessionIDs(ctx context.Context, profileID string) ([]string, error)
}

// WishlistService defines wishlist operations for the calling user.
type WishlistService interface {
	Add(ctx context.Context, identity Identity, sessionID string) (bool, error)
	Remove(ctx context.Context, identity Identity, sessionID string) (bool, error)
	ListSessions(ctx context.Context, identity Identity) ([]*Session, error)
}
