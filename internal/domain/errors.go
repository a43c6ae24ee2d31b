package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a referenced entity does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller is not the owning organizer.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when the request is invalid (e.g. a malformed
	// date string or an unknown filter field).
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyRegistered is returned when the profile already holds a
	// registration for the conference.
	ErrAlreadyRegistered = errors.New("already registered for this conference")
	// ErrNoSeatsAvailable is returned when a conference has no seats left.
	ErrNoSeatsAvailable = errors.New("no seats available")
	// ErrAlreadyInWishlist is returned on a duplicate wishlist add.
	ErrAlreadyInWishlist = errors.New("session already in wishlist")
)
