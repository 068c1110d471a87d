package errs

import "errors"

// Error taxonomy shared by every service. Callers match with errors.Is; the
// HTTP layer maps each sentinel to a status code. None of these are retried
// automatically anywhere in the core.
var (
	// ErrUnauthenticated means no resolvable caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound means a referenced ambulance or booking does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the attempted transition is no longer valid: the
	// booking was already resolved by another actor, or the ambulance was
	// already claimed. Surfaced to users as "already handled".
	ErrConflict = errors.New("conflict")

	// ErrNoAmbulanceAvailable means dispatch found zero eligible
	// candidates. Terminal; the UI must offer a manual-dial fallback.
	ErrNoAmbulanceAvailable = errors.New("no ambulance available")

	// ErrBookingExists means the customer already has an active booking
	// with this ambulance.
	ErrBookingExists = errors.New("active booking already exists")

	// ErrUnavailable wraps transient I/O failures from the backing
	// stores. Callers may re-issue the whole user intent.
	ErrUnavailable = errors.New("backing store unavailable")

	// ErrInvalidLocation means coordinates fall outside valid bounds.
	ErrInvalidLocation = errors.New("invalid location coordinates")
)
