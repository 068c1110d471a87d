package constants

// NATS Subjects
const (
	// Booking lifecycle
	SubjectBookingCreated = "booking.created"
	SubjectBookingUpdated = "booking.updated"

	// Fleet
	SubjectAmbulanceUpdated = "ambulance.updated"

	// Location feed mirror, consumed by external listeners
	SubjectLocationUpdate = "location.update"

	// Dispatch outcomes for the notification layer
	SubjectDispatchFailed = "dispatch.failed"
)
