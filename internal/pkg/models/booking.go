package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the current status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether the status can never change again.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// allowedTransitions is the full booking state machine. Status moves
// strictly forward; terminal states have no outgoing edges.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusAccepted: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether the state machine permits moving from one
// status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActiveStatuses are the non-terminal statuses a customer sees on the
// pending-requests screen.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusAccepted}

// Booking represents a transport request. One booking belongs to exactly one
// customer and references exactly one ambulance by its driver's email.
// Status is the only mutable field after creation, besides CompletedAt.
type Booking struct {
	ID          uuid.UUID     `json:"booking_id" db:"id"`
	CustomerID  string        `json:"customer_id" db:"customer_id"`
	AmbulanceID string        `json:"ambulance_id" db:"ambulance_id"`
	Status      BookingStatus `json:"status" db:"status"`

	// Dispatched marks a booking whose ambulance was claimed busy by the
	// coordinator at creation time. Only such a claim may be released when
	// the booking is rejected or cancelled; manual bookings never hold one.
	Dispatched bool `json:"dispatched" db:"dispatched"`

	// Pickup location is a snapshot of the customer's position at booking
	// time, immutable once set.
	PickupLatitude  float64 `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude" db:"pickup_longitude"`
	PickupAddress   string  `json:"pickup_address,omitempty" db:"pickup_address"`

	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// PickupLocation returns the pickup snapshot as a Location.
func (b *Booking) PickupLocation() Location {
	return Location{
		Latitude:  b.PickupLatitude,
		Longitude: b.PickupLongitude,
		Address:   b.PickupAddress,
		Timestamp: b.CreatedAt,
	}
}

// BookingFilter selects bookings by participant and status set. Zero-value
// fields are ignored.
type BookingFilter struct {
	CustomerID  string
	AmbulanceID string
	Statuses    []BookingStatus
}

// Matches reports whether a booking satisfies the filter.
func (f BookingFilter) Matches(b *Booking) bool {
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	if f.AmbulanceID != "" && b.AmbulanceID != f.AmbulanceID {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// BookingEvent is published on every booking create or status change.
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	CustomerID  string        `json:"customer_id"`
	AmbulanceID string        `json:"ambulance_id"`
	Status      BookingStatus `json:"status"`
}
