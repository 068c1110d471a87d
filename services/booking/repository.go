package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// BookingRepo defines the interface for booking persistence
//
//go:generate mockgen -destination=../dispatch/mocks/mock_booking_repo.go -package=mocks github.com/arjunks/ambuconnect/services/booking BookingRepo
type BookingRepo interface {
	// Create persists a new pending booking. The server clock stamps
	// CreatedAt. Returns ErrBookingExists when the customer already has
	// an active booking with the same ambulance.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID returns a booking, ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	// ListByFilter returns bookings matching the filter, newest first.
	ListByFilter(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)
	// Transition moves a booking to a new status, guarded by the state
	// machine. Returns ErrConflict when the current status does not admit
	// the move, ErrNotFound when the booking is absent. A move to
	// completed stamps CompletedAt.
	Transition(ctx context.Context, id uuid.UUID, to models.BookingStatus) (*models.Booking, error)
}
