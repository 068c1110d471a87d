package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// DispatchUC defines the interface for booking orchestration. All booking
// writes in the system flow through here.
type DispatchUC interface {
	// RequestBooking creates a pending booking for a chosen ambulance.
	RequestBooking(ctx context.Context, customerID, ambulanceID string, pickup models.Location) (*models.Booking, error)
	// DispatchNearest picks the nearest available ambulance, claims it,
	// and books it. Returns ErrNoAmbulanceAvailable when no candidate
	// remains.
	DispatchNearest(ctx context.Context, customerID string, pickup models.Location) (*models.Booking, error)
	// Respond resolves a pending booking as the driver: accept or reject.
	Respond(ctx context.Context, driverEmail string, bookingID uuid.UUID, accept bool) (*models.Booking, error)
	// Cancel cancels an active booking as the customer.
	Cancel(ctx context.Context, customerID string, bookingID uuid.UUID) (*models.Booking, error)
	// Complete finishes an accepted booking as the driver and releases
	// the ambulance.
	Complete(ctx context.Context, driverEmail string, bookingID uuid.UUID) (*models.Booking, error)
	// CheckProximity reports whether two positions are close enough for
	// the driver UI to offer completion.
	CheckProximity(a, b models.Location) bool
}

// DispatchGW defines the interface for publishing dispatch outcomes
//
//go:generate mockgen -destination=mocks/mock_dispatch_gw.go -package=mocks github.com/arjunks/ambuconnect/services/dispatch DispatchGW
type DispatchGW interface {
	// PublishDispatchFailed announces an SOS request that found no
	// eligible ambulance.
	PublishDispatchFailed(ctx context.Context, event models.DispatchFailedEvent) error
}
