package booking

import (
	"context"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// BookingGW defines the interface for publishing booking lifecycle events
//
//go:generate mockgen -destination=../dispatch/mocks/mock_booking_gw.go -package=mocks github.com/arjunks/ambuconnect/services/booking BookingGW
type BookingGW interface {
	// PublishBookingCreated announces a new pending booking.
	PublishBookingCreated(ctx context.Context, event models.BookingEvent) error
	// PublishBookingUpdated announces a status change.
	PublishBookingUpdated(ctx context.Context, event models.BookingEvent) error
}
