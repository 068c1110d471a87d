package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// BookingUC defines the interface for booking queries and watches. Writes go
// through the dispatch coordinator, which owns the cross-store invariants.
type BookingUC interface {
	// GetBooking returns one booking by ID.
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	// ListBookings returns bookings matching the filter, newest first.
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)
	// Watch streams the filtered booking list: once immediately, then
	// again after every matching change.
	Watch(ctx context.Context, filter models.BookingFilter) (*ListWatch, error)
}

// ListWatch is a live stream of filtered booking lists. Stop is idempotent.
type ListWatch struct {
	events chan models.BookingListEvent
	cancel func() error
	once   sync.Once
}

// NewListWatch wires a watch around an event channel and a cancel hook.
func NewListWatch(events chan models.BookingListEvent, cancel func() error) *ListWatch {
	return &ListWatch{events: events, cancel: cancel}
}

// Events returns the stream of booking list states.
func (w *ListWatch) Events() <-chan models.BookingListEvent {
	return w.events
}

// Stop ends the watch. Safe to call more than once.
func (w *ListWatch) Stop() error {
	var err error
	w.once.Do(func() {
		err = w.cancel()
	})
	return err
}
