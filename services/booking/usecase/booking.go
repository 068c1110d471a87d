package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	natsio "github.com/nats-io/nats.go"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/services/booking"
)

// BookingUC implements booking queries and watches
type BookingUC struct {
	cfg        *models.Config
	repo       booking.BookingRepo
	natsClient *natspkg.Client
}

// NewBookingUC creates a new booking usecase
func NewBookingUC(
	cfg *models.Config,
	repo booking.BookingRepo,
	natsClient *natspkg.Client,
) *BookingUC {
	return &BookingUC{
		cfg:        cfg,
		repo:       repo,
		natsClient: natsClient,
	}
}

// GetBooking returns one booking by ID
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListBookings returns bookings matching the filter, newest first
func (uc *BookingUC) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	return uc.repo.ListByFilter(ctx, filter)
}

// Watch streams the filtered booking list. The list is re-read after every
// lifecycle event that matches the filter, so watchers see at-least-once
// refreshes rather than individual deltas.
func (uc *BookingUC) Watch(ctx context.Context, filter models.BookingFilter) (*booking.ListWatch, error) {
	events := make(chan models.BookingListEvent, 1)

	initial, err := uc.listEvent(ctx, filter)
	if err != nil {
		return nil, err
	}
	events <- initial

	refresh := func(msg *natsio.Msg) {
		var ev models.BookingEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logger.Warn("Ignoring malformed booking event",
				logger.Err(err))
			return
		}

		// Skip events for other participants.
		if filter.CustomerID != "" && ev.CustomerID != filter.CustomerID {
			return
		}
		if filter.AmbulanceID != "" && ev.AmbulanceID != filter.AmbulanceID {
			return
		}

		current, err := uc.listEvent(context.Background(), filter)
		if err != nil {
			logger.Error("Failed to refresh booking list",
				logger.String("booking_id", ev.BookingID.String()),
				logger.Err(err))
			return
		}

		// Latest list wins when the consumer lags.
		select {
		case events <- current:
		default:
			select {
			case <-events:
			default:
			}
			events <- current
		}
	}

	createdSub, err := uc.natsClient.Subscribe(constants.SubjectBookingCreated, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to watch bookings: %w", err)
	}
	updatedSub, err := uc.natsClient.Subscribe(constants.SubjectBookingUpdated, refresh)
	if err != nil {
		createdSub.Unsubscribe()
		return nil, fmt.Errorf("failed to watch bookings: %w", err)
	}

	return booking.NewListWatch(events, func() error {
		err1 := createdSub.Unsubscribe()
		err2 := updatedSub.Unsubscribe()
		if err1 != nil {
			return err1
		}
		return err2
	}), nil
}

func (uc *BookingUC) listEvent(ctx context.Context, filter models.BookingFilter) (models.BookingListEvent, error) {
	bookings, err := uc.repo.ListByFilter(ctx, filter)
	if err != nil {
		return models.BookingListEvent{}, err
	}

	event := models.BookingListEvent{Bookings: make([]models.Booking, 0, len(bookings))}
	for _, b := range bookings {
		event.Bookings = append(event.Bookings, *b)
	}
	return event, nil
}
