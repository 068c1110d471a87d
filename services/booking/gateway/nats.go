package gateway

import (
	"context"
	"fmt"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/services/booking"
)

// BookingGW publishes booking lifecycle events to NATS
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) booking.BookingGW {
	return &BookingGW{natsClient: natsClient}
}

// PublishBookingCreated announces a new pending booking
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event models.BookingEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBookingCreated, event); err != nil {
		return fmt.Errorf("failed to publish booking created: %w", err)
	}
	return nil
}

// PublishBookingUpdated announces a status change
func (g *BookingGW) PublishBookingUpdated(ctx context.Context, event models.BookingEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBookingUpdated, event); err != nil {
		return fmt.Errorf("failed to publish booking updated: %w", err)
	}
	return nil
}
