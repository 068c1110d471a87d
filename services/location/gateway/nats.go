package gateway

import (
	"context"
	"fmt"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/location"
)

// LocationGW publishes location events to NATS
type LocationGW struct {
	natsClient *natspkg.Client
}

// NewLocationGW creates a new location gateway
func NewLocationGW(natsClient *natspkg.Client) location.LocationGW {
	return &LocationGW{natsClient: natsClient}
}

// PublishLocationUpdate mirrors a live location change onto the bus
func (g *LocationGW) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	if err := g.natsClient.PublishJSON(constants.SubjectLocationUpdate, update); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
