package gateway

import (
	"context"
	"fmt"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/services/fleet"
)

// FleetGW publishes registry change events to NATS
type FleetGW struct {
	natsClient *natspkg.Client
}

// NewFleetGW creates a new fleet gateway
func NewFleetGW(natsClient *natspkg.Client) fleet.FleetGW {
	return &FleetGW{natsClient: natsClient}
}

// PublishAmbulanceUpdated announces a record change to watchers
func (g *FleetGW) PublishAmbulanceUpdated(ctx context.Context, update models.AmbulanceUpdate) error {
	if err := g.natsClient.PublishJSON(constants.SubjectAmbulanceUpdated, update); err != nil {
		return fmt.Errorf("failed to publish ambulance update: %w", err)
	}
	return nil
}
