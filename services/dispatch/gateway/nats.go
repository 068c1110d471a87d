package gateway

import (
	"context"
	"fmt"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/services/dispatch"
)

// DispatchGW publishes dispatch outcomes to NATS
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client) dispatch.DispatchGW {
	return &DispatchGW{natsClient: natsClient}
}

// PublishDispatchFailed announces an SOS request that found no eligible
// ambulance
func (g *DispatchGW) PublishDispatchFailed(ctx context.Context, event models.DispatchFailedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectDispatchFailed, event); err != nil {
		return fmt.Errorf("failed to publish dispatch failure: %w", err)
	}
	return nil
}
