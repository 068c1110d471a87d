package location

import (
	"context"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// LocationGW defines the interface for location gateway operations
type LocationGW interface {
	// PublishLocationUpdate mirrors a live location change onto the
	// message bus for external listeners.
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
}
