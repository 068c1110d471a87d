package fleet

import (
	"context"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// FleetGW defines the interface for publishing registry change events
//
//go:generate mockgen -destination=../dispatch/mocks/mock_fleet_gw.go -package=mocks github.com/arjunks/ambuconnect/services/fleet FleetGW
type FleetGW interface {
	// PublishAmbulanceUpdated announces a record change to watchers.
	PublishAmbulanceUpdated(ctx context.Context, update models.AmbulanceUpdate) error
}
