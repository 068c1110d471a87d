package fleet

import (
	"context"
	"sync"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// RegistryWatch is a live stream of registry snapshots. Each emitted map is
// keyed by plate and owned by the receiver. Stop is idempotent.
type RegistryWatch struct {
	snapshots chan map[string]*models.Ambulance
	cancel    func() error
	once      sync.Once
}

// NewRegistryWatch wires a watch around a snapshot channel and a cancel hook.
func NewRegistryWatch(snapshots chan map[string]*models.Ambulance, cancel func() error) *RegistryWatch {
	return &RegistryWatch{snapshots: snapshots, cancel: cancel}
}

// Snapshots returns the stream of registry states.
func (w *RegistryWatch) Snapshots() <-chan map[string]*models.Ambulance {
	return w.snapshots
}

// Stop ends the watch. Safe to call more than once.
func (w *RegistryWatch) Stop() error {
	var err error
	w.once.Do(func() {
		err = w.cancel()
	})
	return err
}

// FleetUC defines the interface for the fleet business logic
type FleetUC interface {
	// SaveAmbulance validates and upserts a driver's vehicle record.
	SaveAmbulance(ctx context.Context, driverEmail string, ambulance *models.Ambulance) error
	// GetAmbulance returns one record by plate.
	GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error)
	// GetByDriver returns the record owned by the driver email.
	GetByDriver(ctx context.Context, driverEmail string) (*models.Ambulance, error)
	// SetStatus performs a compare-and-set status transition.
	SetStatus(ctx context.Context, id string, from, to models.AmbulanceStatus) error
	// ListAmbulances returns every registered ambulance.
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	// WatchAll streams the full registry: one snapshot map immediately,
	// then a fresh map after every change.
	WatchAll(ctx context.Context) (*RegistryWatch, error)
}
