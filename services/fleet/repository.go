package fleet

import (
	"context"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// AmbulanceRepo defines the interface for ambulance persistence
//
//go:generate mockgen -destination=../dispatch/mocks/mock_ambulance_repo.go -package=mocks github.com/arjunks/ambuconnect/services/fleet AmbulanceRepo
type AmbulanceRepo interface {
	// Save upserts the full ambulance record keyed by plate.
	Save(ctx context.Context, ambulance *models.Ambulance) error
	// Get returns the record by plate, ErrNotFound when absent.
	Get(ctx context.Context, id string) (*models.Ambulance, error)
	// GetByDriver returns the record owned by the driver email.
	GetByDriver(ctx context.Context, driverEmail string) (*models.Ambulance, error)
	// SetStatus moves the record from one status to another. An empty from
	// writes unconditionally. Returns ErrConflict when the current status
	// no longer matches from, ErrNotFound when the record is absent.
	SetStatus(ctx context.Context, id string, from, to models.AmbulanceStatus) error
	// List returns every registered ambulance.
	List(ctx context.Context) ([]*models.Ambulance, error)
}
