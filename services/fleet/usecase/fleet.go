package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	natsio "github.com/nats-io/nats.go"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/services/fleet"
)

// FleetUC implements the fleet business logic
type FleetUC struct {
	cfg        *models.Config
	repo       fleet.AmbulanceRepo
	gw         fleet.FleetGW
	natsClient *natspkg.Client
}

// NewFleetUC creates a new fleet usecase
func NewFleetUC(
	cfg *models.Config,
	repo fleet.AmbulanceRepo,
	gw fleet.FleetGW,
	natsClient *natspkg.Client,
) *FleetUC {
	return &FleetUC{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		natsClient: natsClient,
	}
}

// SaveAmbulance validates and upserts a driver's vehicle record
func (uc *FleetUC) SaveAmbulance(ctx context.Context, driverEmail string, ambulance *models.Ambulance) error {
	if driverEmail == "" {
		return errs.ErrUnauthenticated
	}
	if strings.TrimSpace(ambulance.ID) == "" {
		return fmt.Errorf("vehicle number is required")
	}

	// The record always belongs to the authenticated driver, regardless of
	// what the payload claims.
	ambulance.DriverEmail = driverEmail

	if ambulance.Status == "" {
		ambulance.Status = models.AmbulanceStatusOffline
	}
	if !ambulance.Status.Valid() {
		return fmt.Errorf("invalid status: %s", ambulance.Status)
	}

	// Re-registration keeps the plate but must not hijack another driver's
	// vehicle.
	existing, err := uc.repo.Get(ctx, ambulance.ID)
	if err == nil && existing.DriverEmail != driverEmail {
		return fmt.Errorf("vehicle %s belongs to another driver: %w", ambulance.ID, errs.ErrConflict)
	}

	if err := uc.repo.Save(ctx, ambulance); err != nil {
		return err
	}

	uc.publishUpdate(ctx, models.AmbulanceUpdate{ID: ambulance.ID, Status: ambulance.Status})
	return nil
}

// GetAmbulance returns one record by plate
func (uc *FleetUC) GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error) {
	return uc.repo.Get(ctx, id)
}

// GetByDriver returns the record owned by the driver email
func (uc *FleetUC) GetByDriver(ctx context.Context, driverEmail string) (*models.Ambulance, error) {
	if driverEmail == "" {
		return nil, errs.ErrUnauthenticated
	}
	return uc.repo.GetByDriver(ctx, driverEmail)
}

// SetStatus performs a compare-and-set status transition and announces the
// outcome to watchers
func (uc *FleetUC) SetStatus(ctx context.Context, id string, from, to models.AmbulanceStatus) error {
	if !to.Valid() {
		return fmt.Errorf("invalid status: %s", to)
	}
	if from != "" && !from.Valid() {
		return fmt.Errorf("invalid status: %s", from)
	}

	if err := uc.repo.SetStatus(ctx, id, from, to); err != nil {
		return err
	}

	uc.publishUpdate(ctx, models.AmbulanceUpdate{ID: id, Status: to})
	return nil
}

// ListAmbulances returns every registered ambulance
func (uc *FleetUC) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	return uc.repo.List(ctx)
}

// WatchAll streams the full registry: one snapshot immediately, then a fresh
// snapshot after every change event. Consecutive change events coalesce when
// the consumer lags.
func (uc *FleetUC) WatchAll(ctx context.Context) (*fleet.RegistryWatch, error) {
	snapshots := make(chan map[string]*models.Ambulance, 1)

	initial, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	snapshots <- initial

	sub, err := uc.natsClient.Subscribe(constants.SubjectAmbulanceUpdated, func(msg *natsio.Msg) {
		var update models.AmbulanceUpdate
		if err := json.Unmarshal(msg.Data, &update); err != nil {
			logger.Warn("Ignoring malformed ambulance update event",
				logger.Err(err))
			return
		}

		current, err := uc.snapshot(context.Background())
		if err != nil {
			logger.Error("Failed to refresh registry snapshot",
				logger.String("ambulance_id", update.ID),
				logger.Err(err))
			return
		}

		// Latest snapshot wins when the buffer is full.
		select {
		case snapshots <- current:
		default:
			select {
			case <-snapshots:
			default:
			}
			snapshots <- current
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch registry: %w", err)
	}

	return fleet.NewRegistryWatch(snapshots, func() error {
		return sub.Unsubscribe()
	}), nil
}

func (uc *FleetUC) snapshot(ctx context.Context) (map[string]*models.Ambulance, error) {
	ambulances, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	state := make(map[string]*models.Ambulance, len(ambulances))
	for _, a := range ambulances {
		state[a.ID] = a
	}
	return state, nil
}

// publishUpdate is best effort: a missed event only delays watchers until the
// next change.
func (uc *FleetUC) publishUpdate(ctx context.Context, update models.AmbulanceUpdate) {
	if err := uc.gw.PublishAmbulanceUpdated(ctx, update); err != nil {
		logger.Warn("Failed to publish ambulance update",
			logger.String("ambulance_id", update.ID),
			logger.Err(err))
	}
}
