package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo location.LocationRepo
	gw   location.LocationGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, gw location.LocationGW) *LocationUC {
	return &LocationUC{
		repo: repo,
		gw:   gw,
	}
}

// PublishOwn publishes the caller's own live location. Ownership is
// structural: the entry is always written under the caller's identity, so no
// participant can overwrite another's feed.
func (uc *LocationUC) PublishOwn(ctx context.Context, ownerKey string, role models.ParticipantRole, loc models.Location) error {
	if ownerKey == "" {
		return errs.ErrUnauthenticated
	}
	if !role.Valid() {
		return fmt.Errorf("unknown participant role %q", role)
	}
	if err := validateCoordinates(loc); err != nil {
		return err
	}

	// Stamped server-side on every publish; a stale client clock cannot
	// make a feed entry look fresh.
	loc.Timestamp = time.Now()

	if err := uc.repo.Publish(ctx, role, ownerKey, loc); err != nil {
		return err
	}

	// Mirror onto the bus; subscribers on the Redis channel are already
	// served, so a bus failure is not fatal to the publish.
	update := models.LocationUpdate{Role: role, OwnerKey: ownerKey, Location: loc}
	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		logger.Warn("Failed to mirror location update",
			logger.String("owner", ownerKey),
			logger.Err(err))
	}

	return nil
}

// Latest gets the current live entry for a participant
func (uc *LocationUC) Latest(ctx context.Context, role models.ParticipantRole, ownerKey string) (*models.Location, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown participant role %q", role)
	}
	return uc.repo.Latest(ctx, role, ownerKey)
}

// Track opens a live subscription on a participant's location
func (uc *LocationUC) Track(ctx context.Context, role models.ParticipantRole, ownerKey string) (*location.Subscription, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown participant role %q", role)
	}
	return uc.repo.Subscribe(ctx, role, ownerKey)
}

// NearbyDrivers retrieves drivers near a location within a radius
func (uc *LocationUC) NearbyDrivers(ctx context.Context, loc models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	if err := validateCoordinates(loc); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	return uc.repo.NearbyDrivers(ctx, loc, radiusKm)
}

func validateCoordinates(loc models.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90: %w", errs.ErrInvalidLocation)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180: %w", errs.ErrInvalidLocation)
	}
	return nil
}
