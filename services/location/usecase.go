package location

import (
	"context"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// PublishOwn publishes the caller's own live location. Each
	// participant may only write under their own key.
	PublishOwn(ctx context.Context, ownerKey string, role models.ParticipantRole, loc models.Location) error
	Latest(ctx context.Context, role models.ParticipantRole, ownerKey string) (*models.Location, error)
	Track(ctx context.Context, role models.ParticipantRole, ownerKey string) (*Subscription, error)
	NearbyDrivers(ctx context.Context, loc models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
