package location

import (
	"context"
	"sync"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

// LocationRepo defines the interface for live location data access
//
//go:generate mockgen -destination=../dispatch/mocks/mock_location_repo.go -package=mocks github.com/arjunks/ambuconnect/services/location LocationRepo
type LocationRepo interface {
	// Publish overwrites the owner's live entry and notifies subscribers.
	Publish(ctx context.Context, role models.ParticipantRole, ownerKey string, loc models.Location) error
	// Latest returns the current live entry, ErrNotFound when absent.
	Latest(ctx context.Context, role models.ParticipantRole, ownerKey string) (*models.Location, error)
	// Subscribe yields the latest entry immediately (nil when absent),
	// then every subsequent publish, until Unsubscribe.
	Subscribe(ctx context.Context, role models.ParticipantRole, ownerKey string) (*Subscription, error)
	// NearbyDrivers queries the driver geo index.
	NearbyDrivers(ctx context.Context, loc models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}

// Subscription is a live stream of one participant's location. Unsubscribe
// is idempotent; the updates channel is closed once the stream stops.
type Subscription struct {
	updates chan *models.Location
	cancel  func() error
	once    sync.Once
}

// NewSubscription wires a subscription around an update channel and a
// cancel hook.
func NewSubscription(updates chan *models.Location, cancel func() error) *Subscription {
	return &Subscription{updates: updates, cancel: cancel}
}

// Updates returns the stream of location snapshots.
func (s *Subscription) Updates() <-chan *models.Location {
	return s.updates
}

// Unsubscribe stops further notifications. Safe to call more than once.
func (s *Subscription) Unsubscribe() error {
	var err error
	s.once.Do(func() {
		err = s.cancel()
	})
	return err
}
