package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arjunks/ambuconnect/internal/pkg/constants"
	"github.com/arjunks/ambuconnect/internal/pkg/database"
	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/location"
)

const (
	// DefaultLocationTTL is how long a live entry survives without a
	// fresh publish. Stale drivers drop out of dispatch eligibility once
	// their entry expires.
	DefaultLocationTTL = 1 * time.Hour

	// geohash precision for the cell field, ~150 m cells
	cellPrecision = 7
)

type locationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient, ttl time.Duration) location.LocationRepo {
	if ttl <= 0 {
		ttl = DefaultLocationTTL
	}
	return &locationRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Publish overwrites the owner's live entry, refreshes the driver geo
// index and fans the update out to subscribers.
func (r *locationRepo) Publish(ctx context.Context, role models.ParticipantRole, ownerKey string, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyLocation, role, ownerKey)

	entry := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.Unix(), 10),
		constants.FieldCell:      utils.EncodeLocation(loc, cellPrecision),
	}

	if err := r.redisClient.HMSet(ctx, key, entry); err != nil {
		return fmt.Errorf("failed to store location update: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, r.ttl); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if role == models.RoleDriver {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, ownerKey); err != nil {
			return fmt.Errorf("failed to update driver geo index: %w", err)
		}
	}

	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	channel := fmt.Sprintf(constants.ChannelLocation, role, ownerKey)
	if err := r.redisClient.Publish(ctx, channel, payload); err != nil {
		return fmt.Errorf("failed to notify subscribers: %w", err)
	}

	return nil
}

// Latest gets the current live entry for a participant
func (r *locationRepo) Latest(ctx context.Context, role models.ParticipantRole, ownerKey string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyLocation, role, ownerKey)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 3 {
		return nil, fmt.Errorf("no live location for %s %s: %w", role, ownerKey, errs.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// Subscribe opens a live stream for one participant's location. The latest
// entry (nil when none exists yet) is delivered first, then every publish
// until Unsubscribe.
func (r *locationRepo) Subscribe(ctx context.Context, role models.ParticipantRole, ownerKey string) (*location.Subscription, error) {
	channel := fmt.Sprintf(constants.ChannelLocation, role, ownerKey)
	pubsub := r.redisClient.Subscribe(ctx, channel)

	// Force the SUBSCRIBE round-trip so no publish is missed between the
	// snapshot read below and the first delivered message.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to location channel: %w", err)
	}

	updates := make(chan *models.Location, 16)
	done := make(chan struct{})

	latest, err := r.Latest(ctx, role, ownerKey)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		_ = pubsub.Close()
		return nil, err
	}
	updates <- latest

	go func() {
		defer close(updates)
		for msg := range pubsub.Channel() {
			var loc models.Location
			if err := json.Unmarshal([]byte(msg.Payload), &loc); err != nil {
				logger.Warn("Dropping malformed location payload",
					logger.String("channel", channel),
					logger.Err(err))
				continue
			}
			// The consumer may have stopped reading; a parked send
			// would leak this goroutine once the buffer is full.
			select {
			case updates <- &loc:
			case <-done:
				return
			}
		}
	}()

	cancel := func() error {
		close(done)
		return pubsub.Close()
	}
	return location.NewSubscription(updates, cancel), nil
}

// NearbyDrivers queries the driver geo index around a point
func (r *locationRepo) NearbyDrivers(ctx context.Context, loc models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(results))
	for _, g := range results {
		drivers = append(drivers, models.NearbyDriver{
			DriverEmail: g.Name,
			Location: models.Location{
				Latitude:  g.Latitude,
				Longitude: g.Longitude,
			},
			DistanceKm: g.Dist,
		})
	}
	return drivers, nil
}
