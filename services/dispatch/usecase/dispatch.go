package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/booking"
	"github.com/arjunks/ambuconnect/services/dispatch"
	"github.com/arjunks/ambuconnect/services/fleet"
	"github.com/arjunks/ambuconnect/services/location"
)

const defaultCompletionRadiusKm = 0.1

// DispatchUC orchestrates bookings across the registry, the booking store
// and the live location feed. It holds no state of its own; every decision
// re-reads the stores so concurrent coordinators stay correct.
type DispatchUC struct {
	cfg        *models.Config
	ambulances fleet.AmbulanceRepo
	bookings   booking.BookingRepo
	locations  location.LocationRepo
	bookingGW  booking.BookingGW
	dispatchGW dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	ambulances fleet.AmbulanceRepo,
	bookings booking.BookingRepo,
	locations location.LocationRepo,
	bookingGW booking.BookingGW,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		ambulances: ambulances,
		bookings:   bookings,
		locations:  locations,
		bookingGW:  bookingGW,
		dispatchGW: dispatchGW,
	}
}

// RequestBooking creates a pending booking for an ambulance the customer
// picked themselves. The ambulance may be busy or offline; the driver still
// decides by accepting or rejecting.
func (uc *DispatchUC) RequestBooking(ctx context.Context, customerID, ambulanceID string, pickup models.Location) (*models.Booking, error) {
	if customerID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if err := validateCoordinates(pickup); err != nil {
		return nil, err
	}

	ambulance, err := uc.ambulances.GetByDriver(ctx, ambulanceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		CustomerID:      customerID,
		AmbulanceID:     ambulance.DriverEmail,
		PickupLatitude:  pickup.Latitude,
		PickupLongitude: pickup.Longitude,
		PickupAddress:   pickup.Address,
	}

	if err := uc.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.publishCreated(ctx, b)
	return b, nil
}

// DispatchNearest serves the SOS flow: rank available ambulances by distance
// from the pickup point, claim the nearest with a guarded status write, and
// book it. A lost claim race moves on to the next candidate instead of
// failing the request.
func (uc *DispatchUC) DispatchNearest(ctx context.Context, customerID string, pickup models.Location) (*models.Booking, error) {
	if customerID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if err := validateCoordinates(pickup); err != nil {
		return nil, err
	}

	candidates, err := uc.rankCandidates(ctx, pickup)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		err := uc.ambulances.SetStatus(ctx, candidate.ambulance.ID,
			models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
		if err != nil {
			if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrNotFound) {
				// Another dispatcher got there first.
				logger.Info("Candidate claimed by another dispatch, trying next",
					logger.String("ambulance_id", candidate.ambulance.ID))
				continue
			}
			return nil, err
		}

		b := &models.Booking{
			CustomerID:      customerID,
			AmbulanceID:     candidate.ambulance.DriverEmail,
			Dispatched:      true,
			PickupLatitude:  pickup.Latitude,
			PickupLongitude: pickup.Longitude,
			PickupAddress:   pickup.Address,
		}
		if err := uc.bookings.Create(ctx, b); err != nil {
			// Undo the claim so the vehicle is not stranded busy.
			uc.release(ctx, candidate.ambulance.ID)
			if errors.Is(err, errs.ErrBookingExists) {
				continue
			}
			return nil, err
		}

		uc.publishCreated(ctx, b)
		return b, nil
	}

	uc.publishDispatchFailed(ctx, customerID, pickup, len(candidates))
	return nil, errs.ErrNoAmbulanceAvailable
}

// Respond resolves a pending booking as the driver. Only the driver the
// booking references may respond, and only once; a second response of either
// kind surfaces as ErrConflict from the store.
func (uc *DispatchUC) Respond(ctx context.Context, driverEmail string, bookingID uuid.UUID, accept bool) (*models.Booking, error) {
	if driverEmail == "" {
		return nil, errs.ErrUnauthenticated
	}

	current, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.AmbulanceID != driverEmail {
		return nil, fmt.Errorf("booking %s is not assigned to this driver: %w", bookingID, errs.ErrNotFound)
	}

	to := models.BookingStatusAccepted
	if !accept {
		to = models.BookingStatusRejected
	}

	updated, err := uc.bookings.Transition(ctx, bookingID, to)
	if err != nil {
		return nil, err
	}

	// A rejected dispatch frees the vehicle for the next SOS. Manual
	// bookings never claimed it, so the vehicle may be busy on someone
	// else's ride and must keep its status.
	if !accept && current.Dispatched {
		uc.release(ctx, uc.plateForDriver(ctx, driverEmail))
	}

	uc.publishUpdated(ctx, updated)
	return updated, nil
}

// Cancel cancels an active booking as the customer who opened it.
func (uc *DispatchUC) Cancel(ctx context.Context, customerID string, bookingID uuid.UUID) (*models.Booking, error) {
	if customerID == "" {
		return nil, errs.ErrUnauthenticated
	}

	current, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.CustomerID != customerID {
		return nil, fmt.Errorf("booking %s does not belong to this customer: %w", bookingID, errs.ErrNotFound)
	}

	updated, err := uc.bookings.Transition(ctx, bookingID, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	// Only a coordinator claim is undone here; cancelling a manual booking
	// must not flip an ambulance that is busy for another reason.
	if current.Dispatched {
		uc.release(ctx, uc.plateForDriver(ctx, current.AmbulanceID))
	}
	uc.publishUpdated(ctx, updated)
	return updated, nil
}

// Complete finishes an accepted booking as the driver and releases the
// ambulance back to available.
func (uc *DispatchUC) Complete(ctx context.Context, driverEmail string, bookingID uuid.UUID) (*models.Booking, error) {
	if driverEmail == "" {
		return nil, errs.ErrUnauthenticated
	}

	current, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.AmbulanceID != driverEmail {
		return nil, fmt.Errorf("booking %s is not assigned to this driver: %w", bookingID, errs.ErrNotFound)
	}

	updated, err := uc.bookings.Transition(ctx, bookingID, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	uc.release(ctx, uc.plateForDriver(ctx, driverEmail))
	uc.publishUpdated(ctx, updated)
	return updated, nil
}

// CheckProximity reports whether the separation is strictly inside the
// completion radius. Equality does not qualify.
func (uc *DispatchUC) CheckProximity(a, b models.Location) bool {
	radius := uc.cfg.Dispatch.CompletionRadiusKm
	if radius <= 0 {
		radius = defaultCompletionRadiusKm
	}
	return utils.DistanceKm(utils.GeoPointFromLocation(a), utils.GeoPointFromLocation(b)) < radius
}

// candidate pairs an available ambulance with its distance from the pickup.
type candidate struct {
	ambulance *models.Ambulance
	distance  float64
}

// rankCandidates lists available ambulances ordered by distance, nearest
// first. Only vehicles with a live feed entry qualify; the static
// registration position is a display fallback, never a dispatch input. Ties
// keep first-seen order because sorting is stable and the comparison is
// strict.
func (uc *DispatchUC) rankCandidates(ctx context.Context, pickup models.Location) ([]candidate, error) {
	ambulances, err := uc.ambulances.List(ctx)
	if err != nil {
		return nil, err
	}

	pickupPoint := utils.GeoPointFromLocation(pickup)
	candidates := make([]candidate, 0, len(ambulances))
	for _, a := range ambulances {
		if a.Status != models.AmbulanceStatusAvailable {
			continue
		}

		live, err := uc.locations.Latest(ctx, models.RoleDriver, a.DriverEmail)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				logger.Warn("Live location lookup failed, skipping candidate",
					logger.String("driver", a.DriverEmail),
					logger.Err(err))
			}
			continue
		}

		candidates = append(candidates, candidate{
			ambulance: a,
			distance:  utils.DistanceKm(pickupPoint, utils.GeoPointFromLocation(*live)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	return candidates, nil
}

// plateForDriver resolves the vehicle plate a release should target. An
// empty return means the lookup failed and the release is skipped.
func (uc *DispatchUC) plateForDriver(ctx context.Context, driverEmail string) string {
	a, err := uc.ambulances.GetByDriver(ctx, driverEmail)
	if err != nil {
		logger.Warn("Could not resolve ambulance for driver",
			logger.String("driver", driverEmail),
			logger.Err(err))
		return ""
	}
	return a.ID
}

// release returns a claimed vehicle to available. Best effort: the driver
// can always correct their own status, so a failed release only costs a
// manual toggle.
func (uc *DispatchUC) release(ctx context.Context, ambulanceID string) {
	if ambulanceID == "" {
		return
	}
	err := uc.ambulances.SetStatus(ctx, ambulanceID, models.AmbulanceStatusBusy, models.AmbulanceStatusAvailable)
	if err != nil && !errors.Is(err, errs.ErrConflict) {
		logger.Warn("Failed to release ambulance",
			logger.String("ambulance_id", ambulanceID),
			logger.Err(err))
	}
}

func (uc *DispatchUC) publishCreated(ctx context.Context, b *models.Booking) {
	err := uc.bookingGW.PublishBookingCreated(ctx, models.BookingEvent{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		AmbulanceID: b.AmbulanceID,
		Status:      b.Status,
	})
	if err != nil {
		logger.Warn("Failed to publish booking created",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
	}
}

func (uc *DispatchUC) publishUpdated(ctx context.Context, b *models.Booking) {
	err := uc.bookingGW.PublishBookingUpdated(ctx, models.BookingEvent{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		AmbulanceID: b.AmbulanceID,
		Status:      b.Status,
	})
	if err != nil {
		logger.Warn("Failed to publish booking updated",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
	}
}

func (uc *DispatchUC) publishDispatchFailed(ctx context.Context, customerID string, pickup models.Location, candidates int) {
	err := uc.dispatchGW.PublishDispatchFailed(ctx, models.DispatchFailedEvent{
		CustomerID: customerID,
		Pickup:     pickup,
		Candidates: candidates,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.Warn("Failed to publish dispatch failure",
			logger.String("customer_id", customerID),
			logger.Err(err))
	}
}

func validateCoordinates(loc models.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("latitude %f, longitude %f: %w", loc.Latitude, loc.Longitude, errs.ErrInvalidLocation)
	}
	return nil
}
