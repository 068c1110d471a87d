package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/booking"
)

// uniqueViolation is the Postgres error code raised by the partial unique
// index on active (customer_id, ambulance_id) pairs.
const uniqueViolation = "23505"

// BookingRepo persists bookings in Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingRepository(cfg *models.Config, db *sqlx.DB) booking.BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create persists a new pending booking. The check below gives a friendly
// error for the common duplicate case; the partial unique index on active
// pairs is what actually closes the race between two concurrent creates.
// The booking ID and CreatedAt are assigned here.
func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	var exists bool
	checkQuery := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE customer_id = $1 AND ambulance_id = $2
			AND status IN ('pending', 'accepted')
		)
	`
	if err := r.db.QueryRowContext(ctx, checkQuery, b.CustomerID, b.AmbulanceID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check active bookings: %w", err)
	}
	if exists {
		return fmt.Errorf("customer %s and ambulance %s: %w", b.CustomerID, b.AmbulanceID, errs.ErrBookingExists)
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Status = models.BookingStatusPending

	query := `
		INSERT INTO bookings (
			id, customer_id, ambulance_id, status, dispatched,
			pickup_latitude, pickup_longitude, pickup_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		b.ID,
		b.CustomerID,
		b.AmbulanceID,
		b.Status,
		b.Dispatched,
		b.PickupLatitude,
		b.PickupLongitude,
		b.PickupAddress,
	).Scan(&b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("customer %s and ambulance %s: %w", b.CustomerID, b.AmbulanceID, errs.ErrBookingExists)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, customer_id, ambulance_id, status, dispatched,
			pickup_latitude, pickup_longitude, pickup_address,
			created_at, completed_at
		FROM bookings
		WHERE id = $1
	`

	b := &models.Booking{}
	err := r.db.GetContext(ctx, b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// ListByFilter retrieves bookings matching the filter, newest first
func (r *BookingRepo) ListByFilter(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	query := `
		SELECT id, customer_id, ambulance_id, status, dispatched,
			pickup_latitude, pickup_longitude, pickup_address,
			created_at, completed_at
		FROM bookings
	`

	var conditions []string
	var args []interface{}

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.AmbulanceID != "" {
		args = append(args, filter.AmbulanceID)
		conditions = append(conditions, fmt.Sprintf("ambulance_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			args = append(args, s)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// Transition moves a booking to a new status. The update is conditional on
// the current status admitting the move, so concurrent resolvers of the same
// booking cannot both win.
func (r *BookingRepo) Transition(ctx context.Context, id uuid.UUID, to models.BookingStatus) (*models.Booking, error) {
	fromAllowed := transitionSources(to)
	if len(fromAllowed) == 0 {
		return nil, fmt.Errorf("no status admits a move to %s: %w", to, errs.ErrConflict)
	}

	var query string
	if to == models.BookingStatusCompleted {
		query = `
			UPDATE bookings
			SET status = $1, completed_at = now()
			WHERE id = $2 AND status = ANY($3)
		`
	} else {
		query = `
			UPDATE bookings
			SET status = $1
			WHERE id = $2 AND status = ANY($3)
		`
	}

	result, err := r.db.ExecContext(ctx, query, to, id, statusArray(fromAllowed))
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows > 0 {
		return r.GetByID(ctx, id)
	}

	// Zero rows means the booking is missing or already resolved.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("booking %s is %s, cannot move to %s: %w", id, current.Status, to, errs.ErrConflict)
}

// transitionSources returns the statuses from which the state machine admits
// a move to the target status.
func transitionSources(to models.BookingStatus) []models.BookingStatus {
	var sources []models.BookingStatus
	for _, from := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusAccepted,
	} {
		if models.CanTransition(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

// statusArray renders a status slice as a Postgres text array literal.
func statusArray(statuses []models.BookingStatus) string {
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}
	return "{" + strings.Join(strs, ",") + "}"
}
