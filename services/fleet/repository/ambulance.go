package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/fleet"
)

// AmbulanceRepo persists ambulance records in Postgres. The plate is the
// primary key; driver_email carries a unique constraint.
type AmbulanceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewAmbulanceRepository(cfg *models.Config, db *sqlx.DB) fleet.AmbulanceRepo {
	return &AmbulanceRepo{
		cfg: cfg,
		db:  db,
	}
}

// Save upserts the full ambulance record keyed by plate
func (r *AmbulanceRepo) Save(ctx context.Context, ambulance *models.Ambulance) error {
	query := `
		INSERT INTO ambulances (
			id, driver_email, driver_name, hospital, phone_number,
			type, status, latitude, longitude, last_updated,
			insurance_start_date, insurance_end_date, pollution_end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			driver_email = EXCLUDED.driver_email,
			driver_name = EXCLUDED.driver_name,
			hospital = EXCLUDED.hospital,
			phone_number = EXCLUDED.phone_number,
			type = EXCLUDED.type,
			status = EXCLUDED.status,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			last_updated = now(),
			insurance_start_date = EXCLUDED.insurance_start_date,
			insurance_end_date = EXCLUDED.insurance_end_date,
			pollution_end_date = EXCLUDED.pollution_end_date
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		ambulance.ID,
		ambulance.DriverEmail,
		ambulance.DriverName,
		ambulance.Hospital,
		ambulance.PhoneNumber,
		ambulance.Type,
		ambulance.Status,
		ambulance.Latitude,
		ambulance.Longitude,
		ambulance.InsuranceStartDate,
		ambulance.InsuranceEndDate,
		ambulance.PollutionEndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save ambulance: %w", err)
	}

	return nil
}

// Get retrieves an ambulance by plate
func (r *AmbulanceRepo) Get(ctx context.Context, id string) (*models.Ambulance, error) {
	query := `
		SELECT id, driver_email, driver_name, hospital, phone_number,
			type, status, latitude, longitude, last_updated,
			insurance_start_date, insurance_end_date, pollution_end_date
		FROM ambulances
		WHERE id = $1
	`

	ambulance := &models.Ambulance{}
	err := r.db.GetContext(ctx, ambulance, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ambulance %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ambulance: %w", err)
	}

	return ambulance, nil
}

// GetByDriver retrieves the ambulance owned by a driver email
func (r *AmbulanceRepo) GetByDriver(ctx context.Context, driverEmail string) (*models.Ambulance, error) {
	query := `
		SELECT id, driver_email, driver_name, hospital, phone_number,
			type, status, latitude, longitude, last_updated,
			insurance_start_date, insurance_end_date, pollution_end_date
		FROM ambulances
		WHERE driver_email = $1
	`

	ambulance := &models.Ambulance{}
	err := r.db.GetContext(ctx, ambulance, query, driverEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ambulance for driver %s: %w", driverEmail, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ambulance by driver: %w", err)
	}

	return ambulance, nil
}

// SetStatus performs a compare-and-set status transition. An empty from
// writes unconditionally (a driver toggling their own availability). A
// non-empty from succeeds only while the stored status still matches, which
// is what lets concurrent dispatchers claim a vehicle exactly once.
func (r *AmbulanceRepo) SetStatus(ctx context.Context, id string, from, to models.AmbulanceStatus) error {
	var result sql.Result
	var err error

	if from == "" {
		query := `UPDATE ambulances SET status = $1, last_updated = now() WHERE id = $2`
		result, err = r.db.ExecContext(ctx, query, to, id)
	} else {
		query := `UPDATE ambulances SET status = $1, last_updated = now() WHERE id = $2 AND status = $3`
		result, err = r.db.ExecContext(ctx, query, to, id, from)
	}
	if err != nil {
		return fmt.Errorf("failed to update ambulance status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Zero rows means either the plate is unknown or the guard lost a race.
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("ambulance %s is not %s: %w", id, from, errs.ErrConflict)
}

// List retrieves every registered ambulance
func (r *AmbulanceRepo) List(ctx context.Context) ([]*models.Ambulance, error) {
	query := `
		SELECT id, driver_email, driver_name, hospital, phone_number,
			type, status, latitude, longitude, last_updated,
			insurance_start_date, insurance_end_date, pollution_end_date
		FROM ambulances
		ORDER BY id
	`

	ambulances := []*models.Ambulance{}
	err := r.db.SelectContext(ctx, &ambulances, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}

	return ambulances, nil
}
