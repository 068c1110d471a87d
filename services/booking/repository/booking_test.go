package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/booking/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var bookingColumns = []string{
	"id", "customer_id", "ambulance_id", "status", "dispatched",
	"pickup_latitude", "pickup_longitude", "pickup_address",
	"created_at", "completed_at",
}

func TestCreate_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := &models.Booking{
		CustomerID:      "customer@example.com",
		AmbulanceID:     "driver@example.com",
		PickupLatitude:  9.5916,
		PickupLongitude: 76.5222,
		PickupAddress:   "Kottayam",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(b.CustomerID, b.AmbulanceID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(sqlmock.AnyArg(), b.CustomerID, b.AmbulanceID, models.BookingStatusPending, b.Dispatched,
			b.PickupLatitude, b.PickupLongitude, b.PickupAddress).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.False(t, b.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ActivePairExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := &models.Booking{
		CustomerID:  "customer@example.com",
		AmbulanceID: "driver@example.com",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(b.CustomerID, b.AmbulanceID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.Create(context.Background(), b)
	assert.True(t, errors.Is(err, errs.ErrBookingExists))
}

func TestCreate_UniqueViolationMapsToBookingExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	b := &models.Booking{
		CustomerID:  "customer@example.com",
		AmbulanceID: "driver@example.com",
	}

	// A concurrent create can slip past the existence check; the partial
	// unique index then rejects the insert.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(b.CustomerID, b.AmbulanceID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_pair"})

	err := repo.Create(context.Background(), b)
	assert.True(t, errors.Is(err, errs.ErrBookingExists))
}

func TestGetByID_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()
	rows := sqlmock.NewRows(bookingColumns).AddRow(
		id, "customer@example.com", "driver@example.com", "pending", false,
		9.5916, 76.5222, "Kottayam", time.Now(), nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, models.BookingStatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), id)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestListByFilter_CustomerAndStatuses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(uuid.New(), "customer@example.com", "a@example.com", "pending", false,
			9.59, 76.52, "", time.Now(), nil).
		AddRow(uuid.New(), "customer@example.com", "b@example.com", "accepted", false,
			9.60, 76.53, "", time.Now().Add(-time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WithArgs("customer@example.com", models.BookingStatusPending, models.BookingStatusAccepted).
		WillReturnRows(rows)

	got, err := repo.ListByFilter(context.Background(), models.BookingFilter{
		CustomerID: "customer@example.com",
		Statuses:   models.ActiveStatuses,
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTransition_AcceptSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusAccepted, id, "{pending}").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		id, "customer@example.com", "driver@example.com", "accepted", false,
		9.5916, 76.5222, "", time.Now(), nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.Transition(context.Background(), id, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, got.Status)
}

func TestTransition_CompleteStampsTimestamp(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()
	completed := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("completed_at = now()")).
		WithArgs(models.BookingStatusCompleted, id, "{accepted}").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		id, "customer@example.com", "driver@example.com", "completed", true,
		9.5916, 76.5222, "", time.Now().Add(-time.Hour), completed,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.Transition(context.Background(), id, models.BookingStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, completed, *got.CompletedAt, time.Second)
}

func TestTransition_AlreadyResolved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusAccepted, id, "{pending}").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		id, "customer@example.com", "driver@example.com", "rejected", false,
		9.5916, 76.5222, "", time.Now(), nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(rows)

	_, err := repo.Transition(context.Background(), id, models.BookingStatusAccepted)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestTransition_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusCancelled, id, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.Transition(context.Background(), id, models.BookingStatusCancelled)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
