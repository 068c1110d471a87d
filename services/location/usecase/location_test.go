package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/dispatch/mocks"
	"github.com/arjunks/ambuconnect/services/location/usecase"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockLocationRepo, *mocks.MockLocationGW, *usecase.LocationUC) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocationRepo(ctrl)
	gw := mocks.NewMockLocationGW(ctrl)
	uc := usecase.NewLocationUC(repo, gw)
	return ctrl, repo, gw, uc
}

func TestPublishOwn_Success(t *testing.T) {
	ctrl, repo, gw, uc := setup(t)
	defer ctrl.Finish()

	loc := models.Location{Latitude: 9.5916, Longitude: 76.5222}

	var stored models.Location
	repo.EXPECT().Publish(gomock.Any(), models.RoleDriver, "driver@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ParticipantRole, _ string, got models.Location) error {
			stored = got
			return nil
		})
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.LocationUpdate) error {
			assert.Equal(t, stored, update.Location)
			return nil
		})

	err := uc.PublishOwn(context.Background(), "driver@example.com", models.RoleDriver, loc)
	assert.NoError(t, err)
	assert.Equal(t, loc.Latitude, stored.Latitude)
	assert.Equal(t, loc.Longitude, stored.Longitude)
	assert.WithinDuration(t, time.Now(), stored.Timestamp, 2*time.Second)
}

func TestPublishOwn_OverridesClientTimestamp(t *testing.T) {
	ctrl, repo, gw, uc := setup(t)
	defer ctrl.Finish()

	// A stale client clock must not make the feed entry look old or, worse,
	// a skewed one make it look fresh later than it is.
	stale := time.Now().Add(-time.Hour)

	repo.EXPECT().Publish(gomock.Any(), models.RoleCustomer, "customer@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ParticipantRole, _ string, loc models.Location) error {
			assert.NotEqual(t, stale, loc.Timestamp)
			assert.WithinDuration(t, time.Now(), loc.Timestamp, 2*time.Second)
			return nil
		})
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.PublishOwn(context.Background(), "customer@example.com", models.RoleCustomer,
		models.Location{Latitude: 9.60, Longitude: 76.53, Timestamp: stale})
	assert.NoError(t, err)
}

func TestPublishOwn_BusFailureIsNotFatal(t *testing.T) {
	ctrl, repo, gw, uc := setup(t)
	defer ctrl.Finish()

	repo.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	err := uc.PublishOwn(context.Background(), "driver@example.com", models.RoleDriver,
		models.Location{Latitude: 9.60, Longitude: 76.53, Timestamp: time.Now()})
	assert.NoError(t, err)
}

func TestPublishOwn_NoIdentity(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.PublishOwn(context.Background(), "", models.RoleDriver,
		models.Location{Latitude: 9.60, Longitude: 76.53})
	assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
}

func TestPublishOwn_InvalidCoordinates(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.PublishOwn(context.Background(), "driver@example.com", models.RoleDriver,
		models.Location{Latitude: -120, Longitude: 0})
	assert.True(t, errors.Is(err, errs.ErrInvalidLocation))
}

func TestPublishOwn_UnknownRole(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.PublishOwn(context.Background(), "driver@example.com", "operator",
		models.Location{Latitude: 9.60, Longitude: 76.53})
	assert.Error(t, err)
}

func TestNearbyDrivers_RejectsNonPositiveRadius(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	_, err := uc.NearbyDrivers(context.Background(),
		models.Location{Latitude: 9.60, Longitude: 76.53}, 0)
	assert.Error(t, err)
}
