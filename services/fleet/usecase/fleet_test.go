package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/services/dispatch/mocks"
	"github.com/arjunks/ambuconnect/services/fleet/usecase"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockAmbulanceRepo, *mocks.MockFleetGW, *usecase.FleetUC) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAmbulanceRepo(ctrl)
	gw := mocks.NewMockFleetGW(ctrl)
	uc := usecase.NewFleetUC(&models.Config{}, repo, gw, nil)
	return ctrl, repo, gw, uc
}

func TestSaveAmbulance_NewRegistration(t *testing.T) {
	ctrl, repo, gw, uc := setup(t)
	defer ctrl.Finish()

	a := &models.Ambulance{ID: "KL-05-AX-1234", Type: models.AmbulanceTypeBasic}

	repo.EXPECT().Get(gomock.Any(), "KL-05-AX-1234").Return(nil, errs.ErrNotFound)
	repo.EXPECT().Save(gomock.Any(), a).Return(nil)
	gw.EXPECT().PublishAmbulanceUpdated(gomock.Any(), models.AmbulanceUpdate{
		ID: "KL-05-AX-1234", Status: models.AmbulanceStatusOffline,
	}).Return(nil)

	err := uc.SaveAmbulance(context.Background(), "driver@example.com", a)
	require.NoError(t, err)
	// ownership and default status come from the caller identity
	assert.Equal(t, "driver@example.com", a.DriverEmail)
	assert.Equal(t, models.AmbulanceStatusOffline, a.Status)
}

func TestSaveAmbulance_PlateOwnedByAnotherDriver(t *testing.T) {
	ctrl, repo, _, uc := setup(t)
	defer ctrl.Finish()

	a := &models.Ambulance{ID: "KL-05-AX-1234"}

	repo.EXPECT().Get(gomock.Any(), "KL-05-AX-1234").
		Return(&models.Ambulance{ID: "KL-05-AX-1234", DriverEmail: "other@example.com"}, nil)

	err := uc.SaveAmbulance(context.Background(), "driver@example.com", a)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestSaveAmbulance_NoIdentity(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.SaveAmbulance(context.Background(), "", &models.Ambulance{ID: "KL-05-AX-1234"})
	assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
}

func TestSaveAmbulance_MissingPlate(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.SaveAmbulance(context.Background(), "driver@example.com", &models.Ambulance{})
	assert.Error(t, err)
}

func TestSetStatus_PublishesUpdate(t *testing.T) {
	ctrl, repo, gw, uc := setup(t)
	defer ctrl.Finish()

	repo.EXPECT().
		SetStatus(gomock.Any(), "KL-05-AX-1234", models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy).
		Return(nil)
	gw.EXPECT().PublishAmbulanceUpdated(gomock.Any(), models.AmbulanceUpdate{
		ID: "KL-05-AX-1234", Status: models.AmbulanceStatusBusy,
	}).Return(nil)

	err := uc.SetStatus(context.Background(), "KL-05-AX-1234",
		models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
	assert.NoError(t, err)
}

func TestSetStatus_InvalidTarget(t *testing.T) {
	ctrl, _, _, uc := setup(t)
	defer ctrl.Finish()

	err := uc.SetStatus(context.Background(), "KL-05-AX-1234", "", "teleporting")
	assert.Error(t, err)
}

func TestSetStatus_LostRaceDoesNotPublish(t *testing.T) {
	ctrl, repo, _, uc := setup(t)
	defer ctrl.Finish()

	repo.EXPECT().
		SetStatus(gomock.Any(), "KL-05-AX-1234", models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy).
		Return(errs.ErrConflict)

	err := uc.SetStatus(context.Background(), "KL-05-AX-1234",
		models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}
