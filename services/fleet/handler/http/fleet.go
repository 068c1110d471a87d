package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/fleet"
)

// FleetHandler handles HTTP requests for the ambulance registry
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

// SaveAmbulance handles PUT /driver/ambulance: a driver registering or
// updating their vehicle details.
func (h *FleetHandler) SaveAmbulance(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	var ambulance models.Ambulance
	if err := c.Bind(&ambulance); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.fleetUC.SaveAmbulance(c.Request().Context(), driverEmail, &ambulance); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ambulance saved", ambulance)
}

// GetOwnAmbulance handles GET /driver/ambulance
func (h *FleetHandler) GetOwnAmbulance(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	ambulance, err := h.fleetUC.GetByDriver(c.Request().Context(), driverEmail)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ambulance details", ambulance)
}

// statusRequest is the payload for a driver availability toggle.
type statusRequest struct {
	Status models.AmbulanceStatus `json:"status"`
}

// SetStatus handles PUT /driver/status: a driver flipping their own
// availability. The write is unconditional, dispatch claims use the guarded
// path instead.
func (h *FleetHandler) SetStatus(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ambulance, err := h.fleetUC.GetByDriver(c.Request().Context(), driverEmail)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.fleetUC.SetStatus(c.Request().Context(), ambulance.ID, "", req.Status); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// ListAmbulances handles GET /ambulances: the registry seen by customers.
func (h *FleetHandler) ListAmbulances(c echo.Context) error {
	ambulances, err := h.fleetUC.ListAmbulances(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Registered ambulances", ambulances)
}
