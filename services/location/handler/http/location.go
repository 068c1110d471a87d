package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/location"
)

// LocationHandler handles HTTP requests for the live location feed
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// UpdateLocation handles PUT /location: a participant publishing their own
// live position.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, role := middleware.CurrentUser(c)

	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err := h.locationUC.PublishOwn(c.Request().Context(), userID, models.ParticipantRole(role), loc)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// NearbyDrivers handles GET /drivers/nearby?lat=&lng=&radius_km=
func (h *LocationHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lat")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lng")
	}

	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km")
		}
	}

	drivers, err := h.locationUC.NearbyDrivers(c.Request().Context(), models.Location{
		Latitude:  lat,
		Longitude: lng,
	}, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", drivers)
}
