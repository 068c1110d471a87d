package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/services/location"
	httpHandler "github.com/arjunks/ambuconnect/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	authed := e.Group("", auth)
	authed.PUT("/location", h.locationHTTP.UpdateLocation)
	authed.GET("/drivers/nearby", h.locationHTTP.NearbyDrivers)
}
