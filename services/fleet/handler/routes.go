package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/services/fleet"
	httpHandler "github.com/arjunks/ambuconnect/services/fleet/handler/http"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
}

// NewHandler creates a new combined handler
func NewHandler(fleetUC fleet.FleetUC) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	authed := e.Group("", auth)

	// Driver self-service
	authed.PUT("/driver/ambulance", h.fleetHTTP.SaveAmbulance)
	authed.GET("/driver/ambulance", h.fleetHTTP.GetOwnAmbulance)
	authed.PUT("/driver/status", h.fleetHTTP.SetStatus)

	// Customer-facing registry
	authed.GET("/ambulances", h.fleetHTTP.ListAmbulances)
}
