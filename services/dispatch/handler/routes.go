package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/services/booking"
	"github.com/arjunks/ambuconnect/services/dispatch"
	httpHandler "github.com/arjunks/ambuconnect/services/dispatch/handler/http"
	wsHandler "github.com/arjunks/ambuconnect/services/dispatch/handler/websocket"
	"github.com/arjunks/ambuconnect/services/fleet"
	"github.com/arjunks/ambuconnect/services/location"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	trackingWS   *wsHandler.TrackingHandler
	watchWS      *wsHandler.WatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	dispatchUC dispatch.DispatchUC,
	bookingUC booking.BookingUC,
	locationUC location.LocationUC,
	fleetUC fleet.FleetUC,
) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC, bookingUC),
		trackingWS:   wsHandler.NewTrackingHandler(bookingUC, locationUC, dispatchUC),
		watchWS:      wsHandler.NewWatchHandler(bookingUC, fleetUC),
	}
}

// RegisterRoutes registers all HTTP and websocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	authed := e.Group("", auth)

	// Customer booking flow
	authed.POST("/bookings", h.dispatchHTTP.CreateBooking)
	authed.POST("/sos", h.dispatchHTTP.SOS)
	authed.GET("/bookings", h.dispatchHTTP.ListCustomerBookings)
	authed.GET("/bookings/:id", h.dispatchHTTP.GetBooking)
	authed.POST("/bookings/:id/cancel", h.dispatchHTTP.Cancel)

	// Driver booking flow
	authed.GET("/driver/bookings", h.dispatchHTTP.ListDriverBookings)
	authed.POST("/bookings/:id/respond", h.dispatchHTTP.Respond)
	authed.POST("/bookings/:id/complete", h.dispatchHTTP.Complete)

	// Live streams
	authed.GET("/ws/track/:id", h.trackingWS.Track)
	authed.GET("/ws/bookings", h.watchWS.WatchBookings)
	authed.GET("/ws/ambulances", h.watchWS.WatchFleet)
}
