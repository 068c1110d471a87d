package websocket

import (
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/booking"
	"github.com/arjunks/ambuconnect/services/fleet"
)

// WatchHandler pushes list updates over websockets: a participant's booking
// list, or the full ambulance registry.
type WatchHandler struct {
	bookingUC booking.BookingUC
	fleetUC   fleet.FleetUC
}

// NewWatchHandler creates a new watch websocket handler
func NewWatchHandler(bookingUC booking.BookingUC, fleetUC fleet.FleetUC) *WatchHandler {
	return &WatchHandler{
		bookingUC: bookingUC,
		fleetUC:   fleetUC,
	}
}

// WatchBookings handles GET /ws/bookings: the caller's booking list, pushed
// once on connect and again after every change. Drivers watch requests
// addressed to them, customers watch their own requests.
func (h *WatchHandler) WatchBookings(c echo.Context) error {
	userID, role := middleware.CurrentUser(c)

	filter := models.BookingFilter{}
	if role == string(models.RoleDriver) {
		filter.AmbulanceID = userID
	} else {
		filter.CustomerID = userID
	}
	if c.QueryParam("active") == "true" {
		filter.Statuses = models.ActiveStatuses
	}

	watch, err := h.bookingUC.Watch(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		watch.Stop()
		return err
	}

	go func() {
		defer ws.Close()
		defer watch.Stop()

		closed := closeObserver(ws)
		for {
			select {
			case event, ok := <-watch.Events():
				if !ok {
					return
				}
				if err := ws.WriteJSON(event); err != nil {
					return
				}
			case <-closed:
				logger.Info("Booking watch client disconnected",
					logger.String("user_id", userID))
				return
			}
		}
	}()
	return nil
}

// WatchFleet handles GET /ws/ambulances: the full registry, pushed once on
// connect and again after every record change.
func (h *WatchHandler) WatchFleet(c echo.Context) error {
	watch, err := h.fleetUC.WatchAll(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		watch.Stop()
		return err
	}

	go func() {
		defer ws.Close()
		defer watch.Stop()

		closed := closeObserver(ws)
		for {
			select {
			case state, ok := <-watch.Snapshots():
				if !ok {
					return
				}
				if err := ws.WriteJSON(state); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}()
	return nil
}
