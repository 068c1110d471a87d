package websocket

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/booking"
	"github.com/arjunks/ambuconnect/services/dispatch"
	"github.com/arjunks/ambuconnect/services/location"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// closeObserver drains the client side of a websocket and reports when it
// goes away. Clients never send meaningful frames on these streams.
func closeObserver(ws *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return closed
}

// TrackingHandler pushes live tracking events for one booking over a
// websocket. Either participant may connect; each receives both parties'
// positions and the completion hint.
type TrackingHandler struct {
	bookingUC  booking.BookingUC
	locationUC location.LocationUC
	dispatchUC dispatch.DispatchUC
}

// NewTrackingHandler creates a new tracking websocket handler
func NewTrackingHandler(
	bookingUC booking.BookingUC,
	locationUC location.LocationUC,
	dispatchUC dispatch.DispatchUC,
) *TrackingHandler {
	return &TrackingHandler{
		bookingUC:  bookingUC,
		locationUC: locationUC,
		dispatchUC: dispatchUC,
	}
}

// Track handles GET /ws/track/:id
func (h *TrackingHandler) Track(c echo.Context) error {
	userID, _ := middleware.CurrentUser(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	ctx := c.Request().Context()
	b, err := h.bookingUC.GetBooking(ctx, bookingID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if b.CustomerID != userID && b.AmbulanceID != userID {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	driverSub, err := h.locationUC.Track(ctx, models.RoleDriver, b.AmbulanceID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	customerSub, err := h.locationUC.Track(ctx, models.RoleCustomer, b.CustomerID)
	if err != nil {
		driverSub.Unsubscribe()
		return utils.DomainErrorResponse(c, err)
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		driverSub.Unsubscribe()
		customerSub.Unsubscribe()
		return err
	}

	logger.Info("Tracking client connected",
		logger.String("user_id", userID),
		logger.String("booking_id", bookingID.String()))

	go h.streamEvents(ws, b, driverSub, customerSub)
	return nil
}

// streamEvents forwards location updates to the client until either side
// disconnects. The reader goroutine exists only to observe the close.
func (h *TrackingHandler) streamEvents(ws *websocket.Conn, b *models.Booking, driverSub, customerSub *location.Subscription) {
	defer ws.Close()
	defer driverSub.Unsubscribe()
	defer customerSub.Unsubscribe()

	closed := closeObserver(ws)

	var driverLoc, customerLoc *models.Location
	for {
		select {
		case loc, ok := <-driverSub.Updates():
			if !ok {
				return
			}
			driverLoc = loc
		case loc, ok := <-customerSub.Updates():
			if !ok {
				return
			}
			customerLoc = loc
		case <-closed:
			logger.Info("Tracking client disconnected",
				logger.String("booking_id", b.ID.String()))
			return
		}

		if err := ws.WriteJSON(h.buildEvent(b, driverLoc, customerLoc)); err != nil {
			logger.Warn("Failed to push tracking event",
				logger.String("booking_id", b.ID.String()),
				logger.Err(err))
			return
		}
	}
}

// buildEvent assembles the tracking payload. The customer's live position
// falls back to the booking's pickup snapshot so the driver always has a
// destination to navigate to.
func (h *TrackingHandler) buildEvent(b *models.Booking, driverLoc, customerLoc *models.Location) models.TrackingEvent {
	event := models.TrackingEvent{BookingID: b.ID.String()}

	if customerLoc == nil {
		pickup := b.PickupLocation()
		customerLoc = &pickup
	}
	event.CustomerLocation = customerLoc

	if driverLoc != nil {
		event.DriverLocation = driverLoc
		event.DistanceKm = utils.DistanceKm(
			utils.GeoPointFromLocation(*driverLoc),
			utils.GeoPointFromLocation(*customerLoc),
		)
		event.CanComplete = h.dispatchUC.CheckProximity(*driverLoc, *customerLoc)
	}

	return event
}
