package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	"github.com/arjunks/ambuconnect/internal/pkg/models"
	"github.com/arjunks/ambuconnect/internal/utils"
	"github.com/arjunks/ambuconnect/services/booking"
	"github.com/arjunks/ambuconnect/services/dispatch"
)

// DispatchHandler handles HTTP requests for booking orchestration
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	bookingUC  booking.BookingUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, bookingUC booking.BookingUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		bookingUC:  bookingUC,
	}
}

// bookingRequest is the payload for a manual booking.
type bookingRequest struct {
	AmbulanceID string          `json:"ambulance_id"`
	Pickup      models.Location `json:"pickup"`
}

// CreateBooking handles POST /bookings: the customer picked an ambulance
// from the list themselves.
func (h *DispatchHandler) CreateBooking(c echo.Context) error {
	customerID, _ := middleware.CurrentUser(c)

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.AmbulanceID == "" {
		return utils.BadRequestResponse(c, "ambulance_id is required")
	}

	b, err := h.dispatchUC.RequestBooking(c.Request().Context(), customerID, req.AmbulanceID, req.Pickup)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", b)
}

// sosRequest is the payload for an SOS dispatch.
type sosRequest struct {
	Pickup models.Location `json:"pickup"`
}

// SOS handles POST /sos: find, claim and book the nearest available
// ambulance in one call.
func (h *DispatchHandler) SOS(c echo.Context) error {
	customerID, _ := middleware.CurrentUser(c)

	var req sosRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	b, err := h.dispatchUC.DispatchNearest(c.Request().Context(), customerID, req.Pickup)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ambulance dispatched", b)
}

// ListCustomerBookings handles GET /bookings: the caller's own bookings,
// newest first. ?active=true narrows to unresolved ones.
func (h *DispatchHandler) ListCustomerBookings(c echo.Context) error {
	customerID, _ := middleware.CurrentUser(c)

	filter := models.BookingFilter{CustomerID: customerID}
	if c.QueryParam("active") == "true" {
		filter.Statuses = models.ActiveStatuses
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings", bookings)
}

// ListDriverBookings handles GET /driver/bookings: requests addressed to
// the calling driver.
func (h *DispatchHandler) ListDriverBookings(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	filter := models.BookingFilter{AmbulanceID: driverEmail}
	if c.QueryParam("active") == "true" {
		filter.Statuses = models.ActiveStatuses
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings", bookings)
}

// respondRequest is the payload for a driver decision.
type respondRequest struct {
	Accept bool `json:"accept"`
}

// Respond handles POST /bookings/:id/respond
func (h *DispatchHandler) Respond(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	b, err := h.dispatchUC.Respond(c.Request().Context(), driverEmail, id, req.Accept)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated", b)
}

// Cancel handles POST /bookings/:id/cancel
func (h *DispatchHandler) Cancel(c echo.Context) error {
	customerID, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.dispatchUC.Cancel(c.Request().Context(), customerID, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", b)
}

// Complete handles POST /bookings/:id/complete
func (h *DispatchHandler) Complete(c echo.Context) error {
	driverEmail, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.dispatchUC.Complete(c.Request().Context(), driverEmail, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed", b)
}

// GetBooking handles GET /bookings/:id
func (h *DispatchHandler) GetBooking(c echo.Context) error {
	userID, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	// Only the two participants may read a booking.
	if b.CustomerID != userID && b.AmbulanceID != userID {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking details", b)
}
