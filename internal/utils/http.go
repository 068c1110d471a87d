package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// DomainErrorResponse maps the shared error taxonomy onto HTTP statuses.
// Conflict is reported as "already handled" so clients re-fetch rather than
// retry.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return ErrorResponseHandler(c, http.StatusConflict, "already handled: "+err.Error())
	case errors.Is(err, errs.ErrBookingExists):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNoAmbulanceAvailable):
		// Terminal outcome: the client must escalate to a manual call,
		// never retry automatically.
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrInvalidLocation):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, errs.ErrUnavailable):
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
}
