package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/arjunks/ambuconnect/internal/pkg/errs"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "ok", map[string]string{"id": "KL-05-1234"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "KL-05-1234")
}

func TestDomainErrorResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errs.ErrUnauthenticated, http.StatusUnauthorized},
		{errs.ErrNotFound, http.StatusNotFound},
		{errs.ErrConflict, http.StatusConflict},
		{errs.ErrBookingExists, http.StatusConflict},
		{errs.ErrNoAmbulanceAvailable, http.StatusServiceUnavailable},
		{errs.ErrInvalidLocation, http.StatusBadRequest},
		{errs.ErrUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		c, rec := newTestContext()
		assert.NoError(t, DomainErrorResponse(c, tc.err))
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

func TestDomainErrorResponse_WrappedConflict(t *testing.T) {
	c, rec := newTestContext()

	wrapped := fmt.Errorf("transition booking: %w", errs.ErrConflict)
	assert.NoError(t, DomainErrorResponse(c, wrapped))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already handled")
}
