package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to accepted", BookingStatusPending, BookingStatusAccepted, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"accepted to completed", BookingStatusAccepted, BookingStatusCompleted, true},
		{"accepted to cancelled", BookingStatusAccepted, BookingStatusCancelled, true},
		{"accepted to rejected", BookingStatusAccepted, BookingStatusRejected, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusAccepted, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusAccepted, false},
		{"no self loop", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusAccepted.Terminal())
	assert.True(t, BookingStatusRejected.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
}

func TestBookingFilterMatches(t *testing.T) {
	b := &Booking{
		CustomerID:  "customer@example.com",
		AmbulanceID: "driver@example.com",
		Status:      BookingStatusPending,
	}

	assert.True(t, BookingFilter{}.Matches(b))
	assert.True(t, BookingFilter{CustomerID: "customer@example.com"}.Matches(b))
	assert.False(t, BookingFilter{CustomerID: "other@example.com"}.Matches(b))
	assert.True(t, BookingFilter{AmbulanceID: "driver@example.com", Statuses: ActiveStatuses}.Matches(b))
	assert.False(t, BookingFilter{Statuses: []BookingStatus{BookingStatusCompleted}}.Matches(b))
}
