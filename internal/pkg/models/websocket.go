package models

// WebSocketClient holds the authenticated identity of a websocket peer.
type WebSocketClient struct {
	UserID string
	Role   string
}

// TrackingEvent is pushed to tracking websocket clients whenever either
// party's live location changes.
type TrackingEvent struct {
	BookingID        string    `json:"booking_id"`
	DriverLocation   *Location `json:"driver_location,omitempty"`
	CustomerLocation *Location `json:"customer_location,omitempty"`
	DistanceKm       float64   `json:"distance_km"`
	// CanComplete licenses the driver UI to offer ride completion; the
	// server never completes a ride on its own.
	CanComplete bool `json:"can_complete"`
}

// BookingListEvent is pushed to booking-watch websocket clients whenever the
// filtered booking list changes.
type BookingListEvent struct {
	Bookings []Booking `json:"bookings"`
}
