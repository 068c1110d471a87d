package models

import "time"

// Location represents a geographical coordinate owned by a single
// participant. Live entries are overwritten on every update; no history
// is retained.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ParticipantRole identifies which side of a ride owns a live location key.
type ParticipantRole string

const (
	RoleDriver   ParticipantRole = "driver"
	RoleCustomer ParticipantRole = "customer"
)

// Valid reports whether the role is one of the two known participant roles.
func (r ParticipantRole) Valid() bool {
	return r == RoleDriver || r == RoleCustomer
}

// LocationUpdate is the event published whenever a participant's live
// location changes.
type LocationUpdate struct {
	Role     ParticipantRole `json:"role"`
	OwnerKey string          `json:"owner_key"`
	Location Location        `json:"location"`
}

// NearbyDriver is a driver surfaced by the geo index with their distance
// from the query point.
type NearbyDriver struct {
	DriverEmail string   `json:"driver_email"`
	Location    Location `json:"location"`
	DistanceKm  float64  `json:"distance_km"`
}
