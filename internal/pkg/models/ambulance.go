package models

import "time"

// AmbulanceStatus represents the availability of an ambulance
type AmbulanceStatus string

const (
	AmbulanceStatusAvailable AmbulanceStatus = "available"
	AmbulanceStatusBusy      AmbulanceStatus = "busy"
	AmbulanceStatusOffline   AmbulanceStatus = "offline"
)

// Valid reports whether the status is one of the known ambulance statuses.
func (s AmbulanceStatus) Valid() bool {
	switch s {
	case AmbulanceStatusAvailable, AmbulanceStatusBusy, AmbulanceStatusOffline:
		return true
	}
	return false
}

// AmbulanceType is informational only; dispatch never filters on it.
type AmbulanceType string

const (
	AmbulanceTypeBasic    AmbulanceType = "Basic"
	AmbulanceTypeAdvanced AmbulanceType = "Advanced"
	AmbulanceTypeICU      AmbulanceType = "ICU"
)

// Ambulance represents a registered vehicle. The ID is the vehicle number
// plate, assigned at registration and never reused. Each driver account owns
// exactly one ambulance record, keyed by their email.
type Ambulance struct {
	ID          string          `json:"id" db:"id"`
	DriverEmail string          `json:"driver_email" db:"driver_email"`
	DriverName  string          `json:"driver_name" db:"driver_name"`
	Hospital    string          `json:"hospital" db:"hospital"`
	PhoneNumber string          `json:"phone_number" db:"phone_number"`
	Type        AmbulanceType   `json:"type" db:"type"`
	Status      AmbulanceStatus `json:"status" db:"status"`

	// Last-known static position, the fallback when no live feed entry
	// exists for the driver.
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`

	// Document validity windows. Informational: dispatch does not block
	// on an expired document.
	InsuranceStartDate *time.Time `json:"insurance_start_date,omitempty" db:"insurance_start_date"`
	InsuranceEndDate   *time.Time `json:"insurance_end_date,omitempty" db:"insurance_end_date"`
	PollutionEndDate   *time.Time `json:"pollution_end_date,omitempty" db:"pollution_end_date"`
}

// DocumentsValidAt reports whether the insurance and pollution windows cover
// the given instant. Callers may use this to flag expired paperwork; dispatch
// eligibility deliberately ignores it.
func (a *Ambulance) DocumentsValidAt(t time.Time) bool {
	if a.InsuranceStartDate != nil && t.Before(*a.InsuranceStartDate) {
		return false
	}
	if a.InsuranceEndDate != nil && t.After(*a.InsuranceEndDate) {
		return false
	}
	if a.PollutionEndDate != nil && t.After(*a.PollutionEndDate) {
		return false
	}
	return true
}

// AmbulanceUpdate is the event published whenever an ambulance record
// changes (profile save or status transition).
type AmbulanceUpdate struct {
	ID     string          `json:"id"`
	Status AmbulanceStatus `json:"status"`
}
