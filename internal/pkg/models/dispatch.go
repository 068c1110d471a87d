package models

import "time"

// DispatchFailedEvent is published when an SOS request exhausts every
// candidate without claiming an ambulance. Consumers alert operators so the
// caller can be dialed manually.
type DispatchFailedEvent struct {
	CustomerID string    `json:"customer_id"`
	Pickup     Location  `json:"pickup"`
	Candidates int       `json:"candidates"`
	OccurredAt time.Time `json:"occurred_at"`
}
