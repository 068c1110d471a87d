package constants

// Redis key formats
const (
	// Location feed: last-value hash per participant.
	KeyLocation = "location:%s:%s" // Format: location:{role}:{owner_key}

	// Pub/sub channel a participant's live updates are published on.
	ChannelLocation = "location.updates.%s.%s" // Format: location.updates.{role}.{owner_key}

	// GEO set of driver positions, member = driver email.
	KeyDriverGeo = "drivers:geo"
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldStatus    = "status"
	FieldCell      = "cell"
)
