package constants

// Redis key formats
const (
	// Transfer orchestrator
	KeyIdempotency = "ledger:idem:%s" // Format: ledger:idem:{idempotency_key}

	// Geofence Service
	KeyGeofenceGeo = "geofence:geo" // GeoHash set of active fence centers
)
