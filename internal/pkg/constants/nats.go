package constants

// NATS Subjects
const (
	// Transfer orchestrator
	SubjectTransactionCompleted = "ledger.transactions.completed"
	SubjectTransactionFailed    = "ledger.transactions.failed"

	// Geofence events
	SubjectGeofenceCreated  = "geofence.created"
	SubjectGeofenceClaimed  = "geofence.claimed"
	SubjectGeofenceReleased = "geofence.released"

	// Savings events
	SubjectSavingsCreated   = "savings.created"
	SubjectSavingsMatured   = "savings.matured"
	SubjectSavingsBroken    = "savings.broken"
	SubjectSavingsWithdrawn = "savings.withdrawn"
)
