package geofence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// UseCase manages conditional transfers claimable only inside a bounding
// circle. The reserved amount is debited from the owner at creation and held
// on the fence until a claim settles it or a release returns it.
type UseCase interface {
	Create(ctx context.Context, req *models.CreateGeofenceRequest) (*models.Geofence, error)
	Claim(ctx context.Context, req *models.ClaimGeofenceRequest) (*models.Geofence, error)
	Cancel(ctx context.Context, geofenceID, requesterAccountID uuid.UUID) (*models.Geofence, error)
	Get(ctx context.Context, geofenceID uuid.UUID) (*models.Geofence, error)
	Nearby(ctx context.Context, position models.GeoPosition, radiusM float64) ([]models.Geofence, error)

	// ExpireDue releases every active fence whose deadline has passed,
	// refunding the owners. Returns the number of fences released.
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// Repository is the fence store. Mutating methods pair the fence state
// transition with its balance movement and audit record in one database
// transaction.
type Repository interface {
	GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	GetGeofencesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Geofence, error)
	ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]models.Geofence, error)

	// CreateAndReserve debits the owner and inserts the fence plus its
	// audit record atomically. The owner must cover the full amount.
	CreateAndReserve(ctx context.Context, fence *models.Geofence, txn *models.Transaction) error

	// Claim settles an active fence to its recipient: credits the amount,
	// marks the fence claimed and records the settlement. A fence already
	// claimed returns ErrAlreadyClaimed; one expired, cancelled or past
	// its deadline returns ErrGeofenceNotEligible.
	Claim(ctx context.Context, fenceID uuid.UUID, txn *models.Transaction) (*models.Geofence, error)

	// Release returns the held amount to the owner and moves the fence to
	// newState (expired or cancelled). Releasing a fence already in
	// newState is a no-op so sweep reruns stay idempotent.
	Release(ctx context.Context, fenceID uuid.UUID, newState string, txn *models.Transaction) (*models.Geofence, error)
}

// GeofenceGW defines the fence manager's outbound collaborators: the redis
// geo index over active fences and the notification sink.
type GeofenceGW interface {
	PublishGeofenceEvent(subject string, event *models.GeofenceEvent) error

	// IndexFence and UnindexFence maintain the redis geo set of active
	// fence centers. Best effort: the fence table is authoritative.
	IndexFence(ctx context.Context, fence *models.Geofence) error
	UnindexFence(ctx context.Context, fenceID uuid.UUID) error

	// SearchNearby returns ids of indexed fences whose centers lie within
	// radiusM of the position.
	SearchNearby(ctx context.Context, position models.GeoPosition, radiusM float64) ([]uuid.UUID, error)
}
