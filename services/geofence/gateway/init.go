package gateway

import (
	"github.com/nrattyp233/moneybuddy/internal/pkg/database"
	natspkg "github.com/nrattyp233/moneybuddy/internal/pkg/nats"
	"github.com/nrattyp233/moneybuddy/services/geofence"
)

// GeofenceGW handles the fence manager's outbound calls: the redis geo index
// and event notifications over NATS.
type GeofenceGW struct {
	natsClient  *natspkg.Client
	redisClient *database.RedisClient
}

// NewGeofenceGW creates a new gateway instance with NATS and redis clients
func NewGeofenceGW(natsClient *natspkg.Client, redisClient *database.RedisClient) geofence.GeofenceGW {
	return &GeofenceGW{
		natsClient:  natsClient,
		redisClient: redisClient,
	}
}
