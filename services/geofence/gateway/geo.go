package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// IndexFence adds an active fence center to the redis geo set
func (g *GeofenceGW) IndexFence(ctx context.Context, fence *models.Geofence) error {
	err := g.redisClient.GeoAdd(ctx, constants.KeyGeofenceGeo,
		fence.CenterLng, fence.CenterLat, fence.ID.String())
	if err != nil {
		return fmt.Errorf("failed to index geofence: %w", err)
	}
	return nil
}

// UnindexFence removes a resolved fence from the redis geo set
func (g *GeofenceGW) UnindexFence(ctx context.Context, fenceID uuid.UUID) error {
	err := g.redisClient.GeoRemove(ctx, constants.KeyGeofenceGeo, fenceID.String())
	if err != nil {
		return fmt.Errorf("failed to unindex geofence: %w", err)
	}
	return nil
}

// SearchNearby returns ids of indexed fences whose centers lie within radiusM
// of the position
func (g *GeofenceGW) SearchNearby(ctx context.Context, position models.GeoPosition, radiusM float64) ([]uuid.UUID, error) {
	locations, err := g.redisClient.GeoRadius(ctx, constants.KeyGeofenceGeo,
		position.Longitude, position.Latitude, radiusM, "m")
	if err != nil {
		return nil, fmt.Errorf("geo radius search failed: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
