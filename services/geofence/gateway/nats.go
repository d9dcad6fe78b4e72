package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// PublishGeofenceEvent publishes a fence lifecycle event. Callers treat this
// as fire-and-forget; the returned error is for logging only.
func (g *GeofenceGW) PublishGeofenceEvent(subject string, event *models.GeofenceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Error("Failed to publish geofence event",
			logger.String("subject", subject),
			logger.String("geofence_id", event.GeofenceID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish geofence event: %w", err)
	}

	return nil
}
