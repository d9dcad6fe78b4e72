package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	natspkg "github.com/nrattyp233/moneybuddy/internal/pkg/nats"
	"github.com/nrattyp233/moneybuddy/services/savings"
)

// SavingsGW handles savings notifications over NATS
type SavingsGW struct {
	natsClient *natspkg.Client
}

// NewSavingsGW creates a new gateway instance
func NewSavingsGW(natsClient *natspkg.Client) savings.SavingsGW {
	return &SavingsGW{natsClient: natsClient}
}

// PublishSavingsEvent publishes a lock lifecycle event. Callers treat this as
// fire-and-forget; the returned error is for logging only.
func (g *SavingsGW) PublishSavingsEvent(subject string, event *models.SavingsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal savings event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Error("Failed to publish savings event",
			logger.String("subject", subject),
			logger.String("lock_id", event.LockID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish savings event: %w", err)
	}

	return nil
}
