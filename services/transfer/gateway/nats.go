package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// PublishTransactionEvent publishes a settled-transaction event. Callers
// treat this as fire-and-forget; the returned error is for logging only.
func (g *TransferGW) PublishTransactionEvent(subject string, event *models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Error("Failed to publish transaction event",
			logger.String("subject", subject),
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish transaction event: %w", err)
	}

	return nil
}
