package gateway

import (
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	natspkg "github.com/nrattyp233/moneybuddy/internal/pkg/nats"
	"github.com/nrattyp233/moneybuddy/services/transfer"
)

// TransferGW handles the transfer orchestrator's outbound calls: the payment
// processor over HTTP and event notifications over NATS.
type TransferGW struct {
	processor  *ProcessorClient
	natsClient *natspkg.Client
}

// NewTransferGW creates a new gateway instance with the processor HTTP client
// and NATS publisher.
func NewTransferGW(natsClient *natspkg.Client, cfg models.ProcessorConfig, l *logger.ZapLogger) transfer.TransferGW {
	return &TransferGW{
		processor:  NewProcessorClient(cfg, l),
		natsClient: natsClient,
	}
}
