package usecase

import (
	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/pkg/retry"
	"github.com/nrattyp233/moneybuddy/services/ledger"
	"github.com/nrattyp233/moneybuddy/services/transfer"
)

// TransferUC implements the transfer.UseCase interface
type TransferUC struct {
	cfg          *models.Config
	repo         ledger.Repository
	gw           transfer.TransferGW
	cache        transfer.IdempotencyCache
	fees         *fee.Engine
	retrier      *retry.Retrier
	feeAccountID uuid.UUID
}

// NewTransferUC creates a new transfer orchestrator
func NewTransferUC(
	cfg *models.Config,
	repo ledger.Repository,
	gw transfer.TransferGW,
	cache transfer.IdempotencyCache,
	fees *fee.Engine,
) (*TransferUC, error) {
	feeAccountID, err := uuid.Parse(cfg.Ledger.FeeAccountID)
	if err != nil {
		return nil, err
	}

	return &TransferUC{
		cfg:          cfg,
		repo:         repo,
		gw:           gw,
		cache:        cache,
		fees:         fees,
		retrier:      retry.NewWithDefaults(logger.GetGlobalLogger()),
		feeAccountID: feeAccountID,
	}, nil
}
