package usecase

import (
	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/pkg/retry"
	"github.com/nrattyp233/moneybuddy/services/savings"
)

// SavingsUC implements the savings.UseCase interface
type SavingsUC struct {
	cfg          *models.Config
	repo         savings.Repository
	gw           savings.SavingsGW
	fees         *fee.Engine
	retrier      *retry.Retrier
	feeAccountID uuid.UUID
}

// NewSavingsUC creates a new savings lock manager
func NewSavingsUC(
	cfg *models.Config,
	repo savings.Repository,
	gw savings.SavingsGW,
	fees *fee.Engine,
) (*SavingsUC, error) {
	feeAccountID, err := uuid.Parse(cfg.Ledger.FeeAccountID)
	if err != nil {
		return nil, err
	}

	return &SavingsUC{
		cfg:          cfg,
		repo:         repo,
		gw:           gw,
		fees:         fees,
		retrier:      retry.NewWithDefaults(logger.GetGlobalLogger()),
		feeAccountID: feeAccountID,
	}, nil
}
