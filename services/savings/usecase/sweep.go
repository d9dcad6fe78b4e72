package usecase

import (
	"context"
	"time"

	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

const maturityBatchSize = 100

// SweepMatured persists the matured state for every active lock whose term
// has elapsed. The sweep only flips state; funds stay on the lock until the
// owner withdraws.
func (uc *SavingsUC) SweepMatured(ctx context.Context, now time.Time) (int, error) {
	locks, err := uc.repo.ListMaturedActive(ctx, now, maturityBatchSize)
	if err != nil {
		return 0, err
	}

	matured := 0
	for i := range locks {
		lock := &locks[i]
		flipped, err := uc.repo.MarkMatured(ctx, lock.ID, now)
		if err != nil {
			logger.Error("failed to mark lock matured",
				logger.String("lock_id", lock.ID.String()),
				logger.Err(err))
			continue
		}
		if !flipped {
			continue
		}

		lock.State = models.SavingsStateMatured
		uc.publishEvent(constants.SubjectSavingsMatured, lock, 0, 0)
		matured++
	}

	if matured > 0 {
		logger.Info("savings locks matured",
			logger.Int("count", matured))
	}
	return matured, nil
}
