package usecase

import (
	"context"
	"time"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

const expireBatchSize = 100

// ExpireDue releases every active fence whose deadline has passed, refunding
// the owners. One failing fence does not stop the sweep; it is retried on the
// next run.
func (uc *GeofenceUC) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	fences, err := uc.repo.ListExpiredActive(ctx, now, expireBatchSize)
	if err != nil {
		return 0, err
	}

	released := 0
	for i := range fences {
		fence := &fences[i]
		if _, err := uc.release(ctx, fence, models.GeofenceStateExpired); err != nil {
			logger.Error("failed to expire geofence",
				logger.String("geofence_id", fence.ID.String()),
				logger.Err(err))
			continue
		}
		released++
	}

	if released > 0 {
		logger.Info("expired geofences released",
			logger.Int("count", released))
	}
	return released, nil
}
