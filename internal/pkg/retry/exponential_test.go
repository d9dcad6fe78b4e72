package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
)

func testRetrier(t *testing.T, cfg Config) *Retrier {
	t.Helper()
	l, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return New(cfg, l)
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesConcurrentModification(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apperrors.ErrConcurrentModification
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryableSurfacesImmediately(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apperrors.ErrInsufficientFunds
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, 1, calls)
}

func TestExecute_ExhaustionSurfacesLastError(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	r := testRetrier(t, cfg)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apperrors.ErrConcurrentModification
	})

	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	assert.Equal(t, 3, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	r := testRetrier(t, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return apperrors.ErrConcurrentModification
	})
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, apperrors.ErrConcurrentModification))
}
