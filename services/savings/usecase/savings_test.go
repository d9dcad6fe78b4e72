package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/services/savings/mocks"
)

var (
	ownerID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	feeAcctID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			Currency: "USD",
		},
		Ledger: models.LedgerConfig{
			FeeAccountID: feeAcctID.String(),
		},
	}
}

type testDeps struct {
	repo *mocks.MockRepository
	gw   *mocks.MockSavingsGW
	uc   *SavingsUC
}

func newTestUC(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	gw := mocks.NewMockSavingsGW(ctrl)

	uc, err := NewSavingsUC(testConfig(), repo, gw, fee.NewEngine(models.PricingConfig{}))
	require.NoError(t, err)

	return &testDeps{repo: repo, gw: gw, uc: uc}
}

// activeLock is 30 days into a 3-month term at the 200 bps rate.
func activeLock() *models.SavingsLock {
	lockedAt := time.Now().Add(-30 * 24 * time.Hour)
	return &models.SavingsLock{
		ID:             uuid.New(),
		OwnerAccountID: ownerID,
		Principal:      100000,
		Currency:       "USD",
		RateBps:        200,
		TermMonths:     3,
		State:          models.SavingsStateActive,
		LockedAt:       lockedAt,
		UnlocksAt:      lockedAt.AddDate(0, 3, 0),
	}
}

// maturedLock finished its 3-month term yesterday.
func maturedLock() *models.SavingsLock {
	lock := activeLock()
	lock.LockedAt = time.Now().AddDate(0, -3, -1)
	lock.UnlocksAt = lock.LockedAt.AddDate(0, 3, 0)
	return lock
}

func TestCreate_LocksPrincipalAtTermRate(t *testing.T) {
	d := newTestUC(t)

	var recorded *models.Transaction
	d.repo.EXPECT().CreateLock(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lock *models.SavingsLock, txn *models.Transaction) error {
			recorded = txn
			return nil
		})
	d.gw.EXPECT().PublishSavingsEvent("savings.created", gomock.Any()).Return(nil)

	lock, err := d.uc.Create(context.Background(), &models.CreateSavingsLockRequest{
		OwnerAccountID: ownerID,
		Amount:         100000,
		TermMonths:     6,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(250), lock.RateBps)
	assert.Equal(t, models.SavingsStateActive, lock.State)
	assert.WithinDuration(t, lock.LockedAt.AddDate(0, 6, 0), lock.UnlocksAt, time.Second)
	assert.Equal(t, int64(100000), recorded.Amount)
	assert.Equal(t, "locked", recorded.Detail.Savings.Event)
}

func TestCreate_UnsupportedTerm(t *testing.T) {
	d := newTestUC(t)

	_, err := d.uc.Create(context.Background(), &models.CreateSavingsLockRequest{
		OwnerAccountID: ownerID,
		Amount:         100000,
		TermMonths:     5,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedLockTerm)
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	d := newTestUC(t)

	_, err := d.uc.Create(context.Background(), &models.CreateSavingsLockRequest{
		OwnerAccountID: ownerID,
		Amount:         0,
		TermMonths:     3,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestBreak_ChargesPenaltyOnPrincipal(t *testing.T) {
	d := newTestUC(t)
	lock := activeLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	// 30 days of accrual on 100000 at 200 bps is 164, so the owner gets
	// back 100164 minus the 5000 penalty on the original principal.
	var recorded *models.Transaction
	d.repo.EXPECT().BreakLock(gomock.Any(), lock.ID, int64(95164), int64(5000), feeAcctID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, _ int64, _ uuid.UUID, txn *models.Transaction) (*models.SavingsLock, error) {
			recorded = txn
			broken := *lock
			broken.State = models.SavingsStateBrokenEarly
			return &broken, nil
		})
	d.gw.EXPECT().PublishSavingsEvent("savings.broken", gomock.Any()).
		DoAndReturn(func(_ string, event *models.SavingsEvent) error {
			assert.Equal(t, int64(5000), event.Penalty)
			return nil
		})

	broken, err := d.uc.Break(context.Background(), lock.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, models.SavingsStateBrokenEarly, broken.State)
	assert.Equal(t, int64(95164), recorded.Amount)
	assert.Equal(t, int64(5000), recorded.Fee)
	assert.Equal(t, "broken_early", recorded.Detail.Savings.Event)
}

func TestBreak_OwnerMismatch(t *testing.T) {
	d := newTestUC(t)
	lock := activeLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	_, err := d.uc.Break(context.Background(), lock.ID, feeAcctID)
	assert.ErrorIs(t, err, apperrors.ErrLockNotFound)
}

func TestBreak_AfterMaturityRejected(t *testing.T) {
	d := newTestUC(t)
	lock := maturedLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	_, err := d.uc.Break(context.Background(), lock.ID, ownerID)
	assert.ErrorIs(t, err, apperrors.ErrLockAlreadyResolved)
}

func TestWithdraw_PaysFullProjectedInterest(t *testing.T) {
	d := newTestUC(t)
	lock := maturedLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	// 100000 at 200 bps over 3 months projects 500 interest.
	d.repo.EXPECT().WithdrawMatured(gomock.Any(), lock.ID, int64(100500), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int64, txn *models.Transaction) (*models.SavingsLock, error) {
			assert.Equal(t, int64(100500), txn.Amount)
			assert.Equal(t, "withdrawn", txn.Detail.Savings.Event)
			withdrawn := *lock
			withdrawn.State = models.SavingsStateWithdrawn
			return &withdrawn, nil
		})
	d.gw.EXPECT().PublishSavingsEvent("savings.withdrawn", gomock.Any()).
		DoAndReturn(func(_ string, event *models.SavingsEvent) error {
			assert.Equal(t, int64(500), event.Interest)
			return nil
		})

	withdrawn, err := d.uc.Withdraw(context.Background(), lock.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, models.SavingsStateWithdrawn, withdrawn.State)
}

func TestWithdraw_BeforeMaturityRejected(t *testing.T) {
	d := newTestUC(t)
	lock := activeLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)
	d.repo.EXPECT().WithdrawMatured(gomock.Any(), lock.ID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrLockNotMatured)

	_, err := d.uc.Withdraw(context.Background(), lock.ID, ownerID)
	assert.ErrorIs(t, err, apperrors.ErrLockNotMatured)
}

func TestWithdraw_OwnerMismatch(t *testing.T) {
	d := newTestUC(t)
	lock := maturedLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	_, err := d.uc.Withdraw(context.Background(), lock.ID, feeAcctID)
	assert.ErrorIs(t, err, apperrors.ErrLockNotFound)
}

func TestGet_ReportsMaturityBeforeSweep(t *testing.T) {
	d := newTestUC(t)
	lock := maturedLock()

	d.repo.EXPECT().GetLock(gomock.Any(), lock.ID).Return(lock, nil)

	got, err := d.uc.Get(context.Background(), lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SavingsStateMatured, got.State)
}

func TestSweepMatured_CountsOnlyFlippedLocks(t *testing.T) {
	d := newTestUC(t)
	now := time.Now()

	first := maturedLock()
	second := maturedLock()
	second.ID = uuid.New()

	d.repo.EXPECT().ListMaturedActive(gomock.Any(), now, maturityBatchSize).
		Return([]models.SavingsLock{*first, *second}, nil)
	d.repo.EXPECT().MarkMatured(gomock.Any(), first.ID, now).Return(true, nil)
	// Already flipped by a concurrent sweep.
	d.repo.EXPECT().MarkMatured(gomock.Any(), second.ID, now).Return(false, nil)
	d.gw.EXPECT().PublishSavingsEvent("savings.matured", gomock.Any()).Return(nil)

	count, err := d.uc.SweepMatured(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
