package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	ledgermocks "github.com/nrattyp233/moneybuddy/services/ledger/mocks"
	"github.com/nrattyp233/moneybuddy/services/transfer/mocks"
)

var (
	senderID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	recipientID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	feeAcctID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

var errCacheMiss = errors.New("cache miss")

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			Currency:           "USD",
			IdempotencyTTLMins: 60,
		},
		Ledger: models.LedgerConfig{
			FeeAccountID: feeAcctID.String(),
		},
	}
}

type testDeps struct {
	repo  *ledgermocks.MockRepository
	gw    *mocks.MockTransferGW
	cache *mocks.MockIdempotencyCache
	uc    *TransferUC
}

func newTestUC(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledgermocks.NewMockRepository(ctrl)
	gw := mocks.NewMockTransferGW(ctrl)
	cache := mocks.NewMockIdempotencyCache(ctrl)

	uc, err := NewTransferUC(testConfig(), repo, gw, cache, fee.NewEngine(models.PricingConfig{}))
	require.NoError(t, err)

	return &testDeps{repo: repo, gw: gw, cache: cache, uc: uc}
}

// expectNoReplay stubs the fast-path and durable idempotency lookups to miss.
func (d *testDeps) expectNoReplay() {
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errCacheMiss)
	d.repo.EXPECT().GetTransactionByIdempotencyKey(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrTransactionNotFound)
}

func TestTransfer_CollectsPlatformFee(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().GetAccount(gomock.Any(), recipientID).
		Return(&models.Account{ID: recipientID, Email: "jane@example.com"}, nil)

	var recorded *models.Transaction
	d.repo.EXPECT().Transfer(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			recorded = txn
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	// $50.00 transfer at the 2% rate: recipient gets 5000, fee is 100.
	txn, err := d.uc.Transfer(context.Background(), &models.TransferRequest{
		FromAccountID:  senderID,
		ToAccountID:    recipientID,
		Amount:         5000,
		IdempotencyKey: "idem-transfer-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), txn.Amount)
	assert.Equal(t, int64(100), txn.Fee)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, "jane@example.com", txn.CounterpartEmail)
	require.NotNil(t, recorded.CounterpartID)
	assert.Equal(t, recipientID, *recorded.CounterpartID)
}

func TestTransfer_SelfTransferRejected(t *testing.T) {
	d := newTestUC(t)

	_, err := d.uc.Transfer(context.Background(), &models.TransferRequest{
		FromAccountID: senderID,
		ToAccountID:   senderID,
		Amount:        5000,
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfTransferNotAllowed)
}

func TestTransfer_UnknownRecipient(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().GetAccount(gomock.Any(), recipientID).
		Return(nil, apperrors.ErrAccountNotFound)

	_, err := d.uc.Transfer(context.Background(), &models.TransferRequest{
		FromAccountID: senderID,
		ToAccountID:   recipientID,
		Amount:        5000,
	})
	assert.ErrorIs(t, err, apperrors.ErrRecipientNotFound)
}

func TestTransfer_InvalidAmount(t *testing.T) {
	d := newTestUC(t)

	for _, amount := range []int64{0, -100} {
		_, err := d.uc.Transfer(context.Background(), &models.TransferRequest{
			FromAccountID: senderID,
			ToAccountID:   recipientID,
			Amount:        amount,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	}
}

func TestDeposit_CreditsAndPublishes(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "cap_abc").
		Return(nil, apperrors.ErrTransactionNotFound)
	d.repo.EXPECT().Deposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), "ledger:idem:idem-dep-1", gomock.Any(), 60*time.Minute).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := d.uc.Deposit(context.Background(), &models.DepositRequest{
		AccountID:      senderID,
		Amount:         10000,
		MethodRef:      "cap_abc",
		IdempotencyKey: "idem-dep-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), txn.Amount)
	assert.Equal(t, int64(0), txn.Fee)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestDeposit_ReplayReturnsOriginal(t *testing.T) {
	d := newTestUC(t)

	prior := &models.Transaction{
		ID:        uuid.New(),
		AccountID: senderID,
		Type:      models.TransactionTypeDeposit,
		Amount:    10000,
		Status:    models.TransactionStatusCompleted,
	}
	d.cache.EXPECT().Get(gomock.Any(), "ledger:idem:idem-dep-1").
		Return(prior.ID.String(), nil)
	d.repo.EXPECT().GetTransaction(gomock.Any(), prior.ID).Return(prior, nil)

	// No Deposit call, no event: the replay returns the original record.
	txn, err := d.uc.Deposit(context.Background(), &models.DepositRequest{
		AccountID:      senderID,
		Amount:         10000,
		IdempotencyKey: "idem-dep-1",
	})
	require.NoError(t, err)
	assert.Equal(t, prior.ID, txn.ID)
}

func TestDeposit_ReplayViaDurableIndex(t *testing.T) {
	d := newTestUC(t)

	prior := &models.Transaction{
		ID:     uuid.New(),
		Amount: 10000,
		Status: models.TransactionStatusCompleted,
	}
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errCacheMiss)
	d.repo.EXPECT().GetTransactionByIdempotencyKey(gomock.Any(), "idem-dep-2").
		Return(prior, nil)

	txn, err := d.uc.Deposit(context.Background(), &models.DepositRequest{
		AccountID:      senderID,
		Amount:         10000,
		IdempotencyKey: "idem-dep-2",
	})
	require.NoError(t, err)
	assert.Equal(t, prior.ID, txn.ID)
}

func TestDeposit_DuplicateCaptureRefReturnsWinner(t *testing.T) {
	d := newTestUC(t)
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errCacheMiss)

	// The competing delivery carried a different idempotency key, so only
	// the capture reference collides.
	d.repo.EXPECT().GetTransactionByIdempotencyKey(gomock.Any(), "idem-dep-3").
		Return(nil, apperrors.ErrTransactionNotFound)
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "cap_77").
		Return(nil, apperrors.ErrTransactionNotFound)

	d.repo.EXPECT().Deposit(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrConcurrentModification).
		Times(4)

	d.repo.EXPECT().GetTransactionByIdempotencyKey(gomock.Any(), "idem-dep-3").
		Return(nil, apperrors.ErrTransactionNotFound)
	winner := &models.Transaction{
		ID:           uuid.New(),
		Amount:       10000,
		Status:       models.TransactionStatusCompleted,
		ProcessorRef: "cap_77",
	}
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "cap_77").
		Return(winner, nil)

	txn, err := d.uc.Deposit(context.Background(), &models.DepositRequest{
		AccountID:      senderID,
		Amount:         10000,
		MethodRef:      "cap_77",
		IdempotencyKey: "idem-dep-3",
	})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, txn.ID)
}

func TestWithdraw_InstantChargesFee(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	var recorded *models.Transaction
	d.repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			recorded = txn
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := d.uc.Withdraw(context.Background(), &models.WithdrawRequest{
		AccountID:      senderID,
		Amount:         2500,
		Method:         fee.WithdrawMethodInstant,
		IdempotencyKey: "idem-wd-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), txn.Amount)
	assert.Equal(t, int64(50), txn.Fee)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
	assert.Empty(t, recorded.ProcessorRef)
}

func TestWithdraw_ExternalSuccessCompletes(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	var txnID uuid.UUID
	d.repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			txnID = txn.ID
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.Equal(t, int64(0), txn.Fee)
			assert.NotEmpty(t, txn.ProcessorRef)
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().Payout(gomock.Any(), gomock.Any()).
		Return(models.ProcessorOutcomeSuccess, nil)
	d.repo.EXPECT().CompleteTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, txnID, id)
			return nil
		})
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := d.uc.Withdraw(context.Background(), &models.WithdrawRequest{
		AccountID:      senderID,
		Amount:         2500,
		Method:         fee.WithdrawMethodExternal,
		IdempotencyKey: "idem-wd-2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestWithdraw_ExternalFailureCompensates(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().Payout(gomock.Any(), gomock.Any()).
		Return(models.ProcessorOutcomeFailed, nil)
	d.repo.EXPECT().CompensateWithdrawal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.uc.Withdraw(context.Background(), &models.WithdrawRequest{
		AccountID:      senderID,
		Amount:         2500,
		Method:         fee.WithdrawMethodExternal,
		IdempotencyKey: "idem-wd-3",
	})
	assert.ErrorIs(t, err, apperrors.ErrProcessorFailure)
}

func TestWithdraw_ExternalFailureAfterSettlementKeepsDebit(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	var txnID uuid.UUID
	d.repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			txnID = txn.ID
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().Payout(gomock.Any(), gomock.Any()).
		Return(models.ProcessorOutcomeFailed, nil)

	// A success webhook settled the payout between the processor call and
	// the compensation, so no refund runs and the settled record wins.
	d.repo.EXPECT().CompensateWithdrawal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.ErrTransactionSettled)
	d.repo.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
			assert.Equal(t, txnID, id)
			return &models.Transaction{
				ID:     id,
				Amount: 2500,
				Status: models.TransactionStatusCompleted,
			}, nil
		})

	txn, err := d.uc.Withdraw(context.Background(), &models.WithdrawRequest{
		AccountID:      senderID,
		Amount:         2500,
		Method:         fee.WithdrawMethodExternal,
		IdempotencyKey: "idem-wd-5",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestWithdraw_ExternalPendingStaysPending(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), feeAcctID).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ uuid.UUID) error {
			txn.ID = uuid.New()
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.gw.EXPECT().Payout(gomock.Any(), gomock.Any()).
		Return(models.ProcessorOutcomePending, nil)

	txn, err := d.uc.Withdraw(context.Background(), &models.WithdrawRequest{
		AccountID:      senderID,
		Amount:         2500,
		Method:         fee.WithdrawMethodExternal,
		IdempotencyKey: "idem-wd-4",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, txn.Status)
}

func TestTransfer_ConcurrentLoserReturnsWinner(t *testing.T) {
	d := newTestUC(t)
	d.expectNoReplay()

	d.repo.EXPECT().GetAccount(gomock.Any(), recipientID).
		Return(&models.Account{ID: recipientID, Email: "jane@example.com"}, nil)

	// Every attempt loses the race; the winner's row is resolved by key.
	d.repo.EXPECT().Transfer(gomock.Any(), gomock.Any(), feeAcctID).
		Return(apperrors.ErrConcurrentModification).
		Times(4)

	winner := &models.Transaction{
		ID:     uuid.New(),
		Amount: 5000,
		Fee:    100,
		Status: models.TransactionStatusCompleted,
	}
	d.repo.EXPECT().GetTransactionByIdempotencyKey(gomock.Any(), "idem-race").
		Return(winner, nil)

	txn, err := d.uc.Transfer(context.Background(), &models.TransferRequest{
		FromAccountID:  senderID,
		ToAccountID:    recipientID,
		Amount:         5000,
		IdempotencyKey: "idem-race",
	})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, txn.ID)
}
