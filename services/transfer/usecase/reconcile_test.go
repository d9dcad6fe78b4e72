package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

func pendingWithdrawal(ref string) *models.Transaction {
	return &models.Transaction{
		ID:           uuid.New(),
		AccountID:    senderID,
		Type:         models.TransactionTypeWithdrawal,
		Amount:       2500,
		Currency:     "USD",
		Status:       models.TransactionStatusPending,
		ProcessorRef: ref,
	}
}

func TestReconcile_SuccessCompletesSettlement(t *testing.T) {
	d := newTestUC(t)

	txn := pendingWithdrawal("po_abc")
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_abc").Return(txn, nil)
	d.repo.EXPECT().CompleteTransaction(gomock.Any(), txn.ID).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	got, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_abc",
		Outcome:      string(models.ProcessorOutcomeSuccess),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, got.Status)
}

func TestReconcile_FailureCompensates(t *testing.T) {
	d := newTestUC(t)

	txn := pendingWithdrawal("po_def")
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_def").Return(txn, nil)
	d.repo.EXPECT().CompensateWithdrawal(gomock.Any(), txn.ID, gomock.Any()).Return(nil)
	d.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	got, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_def",
		Outcome:      string(models.ProcessorOutcomeFailed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusFailed, got.Status)
}

func TestReconcile_FailureAfterSettlementReturnsSettled(t *testing.T) {
	d := newTestUC(t)

	txn := pendingWithdrawal("po_race")
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_race").Return(txn, nil)

	// The success webhook landed between the read and the compensation;
	// the debit stands and no failed event is published.
	d.repo.EXPECT().CompensateWithdrawal(gomock.Any(), txn.ID, gomock.Any()).
		Return(apperrors.ErrTransactionSettled)
	settled := pendingWithdrawal("po_race")
	settled.ID = txn.ID
	settled.Status = models.TransactionStatusCompleted
	d.repo.EXPECT().GetTransaction(gomock.Any(), txn.ID).Return(settled, nil)

	got, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_race",
		Outcome:      string(models.ProcessorOutcomeFailed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, got.Status)
}

func TestReconcile_ReplayOfSettledPayoutIsNoop(t *testing.T) {
	d := newTestUC(t)

	txn := pendingWithdrawal("po_ghi")
	txn.Status = models.TransactionStatusCompleted
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_ghi").Return(txn, nil)

	// A repeated webhook must not touch the ledger again.
	got, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_ghi",
		Outcome:      string(models.ProcessorOutcomeFailed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, got.Status)
}

func TestReconcile_PendingOutcomeLeavesPending(t *testing.T) {
	d := newTestUC(t)

	txn := pendingWithdrawal("po_jkl")
	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_jkl").Return(txn, nil)

	got, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_jkl",
		Outcome:      string(models.ProcessorOutcomePending),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, got.Status)
}

func TestReconcile_UnknownRef(t *testing.T) {
	d := newTestUC(t)

	d.repo.EXPECT().GetTransactionByProcessorRef(gomock.Any(), "po_missing").
		Return(nil, apperrors.ErrTransactionNotFound)

	_, err := d.uc.Reconcile(context.Background(), &models.ReconcileRequest{
		ProcessorRef: "po_missing",
		Outcome:      string(models.ProcessorOutcomeSuccess),
	})
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}
