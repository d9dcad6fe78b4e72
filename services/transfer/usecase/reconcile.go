package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// Reconcile applies a verified processor webhook to a pending external
// settlement. Repeated webhooks for an already-settled payout are replays and
// return the settled record unchanged.
func (uc *TransferUC) Reconcile(ctx context.Context, req *models.ReconcileRequest) (*models.Transaction, error) {
	if req.ProcessorRef == "" {
		return nil, apperrors.ErrTransactionNotFound
	}

	txn, err := uc.repo.GetTransactionByProcessorRef(ctx, req.ProcessorRef)
	if err != nil {
		return nil, err
	}
	if txn.Status != models.TransactionStatusPending {
		return txn, nil
	}

	switch models.ProcessorOutcome(req.Outcome) {
	case models.ProcessorOutcomeSuccess:
		if err := uc.repo.CompleteTransaction(ctx, txn.ID); err != nil {
			if errors.Is(err, apperrors.ErrTransactionSettled) {
				return uc.repo.GetTransaction(ctx, txn.ID)
			}
			return nil, fmt.Errorf("completing settlement %s: %w", req.ProcessorRef, err)
		}
		txn.Status = models.TransactionStatusCompleted
		uc.publishEvent(constants.SubjectTransactionCompleted, txn)

	case models.ProcessorOutcomeFailed:
		if err := uc.repo.CompensateWithdrawal(ctx, txn.ID, "processor reported settlement failure"); err != nil {
			// A concurrent success webhook settled it first.
			if errors.Is(err, apperrors.ErrTransactionSettled) {
				return uc.repo.GetTransaction(ctx, txn.ID)
			}
			return nil, fmt.Errorf("compensating settlement %s: %w", req.ProcessorRef, err)
		}
		txn.Status = models.TransactionStatusFailed
		uc.publishEvent(constants.SubjectTransactionFailed, txn)

	case models.ProcessorOutcomePending:
		// Still in flight, nothing to apply.

	default:
		return nil, fmt.Errorf("unknown processor outcome %q", req.Outcome)
	}

	return txn, nil
}
