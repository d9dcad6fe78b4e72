package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// Create locks wallet funds for a term at the rate the term earns.
func (uc *SavingsUC) Create(ctx context.Context, req *models.CreateSavingsLockRequest) (*models.SavingsLock, error) {
	principal := models.NewMoney(req.Amount, uc.cfg.Pricing.Currency)
	if !principal.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	rate, err := uc.fees.RateForTerm(req.TermMonths)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lock := &models.SavingsLock{
		ID:             uuid.New(),
		OwnerAccountID: req.OwnerAccountID,
		Principal:      principal.Amount,
		Currency:       principal.Currency,
		RateBps:        rate,
		TermMonths:     req.TermMonths,
		State:          models.SavingsStateActive,
		LockedAt:       now,
		UnlocksAt:      now.AddDate(0, req.TermMonths, 0),
	}

	txn := &models.Transaction{
		AccountID: req.OwnerAccountID,
		Type:      models.TransactionTypeSavings,
		Amount:    principal.Amount,
		Currency:  principal.Currency,
		Status:    models.TransactionStatusCompleted,
		Detail: models.TransactionDetail{
			Kind: "savings",
			Savings: &models.SavingsDetail{
				LockID: lock.ID,
				Event:  "locked",
			},
		},
	}

	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.CreateLock(ctx, lock, txn)
	})
	if err != nil {
		return nil, fmt.Errorf("savings lock creation failed: %w", err)
	}

	uc.publishEvent(constants.SubjectSavingsCreated, lock, 0, 0)
	return lock, nil
}

// Break settles an active lock before maturity. The owner receives the value
// accrued so far minus the early-break penalty, which is charged on the
// original principal.
func (uc *SavingsUC) Break(ctx context.Context, lockID, requesterAccountID uuid.UUID) (*models.SavingsLock, error) {
	lock, err := uc.repo.GetLock(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if lock.OwnerAccountID != requesterAccountID {
		return nil, apperrors.ErrLockNotFound
	}

	now := time.Now()
	switch lock.CheckMaturity(now) {
	case models.SavingsStateActive:
		// Breakable.
	default:
		// A matured lock is withdrawn, not broken; everything else is
		// already settled.
		return nil, apperrors.ErrLockAlreadyResolved
	}

	currentValue := uc.fees.AccruedValue(lock, now)
	quote, err := uc.fees.QuoteEarlyBreak(lock.PrincipalMoney(), currentValue)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		AccountID: lock.OwnerAccountID,
		Type:      models.TransactionTypeSavings,
		Amount:    quote.NetAmount.Amount,
		Fee:       quote.Penalty.Amount,
		Currency:  lock.Currency,
		Status:    models.TransactionStatusCompleted,
		Detail: models.TransactionDetail{
			Kind: "savings",
			Savings: &models.SavingsDetail{
				LockID:  lock.ID,
				Event:   "broken_early",
				Penalty: quote.Penalty.Amount,
			},
		},
	}

	var broken *models.SavingsLock
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		broken, execErr = uc.repo.BreakLock(ctx, lock.ID,
			quote.NetAmount.Amount, quote.Penalty.Amount, uc.feeAccountID, txn)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(constants.SubjectSavingsBroken, broken, quote.Penalty.Amount, 0)
	return broken, nil
}

// Withdraw pays out a matured lock: principal plus the full projected term
// interest.
func (uc *SavingsUC) Withdraw(ctx context.Context, lockID, requesterAccountID uuid.UUID) (*models.SavingsLock, error) {
	lock, err := uc.repo.GetLock(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if lock.OwnerAccountID != requesterAccountID {
		return nil, apperrors.ErrLockNotFound
	}

	interest := uc.fees.ProjectedInterest(lock.PrincipalMoney(), lock.TermMonths, lock.RateBps)
	payout := lock.Principal + interest.Amount

	txn := &models.Transaction{
		AccountID: lock.OwnerAccountID,
		Type:      models.TransactionTypeSavings,
		Amount:    payout,
		Currency:  lock.Currency,
		Status:    models.TransactionStatusCompleted,
		Detail: models.TransactionDetail{
			Kind: "savings",
			Savings: &models.SavingsDetail{
				LockID: lock.ID,
				Event:  "withdrawn",
			},
		},
	}

	var withdrawn *models.SavingsLock
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		withdrawn, execErr = uc.repo.WithdrawMatured(ctx, lock.ID, payout, txn)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(constants.SubjectSavingsWithdrawn, withdrawn, 0, interest.Amount)
	return withdrawn, nil
}

// Get retrieves a lock by id, reporting matured for active locks whose term
// has elapsed even if the sweep has not persisted the transition yet.
func (uc *SavingsUC) Get(ctx context.Context, lockID uuid.UUID) (*models.SavingsLock, error) {
	lock, err := uc.repo.GetLock(ctx, lockID)
	if err != nil {
		return nil, err
	}
	lock.State = lock.CheckMaturity(time.Now())
	return lock, nil
}

func (uc *SavingsUC) publishEvent(subject string, lock *models.SavingsLock, penalty, interest int64) {
	event := &models.SavingsEvent{
		LockID:         lock.ID,
		OwnerAccountID: lock.OwnerAccountID,
		Principal:      lock.Principal,
		Currency:       lock.Currency,
		State:          lock.State,
		Penalty:        penalty,
		Interest:       interest,
		Timestamp:      time.Now(),
	}
	if err := uc.gw.PublishSavingsEvent(subject, event); err != nil {
		logger.Warn("failed to publish savings event",
			logger.String("subject", subject),
			logger.String("lock_id", lock.ID.String()),
			logger.Err(err))
	}
}
