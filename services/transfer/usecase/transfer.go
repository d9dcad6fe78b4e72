package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

const defaultListLimit = 50

// Deposit credits a wallet from an external funding source. Replays with the
// same idempotency key or processor reference return the original record.
func (uc *TransferUC) Deposit(ctx context.Context, req *models.DepositRequest) (*models.Transaction, error) {
	amount := models.NewMoney(req.Amount, uc.cfg.Pricing.Currency)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	idemKey := req.IdempotencyKey
	if idemKey == "" {
		idemKey = uuid.New().String()
	}

	if prior := uc.lookupReplay(ctx, idemKey); prior != nil {
		return prior, nil
	}

	// A funding method reference is unique per capture, so a repeated
	// webhook for the same capture is also a replay. This read is the fast
	// path; the partial unique index on deposit processor_ref settles
	// concurrent deliveries.
	if req.MethodRef != "" {
		if prior, err := uc.repo.GetTransactionByProcessorRef(ctx, req.MethodRef); err == nil {
			return prior, nil
		}
	}

	txn := &models.Transaction{
		AccountID:      req.AccountID,
		Type:           models.TransactionTypeDeposit,
		Amount:         amount.Amount,
		Fee:            0,
		Currency:       amount.Currency,
		Status:         models.TransactionStatusCompleted,
		ProcessorRef:   req.MethodRef,
		IdempotencyKey: idemKey,
		Detail: models.TransactionDetail{
			Kind: "processor",
			Processor: &models.ProcessorDetail{
				Method: "deposit",
				Ref:    req.MethodRef,
			},
		},
	}

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.Deposit(ctx, txn)
	})
	if err != nil {
		// A concurrent replay may have won one of the unique indexes:
		// the idempotency key, or the capture reference when the two
		// deliveries carried different keys.
		if errors.Is(err, apperrors.ErrConcurrentModification) {
			if prior, lookupErr := uc.repo.GetTransactionByIdempotencyKey(ctx, idemKey); lookupErr == nil {
				return prior, nil
			}
			if req.MethodRef != "" {
				if prior, lookupErr := uc.repo.GetTransactionByProcessorRef(ctx, req.MethodRef); lookupErr == nil {
					return prior, nil
				}
			}
		}
		return nil, fmt.Errorf("deposit failed: %w", err)
	}

	uc.rememberReplay(ctx, idemKey, txn.ID)
	uc.publishEvent(constants.SubjectTransactionCompleted, txn)
	return txn, nil
}

// Withdraw debits a wallet toward an external destination. Instant
// withdrawals settle immediately and pay the instant rate; external
// settlements are fee-free, stay pending until the processor confirms, and
// are compensated if the payout fails.
func (uc *TransferUC) Withdraw(ctx context.Context, req *models.WithdrawRequest) (*models.Transaction, error) {
	amount := models.NewMoney(req.Amount, uc.cfg.Pricing.Currency)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	method := req.Method
	if method == "" {
		method = fee.WithdrawMethodInstant
	}
	if method != fee.WithdrawMethodInstant && method != fee.WithdrawMethodExternal {
		return nil, fmt.Errorf("unknown withdrawal method %q: %w", method, apperrors.ErrInvalidAmount)
	}

	idemKey := req.IdempotencyKey
	if idemKey == "" {
		idemKey = uuid.New().String()
	}
	if prior := uc.lookupReplay(ctx, idemKey); prior != nil {
		return prior, nil
	}

	withdrawFee, err := uc.fees.QuoteWithdrawal(amount, method)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		AccountID:      req.AccountID,
		Type:           models.TransactionTypeWithdrawal,
		Amount:         amount.Amount,
		Fee:            withdrawFee.Amount,
		Currency:       amount.Currency,
		Status:         models.TransactionStatusCompleted,
		IdempotencyKey: idemKey,
		Detail: models.TransactionDetail{
			Kind: "processor",
			Processor: &models.ProcessorDetail{
				Method: method,
			},
		},
	}
	if method == fee.WithdrawMethodExternal {
		txn.Status = models.TransactionStatusPending
		txn.ProcessorRef = "po_" + uuid.New().String()
		txn.Detail.Processor.Ref = txn.ProcessorRef
	}

	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.Withdraw(ctx, txn, uc.feeAccountID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConcurrentModification) {
			if prior, lookupErr := uc.repo.GetTransactionByIdempotencyKey(ctx, idemKey); lookupErr == nil {
				return prior, nil
			}
		}
		return nil, fmt.Errorf("withdrawal failed: %w", err)
	}
	uc.rememberReplay(ctx, idemKey, txn.ID)

	if method == fee.WithdrawMethodExternal {
		return uc.settleExternal(ctx, txn)
	}

	uc.publishEvent(constants.SubjectTransactionCompleted, txn)
	return txn, nil
}

// settleExternal hands the held funds to the processor. The debit is already
// committed, so a processor failure must be compensated, not rolled back.
func (uc *TransferUC) settleExternal(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	outcome, err := uc.gw.Payout(ctx, txn)
	if err != nil || outcome == models.ProcessorOutcomeFailed {
		reason := "processor rejected payout"
		if err != nil {
			reason = err.Error()
			logger.Warn("payout call failed, compensating withdrawal",
				logger.String("transaction_id", txn.ID.String()),
				logger.Err(err))
		}
		if compErr := uc.repo.CompensateWithdrawal(ctx, txn.ID, reason); compErr != nil {
			// A concurrent success webhook settled the payout first;
			// the debit stands and the settled record wins.
			if errors.Is(compErr, apperrors.ErrTransactionSettled) {
				return uc.repo.GetTransaction(ctx, txn.ID)
			}
			logger.Error("failed to compensate withdrawal",
				logger.String("transaction_id", txn.ID.String()),
				logger.Err(compErr))
			return nil, fmt.Errorf("compensating failed payout: %w", compErr)
		}
		txn.Status = models.TransactionStatusFailed
		uc.publishEvent(constants.SubjectTransactionFailed, txn)
		return nil, fmt.Errorf("payout %s: %w", txn.ProcessorRef, apperrors.ErrProcessorFailure)
	}

	if outcome == models.ProcessorOutcomeSuccess {
		if err := uc.repo.CompleteTransaction(ctx, txn.ID); err != nil {
			return nil, fmt.Errorf("completing payout %s: %w", txn.ProcessorRef, err)
		}
		txn.Status = models.TransactionStatusCompleted
		uc.publishEvent(constants.SubjectTransactionCompleted, txn)
	}

	// Pending stays pending until the processor webhook reconciles it.
	return txn, nil
}

// Transfer moves money between two wallets, collecting the platform fee.
func (uc *TransferUC) Transfer(ctx context.Context, req *models.TransferRequest) (*models.Transaction, error) {
	amount := models.NewMoney(req.Amount, uc.cfg.Pricing.Currency)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.ErrSelfTransferNotAllowed
	}

	idemKey := req.IdempotencyKey
	if idemKey == "" {
		idemKey = uuid.New().String()
	}
	if prior := uc.lookupReplay(ctx, idemKey); prior != nil {
		return prior, nil
	}

	recipient, err := uc.repo.GetAccount(ctx, req.ToAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, err
	}

	quote, err := uc.fees.QuoteTransfer(amount)
	if err != nil {
		return nil, err
	}

	recipientID := recipient.ID
	txn := &models.Transaction{
		AccountID:        req.FromAccountID,
		Type:             models.TransactionTypeTransfer,
		Amount:           quote.RecipientReceives.Amount,
		Fee:              quote.Fee.Amount,
		Currency:         amount.Currency,
		Status:           models.TransactionStatusCompleted,
		CounterpartID:    &recipientID,
		CounterpartEmail: recipient.Email,
		IdempotencyKey:   idemKey,
	}

	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.Transfer(ctx, txn, uc.feeAccountID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConcurrentModification) {
			if prior, lookupErr := uc.repo.GetTransactionByIdempotencyKey(ctx, idemKey); lookupErr == nil {
				return prior, nil
			}
		}
		return nil, fmt.Errorf("transfer failed: %w", err)
	}

	uc.rememberReplay(ctx, idemKey, txn.ID)
	uc.publishEvent(constants.SubjectTransactionCompleted, txn)
	return txn, nil
}

// GetBalance returns the current balance of an account.
func (uc *TransferUC) GetBalance(ctx context.Context, accountID uuid.UUID) (models.Money, error) {
	return uc.repo.GetBalance(ctx, accountID)
}

// ListTransactions returns the most recent transactions for an account.
func (uc *TransferUC) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return uc.repo.ListTransactions(ctx, accountID, limit)
}

// lookupReplay resolves an idempotency key to its original transaction, first
// through the redis fast path, then through the durable index.
func (uc *TransferUC) lookupReplay(ctx context.Context, idemKey string) *models.Transaction {
	cacheKey := fmt.Sprintf(constants.KeyIdempotency, idemKey)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		if txnID, parseErr := uuid.Parse(cached); parseErr == nil {
			if txn, getErr := uc.repo.GetTransaction(ctx, txnID); getErr == nil {
				return txn
			}
		}
	}
	if txn, err := uc.repo.GetTransactionByIdempotencyKey(ctx, idemKey); err == nil {
		return txn
	}
	return nil
}

// rememberReplay caches the idempotency key against the committed
// transaction. Best effort: the durable index remains authoritative.
func (uc *TransferUC) rememberReplay(ctx context.Context, idemKey string, txnID uuid.UUID) {
	ttl := time.Duration(uc.cfg.Pricing.IdempotencyTTLMins) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	cacheKey := fmt.Sprintf(constants.KeyIdempotency, idemKey)
	if err := uc.cache.Set(ctx, cacheKey, txnID.String(), ttl); err != nil {
		logger.Warn("failed to cache idempotency key",
			logger.String("idempotency_key", idemKey),
			logger.Err(err))
	}
}

func (uc *TransferUC) publishEvent(subject string, txn *models.Transaction) {
	event := &models.TransactionEvent{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Fee:           txn.Fee,
		Currency:      txn.Currency,
		Status:        txn.Status,
		Timestamp:     time.Now(),
	}
	if err := uc.gw.PublishTransactionEvent(subject, event); err != nil {
		logger.Warn("failed to publish transaction event",
			logger.String("subject", subject),
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}
}
