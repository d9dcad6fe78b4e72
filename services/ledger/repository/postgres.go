package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/services/ledger"
)

// PostgresLedgerRepo implements the ledger.Repository interface
type PostgresLedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) ledger.Repository {
	return &PostgresLedgerRepo{db: db}
}

// translatePgError maps low-level postgres failures to ledger errors.
// Serialization conflicts and deadlocks become ErrConcurrentModification so
// the orchestrator's bounded retry can re-run the unit; a unique violation
// on the idempotency index means another writer won the race, which the
// retry path resolves by re-reading the winner's row.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return fmt.Errorf("%w: %s", apperrors.ErrConcurrentModification, pgErr.Code)
		case "23505":
			return fmt.Errorf("%w: duplicate key", apperrors.ErrConcurrentModification)
		}
	}
	return err
}

// GetAccount retrieves an account by id
func (r *PostgresLedgerRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, `
		SELECT id, user_id, email, balance, currency, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetAccountByEmail resolves a recipient account by email
func (r *PostgresLedgerRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, `
		SELECT id, user_id, email, balance, currency, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

// GetBalance retrieves the current balance of an account
func (r *PostgresLedgerRepo) GetBalance(ctx context.Context, id uuid.UUID) (models.Money, error) {
	var balance models.Money
	err := r.db.QueryRowxContext(ctx, `
		SELECT balance, currency FROM accounts WHERE id = $1
	`, id).Scan(&balance.Amount, &balance.Currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Money{}, apperrors.ErrAccountNotFound
		}
		return models.Money{}, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// GetTransaction retrieves a transaction by id
func (r *PostgresLedgerRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return r.getTransactionByField(ctx, "id", id)
}

// GetTransactionByIdempotencyKey retrieves a transaction by idempotency key
func (r *PostgresLedgerRepo) GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	return r.getTransactionByField(ctx, "idempotency_key", key)
}

// GetTransactionByProcessorRef retrieves a transaction by processor reference
func (r *PostgresLedgerRepo) GetTransactionByProcessorRef(ctx context.Context, ref string) (*models.Transaction, error) {
	return r.getTransactionByField(ctx, "processor_ref", ref)
}

func (r *PostgresLedgerRepo) getTransactionByField(ctx context.Context, field string, value interface{}) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, account_id, type, amount, fee, currency, status,
		       counterpart_id, counterpart_email, processor_ref,
		       idempotency_key, detail, created_at, updated_at
		FROM transactions
		WHERE %s = $1
	`, field)

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactions fetches the most recent transactions for an account
func (r *PostgresLedgerRepo) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, `
		SELECT id, account_id, type, amount, fee, currency, status,
		       counterpart_id, counterpart_email, processor_ref,
		       idempotency_key, detail, created_at, updated_at
		FROM transactions
		WHERE account_id = $1 OR counterpart_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// Deposit credits the account and records the transaction atomically
func (r *PostgresLedgerRepo) Deposit(ctx context.Context, txn *models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockBalances(ctx, tx, txn.AccountID); err != nil {
		return err
	}

	if err := adjustBalance(ctx, tx, txn.AccountID, txn.Amount); err != nil {
		return err
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit deposit: %w", err))
	}
	return nil
}

// Withdraw debits amount+fee, settles the fee and records the transaction
func (r *PostgresLedgerRepo) Withdraw(ctx context.Context, txn *models.Transaction, feeAccountID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	accounts := []uuid.UUID{txn.AccountID}
	if txn.Fee > 0 {
		accounts = append(accounts, feeAccountID)
	}

	balances, err := lockBalances(ctx, tx, accounts...)
	if err != nil {
		return err
	}

	needed := txn.Amount + txn.Fee
	if balances[txn.AccountID] < needed {
		return &apperrors.InsufficientFundsError{
			Required:  needed,
			Available: balances[txn.AccountID],
		}
	}

	if err := adjustBalance(ctx, tx, txn.AccountID, -needed); err != nil {
		return err
	}
	if txn.Fee > 0 {
		if err := adjustBalance(ctx, tx, feeAccountID, txn.Fee); err != nil {
			return err
		}
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit withdrawal: %w", err))
	}
	return nil
}

// Transfer moves amount to the recipient and fee to the platform account in
// one atomic unit with the transaction record
func (r *PostgresLedgerRepo) Transfer(ctx context.Context, txn *models.Transaction, feeAccountID uuid.UUID) error {
	if txn.CounterpartID == nil {
		return apperrors.ErrRecipientNotFound
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	balances, err := lockBalances(ctx, tx, txn.AccountID, *txn.CounterpartID, feeAccountID)
	if err != nil {
		return err
	}

	needed := txn.Amount + txn.Fee
	if balances[txn.AccountID] < needed {
		return &apperrors.InsufficientFundsError{
			Required:  needed,
			Available: balances[txn.AccountID],
		}
	}

	if err := adjustBalance(ctx, tx, txn.AccountID, -needed); err != nil {
		return err
	}
	if err := adjustBalance(ctx, tx, *txn.CounterpartID, txn.Amount); err != nil {
		return err
	}
	if txn.Fee > 0 {
		if err := adjustBalance(ctx, tx, feeAccountID, txn.Fee); err != nil {
			return err
		}
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit transfer: %w", err))
	}
	return nil
}

// CompleteTransaction transitions a pending transaction to completed. A
// record another reconciler already completed is a no-op so webhook replays
// stay idempotent; a record that settled as failed reports
// ErrTransactionSettled.
func (r *PostgresLedgerRepo) CompleteTransaction(ctx context.Context, txnID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.TransactionStatusCompleted, txnID, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to complete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var status string
	err = r.db.GetContext(ctx, &status,
		`SELECT status FROM transactions WHERE id = $1`, txnID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to re-read transaction: %w", err)
	}
	if status == models.TransactionStatusCompleted {
		return nil
	}
	return apperrors.ErrTransactionSettled
}

// CompensateWithdrawal reverses a failed withdrawal and marks the record
// failed. Only a pending record is refunded: an already-failed record is a
// no-op so webhook replays stay idempotent, and a completed record means the
// payout settled, so refunding it would create money.
func (r *PostgresLedgerRepo) CompensateWithdrawal(ctx context.Context, txnID uuid.UUID, reason string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var txn models.Transaction
	err = tx.GetContext(ctx, &txn, `
		SELECT id, account_id, type, amount, fee, currency, status,
		       counterpart_id, counterpart_email, processor_ref,
		       idempotency_key, detail, created_at, updated_at
		FROM transactions
		WHERE id = $1
		FOR UPDATE
	`, txnID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to load transaction: %w", err)
	}

	switch txn.Status {
	case models.TransactionStatusPending:
		// Compensatable.
	case models.TransactionStatusFailed:
		return nil
	default:
		return apperrors.ErrTransactionSettled
	}

	accounts := []uuid.UUID{txn.AccountID}
	if txn.Fee > 0 && txn.CounterpartID != nil {
		accounts = append(accounts, *txn.CounterpartID)
	}
	if _, err := lockBalances(ctx, tx, accounts...); err != nil {
		return err
	}

	if err := adjustBalance(ctx, tx, txn.AccountID, txn.Amount+txn.Fee); err != nil {
		return err
	}
	if txn.Fee > 0 && txn.CounterpartID != nil {
		if err := adjustBalance(ctx, tx, *txn.CounterpartID, -txn.Fee); err != nil {
			return err
		}
	}

	detail := txn.Detail
	if detail.Kind == "" {
		detail.Kind = "processor"
	}
	if detail.Processor == nil {
		detail.Processor = &models.ProcessorDetail{}
	}
	detail.Processor.Message = reason

	if _, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, detail = $2, updated_at = NOW()
		WHERE id = $3
	`, models.TransactionStatusFailed, detail, txnID); err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit compensation: %w", err))
	}
	return nil
}

// lockBalances acquires row locks for all given accounts in sorted id order
// and returns their balances. Sorting keeps two opposing transfers between
// the same accounts from deadlocking.
func lockBalances(ctx context.Context, tx *sqlx.Tx, ids ...uuid.UUID) (map[uuid.UUID]int64, error) {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	balances := make(map[uuid.UUID]int64, len(sorted))
	for _, id := range sorted {
		if _, seen := balances[id]; seen {
			continue
		}
		var balance int64
		err := tx.QueryRowxContext(ctx, `
			SELECT balance FROM accounts WHERE id = $1 FOR UPDATE
		`, id).Scan(&balance)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperrors.ErrAccountNotFound
			}
			return nil, translatePgError(fmt.Errorf("failed to lock account %s: %w", id, err))
		}
		balances[id] = balance
	}
	return balances, nil
}

func adjustBalance(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to adjust balance: %w", err))
	}
	return nil
}

func insertTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
	now := time.Now()
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now

	_, err := tx.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, account_id, type, amount, fee, currency, status,
			counterpart_id, counterpart_email, processor_ref,
			idempotency_key, detail, created_at, updated_at
		) VALUES (
			:id, :account_id, :type, :amount, :fee, :currency, :status,
			:counterpart_id, :counterpart_email, :processor_ref,
			:idempotency_key, :detail, :created_at, :updated_at
		)
	`, txn)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to insert transaction: %w", err))
	}
	return nil
}
