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
	"github.com/nrattyp233/moneybuddy/services/savings"
)

const lockColumns = `
	id, owner_account_id, principal, currency, rate_bps, term_months,
	state, locked_at, unlocks_at, resolved_at`

// PostgresSavingsRepo implements the savings.Repository interface
type PostgresSavingsRepo struct {
	db *sqlx.DB
}

// NewSavingsRepository creates a new savings repository
func NewSavingsRepository(db *sqlx.DB) savings.Repository {
	return &PostgresSavingsRepo{db: db}
}

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

// GetLock retrieves a lock by id
func (r *PostgresSavingsRepo) GetLock(ctx context.Context, id uuid.UUID) (*models.SavingsLock, error) {
	var lock models.SavingsLock
	err := r.db.GetContext(ctx, &lock,
		`SELECT `+lockColumns+` FROM savings_locks WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrLockNotFound
		}
		return nil, fmt.Errorf("failed to get savings lock: %w", err)
	}
	return &lock, nil
}

// ListMaturedActive fetches active locks whose term has elapsed
func (r *PostgresSavingsRepo) ListMaturedActive(ctx context.Context, now time.Time, limit int) ([]models.SavingsLock, error) {
	if limit <= 0 {
		limit = 100
	}

	var locks []models.SavingsLock
	err := r.db.SelectContext(ctx, &locks,
		`SELECT `+lockColumns+`
		FROM savings_locks
		WHERE state = $1 AND unlocks_at <= $2
		ORDER BY unlocks_at
		LIMIT $3`, models.SavingsStateActive, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matured locks: %w", err)
	}
	return locks, nil
}

// CreateLock debits the owner and inserts the lock with its audit record in
// one atomic unit
func (r *PostgresSavingsRepo) CreateLock(ctx context.Context, lock *models.SavingsLock, txn *models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	balances, err := lockBalances(ctx, tx, lock.OwnerAccountID)
	if err != nil {
		return err
	}
	if balances[lock.OwnerAccountID] < lock.Principal {
		return &apperrors.InsufficientFundsError{
			Required:  lock.Principal,
			Available: balances[lock.OwnerAccountID],
		}
	}

	if err := adjustBalance(ctx, tx, lock.OwnerAccountID, -lock.Principal); err != nil {
		return err
	}

	if lock.ID == uuid.Nil {
		lock.ID = uuid.New()
	}
	lock.State = models.SavingsStateActive

	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO savings_locks (
			id, owner_account_id, principal, currency, rate_bps,
			term_months, state, locked_at, unlocks_at
		) VALUES (
			:id, :owner_account_id, :principal, :currency, :rate_bps,
			:term_months, :state, :locked_at, :unlocks_at
		)
	`, lock); err != nil {
		return translatePgError(fmt.Errorf("failed to insert savings lock: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit lock creation: %w", err))
	}
	return nil
}

// BreakLock settles an early break and marks the lock broken_early
func (r *PostgresSavingsRepo) BreakLock(ctx context.Context, lockID uuid.UUID, ownerCredit, penalty int64, feeAccountID uuid.UUID, txn *models.Transaction) (*models.SavingsLock, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lock, err := lockSavingsLock(ctx, tx, lockID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if lock.State != models.SavingsStateActive || !now.Before(lock.UnlocksAt) {
		return nil, apperrors.ErrLockAlreadyResolved
	}

	accounts := []uuid.UUID{lock.OwnerAccountID}
	if penalty > 0 {
		accounts = append(accounts, feeAccountID)
	}
	if _, err := lockBalances(ctx, tx, accounts...); err != nil {
		return nil, err
	}
	if err := adjustBalance(ctx, tx, lock.OwnerAccountID, ownerCredit); err != nil {
		return nil, err
	}
	if penalty > 0 {
		if err := adjustBalance(ctx, tx, feeAccountID, penalty); err != nil {
			return nil, err
		}
	}

	lock.State = models.SavingsStateBrokenEarly
	lock.ResolvedAt = &now
	if _, err := tx.ExecContext(ctx, `
		UPDATE savings_locks
		SET state = $1, resolved_at = $2
		WHERE id = $3
	`, lock.State, now, lockID); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to mark lock broken: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to commit early break: %w", err))
	}
	return lock, nil
}

// WithdrawMatured credits the payout and marks the lock withdrawn
func (r *PostgresSavingsRepo) WithdrawMatured(ctx context.Context, lockID uuid.UUID, payout int64, txn *models.Transaction) (*models.SavingsLock, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lock, err := lockSavingsLock(ctx, tx, lockID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch lock.CheckMaturity(now) {
	case models.SavingsStateMatured:
		// Withdrawable, including active locks whose term elapsed
		// before the sweep persisted the transition.
	case models.SavingsStateActive:
		return nil, apperrors.ErrLockNotMatured
	default:
		return nil, apperrors.ErrLockAlreadyResolved
	}

	if _, err := lockBalances(ctx, tx, lock.OwnerAccountID); err != nil {
		return nil, err
	}
	if err := adjustBalance(ctx, tx, lock.OwnerAccountID, payout); err != nil {
		return nil, err
	}

	lock.State = models.SavingsStateWithdrawn
	lock.ResolvedAt = &now
	if _, err := tx.ExecContext(ctx, `
		UPDATE savings_locks
		SET state = $1, resolved_at = $2
		WHERE id = $3
	`, lock.State, now, lockID); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to mark lock withdrawn: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to commit withdrawal: %w", err))
	}
	return lock, nil
}

// MarkMatured transitions an active lock whose term has elapsed to matured
func (r *PostgresSavingsRepo) MarkMatured(ctx context.Context, lockID uuid.UUID, now time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE savings_locks
		SET state = $1
		WHERE id = $2 AND state = $3 AND unlocks_at <= $4
	`, models.SavingsStateMatured, lockID, models.SavingsStateActive, now)
	if err != nil {
		return false, translatePgError(fmt.Errorf("failed to mark lock matured: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// lockSavingsLock loads a lock row under FOR UPDATE
func lockSavingsLock(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.SavingsLock, error) {
	var lock models.SavingsLock
	err := tx.GetContext(ctx, &lock,
		`SELECT `+lockColumns+` FROM savings_locks WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrLockNotFound
		}
		return nil, translatePgError(fmt.Errorf("failed to lock savings lock: %w", err))
	}
	return &lock, nil
}

// lockBalances acquires account row locks in sorted id order, matching the
// lock ordering used by every other balance writer.
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
