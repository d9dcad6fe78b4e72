package savings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// UseCase manages time-locked deposits. The principal leaves the wallet at
// creation and returns either at withdrawal after maturity, with the full
// projected interest, or immediately on an early break, with accrued interest
// minus the penalty.
type UseCase interface {
	Create(ctx context.Context, req *models.CreateSavingsLockRequest) (*models.SavingsLock, error)
	Break(ctx context.Context, lockID, requesterAccountID uuid.UUID) (*models.SavingsLock, error)
	Withdraw(ctx context.Context, lockID, requesterAccountID uuid.UUID) (*models.SavingsLock, error)
	Get(ctx context.Context, lockID uuid.UUID) (*models.SavingsLock, error)

	// SweepMatured persists the matured state for every active lock whose
	// term has elapsed. Returns the number of locks marked.
	SweepMatured(ctx context.Context, now time.Time) (int, error)
}

// Repository is the lock store. Mutating methods pair the lock state
// transition with its balance movement and audit record in one database
// transaction, re-checking the state under the row lock.
type Repository interface {
	GetLock(ctx context.Context, id uuid.UUID) (*models.SavingsLock, error)
	ListMaturedActive(ctx context.Context, now time.Time, limit int) ([]models.SavingsLock, error)

	// CreateLock debits the owner and inserts the lock plus its audit
	// record atomically. The owner must cover the full principal.
	CreateLock(ctx context.Context, lock *models.SavingsLock, txn *models.Transaction) error

	// BreakLock settles an early break: credits ownerCredit to the owner,
	// the penalty to the platform fee account and marks the lock
	// broken_early. Only an active, unmatured lock may break.
	BreakLock(ctx context.Context, lockID uuid.UUID, ownerCredit, penalty int64, feeAccountID uuid.UUID, txn *models.Transaction) (*models.SavingsLock, error)

	// WithdrawMatured credits the payout to the owner and marks the lock
	// withdrawn. The lock must be matured, or active with its term
	// elapsed.
	WithdrawMatured(ctx context.Context, lockID uuid.UUID, payout int64, txn *models.Transaction) (*models.SavingsLock, error)

	// MarkMatured transitions an active lock whose term has elapsed to
	// matured. Already-matured locks are a no-op so sweep reruns stay
	// idempotent.
	MarkMatured(ctx context.Context, lockID uuid.UUID, now time.Time) (bool, error)
}

// SavingsGW is the notification sink for lock lifecycle events.
type SavingsGW interface {
	PublishSavingsEvent(subject string, event *models.SavingsEvent) error
}
