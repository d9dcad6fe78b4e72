package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// Repository is the ledger store: the only component allowed to touch
// account balances. Every mutating method runs as one database transaction,
// so a balance change and its audit record are visible together or not at
// all. Methods that move money between accounts lock the involved rows in
// sorted id order to avoid deadlock between opposing transfers.
type Repository interface {
	// Account reads
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetBalance(ctx context.Context, id uuid.UUID) (models.Money, error)

	// Transaction log reads
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	GetTransactionByProcessorRef(ctx context.Context, ref string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error)

	// Deposit credits the account and records the transaction atomically.
	Deposit(ctx context.Context, txn *models.Transaction) error

	// Withdraw debits amount+fee from the account, credits the fee to the
	// platform fee account when non-zero, and records the transaction with
	// the status set by the caller (pending for external settlement,
	// completed for instant).
	Withdraw(ctx context.Context, txn *models.Transaction, feeAccountID uuid.UUID) error

	// Transfer debits amount+fee from the sender, credits the amount to the
	// recipient and the fee to the platform fee account, and records the
	// transaction. All three balance rows plus the record are one unit.
	Transfer(ctx context.Context, txn *models.Transaction, feeAccountID uuid.UUID) error

	// CompleteTransaction transitions a pending transaction to completed.
	CompleteTransaction(ctx context.Context, txnID uuid.UUID) error

	// CompensateWithdrawal reverses a withdrawal that failed downstream:
	// credits amount+fee back to the owner, claws the fee back from the
	// platform account when one was taken, and marks the record failed.
	CompensateWithdrawal(ctx context.Context, txnID uuid.UUID, reason string) error
}
