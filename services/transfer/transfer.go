package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// UseCase is the transfer orchestrator: it validates, prices, executes and
// records wallet operations on top of the ledger store.
type UseCase interface {
	Deposit(ctx context.Context, req *models.DepositRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req *models.WithdrawRequest) (*models.Transaction, error)
	Transfer(ctx context.Context, req *models.TransferRequest) (*models.Transaction, error)
	Reconcile(ctx context.Context, req *models.ReconcileRequest) (*models.Transaction, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (models.Money, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error)
}

// TransferGW defines the orchestrator's outbound collaborators: the external
// payment processor and the notification sink.
type TransferGW interface {
	// Payout asks the processor to move the withdrawn amount out. The
	// outcome may be pending, in which case a later webhook reconciles it.
	Payout(ctx context.Context, txn *models.Transaction) (models.ProcessorOutcome, error)

	// PublishTransactionEvent notifies downstream consumers. Fire and
	// forget: failures are logged by the gateway, never propagated.
	PublishTransactionEvent(subject string, event *models.TransactionEvent) error
}

// IdempotencyCache is the fast-path replay cache in front of the durable
// idempotency index on the transaction log.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
