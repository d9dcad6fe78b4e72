package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeGeofence   = "geofence"
	TransactionTypeSavings    = "savings"
	TransactionTypeRefund     = "refund"
	TransactionTypeDispute    = "dispute"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is an immutable audit record of one ledger operation. Once the
// status reaches completed, amount, fee and type never change; only the
// detail blob and linked follow-up records (refund, dispute) may be added.
type Transaction struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	AccountID        uuid.UUID         `json:"account_id" db:"account_id"`
	Type             string            `json:"type" db:"type"`
	Amount           int64             `json:"amount" db:"amount"`
	Fee              int64             `json:"fee" db:"fee"`
	Currency         string            `json:"currency" db:"currency"`
	Status           string            `json:"status" db:"status"`
	CounterpartID    *uuid.UUID        `json:"counterpart_id,omitempty" db:"counterpart_id"`
	CounterpartEmail string            `json:"counterpart_email,omitempty" db:"counterpart_email"`
	ProcessorRef     string            `json:"processor_ref,omitempty" db:"processor_ref"`
	IdempotencyKey   string            `json:"idempotency_key,omitempty" db:"idempotency_key"`
	Detail           TransactionDetail `json:"detail" db:"detail"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// AmountMoney returns the transaction amount as a Money value.
func (t *Transaction) AmountMoney() Money {
	return Money{Amount: t.Amount, Currency: t.Currency}
}

// FeeMoney returns the transaction fee as a Money value.
func (t *Transaction) FeeMoney() Money {
	return Money{Amount: t.Fee, Currency: t.Currency}
}

// TransactionDetail is a tagged union of per-type structured detail, stored
// as a single JSONB column. Kind names which branch is populated.
type TransactionDetail struct {
	Kind      string           `json:"kind"`
	Processor *ProcessorDetail `json:"processor,omitempty"`
	Geofence  *GeofenceDetail  `json:"geofence,omitempty"`
	Savings   *SavingsDetail   `json:"savings,omitempty"`
}

// ProcessorDetail carries external payment-processor context.
type ProcessorDetail struct {
	Provider string `json:"provider,omitempty"`
	Method   string `json:"method,omitempty"`
	Ref      string `json:"ref,omitempty"`
	Message  string `json:"message,omitempty"`
}

// GeofenceDetail links a settlement transaction back to its fence.
type GeofenceDetail struct {
	GeofenceID uuid.UUID `json:"geofence_id"`
	Event      string    `json:"event"`
	Memo       string    `json:"memo,omitempty"`
}

// SavingsDetail links a settlement transaction back to its lock.
type SavingsDetail struct {
	LockID  uuid.UUID `json:"lock_id"`
	Event   string    `json:"event"`
	Penalty int64     `json:"penalty,omitempty"`
}

// Value implements driver.Valuer so the detail serializes to JSONB. An
// empty detail stores NULL.
func (d TransactionDetail) Value() (driver.Value, error) {
	if d.Kind == "" {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for the JSONB detail column.
func (d *TransactionDetail) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for transaction detail: %T", src)
	}
	return json.Unmarshal(data, d)
}
