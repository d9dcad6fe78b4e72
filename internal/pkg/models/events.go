package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is published after a ledger operation settles.
type TransactionEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	AccountID     uuid.UUID `json:"account_id"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	Fee           int64     `json:"fee"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// GeofenceEvent is published on fence lifecycle transitions.
type GeofenceEvent struct {
	GeofenceID         uuid.UUID `json:"geofence_id"`
	OwnerAccountID     uuid.UUID `json:"owner_account_id"`
	RecipientAccountID uuid.UUID `json:"recipient_account_id"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	State              string    `json:"state"`
	Timestamp          time.Time `json:"timestamp"`
}

// SavingsEvent is published on lock lifecycle transitions.
type SavingsEvent struct {
	LockID         uuid.UUID `json:"lock_id"`
	OwnerAccountID uuid.UUID `json:"owner_account_id"`
	Principal      int64     `json:"principal"`
	Currency       string    `json:"currency"`
	State          string    `json:"state"`
	Penalty        int64     `json:"penalty,omitempty"`
	Interest       int64     `json:"interest,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
