package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessorOutcome is the status an external payment processor reports for a
// capture or payout call.
type ProcessorOutcome string

const (
	ProcessorOutcomeSuccess ProcessorOutcome = "success"
	ProcessorOutcomePending ProcessorOutcome = "pending"
	ProcessorOutcomeFailed  ProcessorOutcome = "failed"
)

// DepositRequest credits a wallet from an external funding source.
type DepositRequest struct {
	AccountID      uuid.UUID `json:"account_id"`
	Amount         int64     `json:"amount"`
	MethodRef      string    `json:"method_ref"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// WithdrawRequest debits a wallet toward an external destination.
type WithdrawRequest struct {
	AccountID      uuid.UUID `json:"account_id"`
	Amount         int64     `json:"amount"`
	Method         string    `json:"method"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// TransferRequest moves money between two wallets with the platform fee.
type TransferRequest struct {
	FromAccountID  uuid.UUID `json:"from_account_id"`
	ToAccountID    uuid.UUID `json:"to_account_id"`
	Amount         int64     `json:"amount"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// ReconcileRequest is the webhook seam: the verified outcome of a pending
// external settlement.
type ReconcileRequest struct {
	ProcessorRef string `json:"processor_ref"`
	Outcome      string `json:"outcome"`
}

// CreateGeofenceRequest reserves a conditional transfer inside a circle.
type CreateGeofenceRequest struct {
	OwnerAccountID uuid.UUID `json:"owner_account_id"`
	CenterLat      float64   `json:"center_lat"`
	CenterLng      float64   `json:"center_lng"`
	RadiusM        float64   `json:"radius_m"`
	Amount         int64     `json:"amount"`
	RecipientEmail string    `json:"recipient_email"`
	Memo           string    `json:"memo"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// ClaimGeofenceRequest is a claimant's proof-of-presence claim attempt.
type ClaimGeofenceRequest struct {
	GeofenceID        uuid.UUID   `json:"geofence_id"`
	ClaimantAccountID uuid.UUID   `json:"claimant_account_id"`
	Position          GeoPosition `json:"position"`
}

// CreateSavingsLockRequest locks wallet funds for a term.
type CreateSavingsLockRequest struct {
	OwnerAccountID uuid.UUID `json:"owner_account_id"`
	Amount         int64     `json:"amount"`
	TermMonths     int       `json:"term_months"`
}
