package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ledger core. Callers test with errors.Is; handlers
// translate them to HTTP statuses. Validation errors are returned before any
// balance mutation; errors surfaced after a partial mutation are only
// returned once the compensating adjustment has been applied.
var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountNotFound        = errors.New("account not found")
	ErrRecipientNotFound      = errors.New("recipient not found")
	ErrSelfTransferNotAllowed = errors.New("cannot transfer to the same account")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrTransactionSettled     = errors.New("transaction already settled")
	ErrGeofenceNotFound       = errors.New("geofence not found")
	ErrAlreadyClaimed         = errors.New("geofence already claimed")
	ErrGeofenceNotEligible    = errors.New("geofence claim not eligible")
	ErrInvalidRadius          = errors.New("geofence radius out of bounds")
	ErrLockNotFound           = errors.New("savings lock not found")
	ErrLockNotMatured         = errors.New("savings lock has not matured")
	ErrLockAlreadyResolved    = errors.New("savings lock already resolved")
	ErrUnsupportedLockTerm    = errors.New("unsupported savings lock term")
	ErrProcessorFailure       = errors.New("payment processor call failed")
	ErrPersistenceFailure     = errors.New("ledger persistence failed")
	ErrConcurrentModification = errors.New("concurrent modification, retries exhausted")
)

// InsufficientFundsError carries the shortfall so the caller can show an
// actionable message without leaking storage errors.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d, have %d (short %d minor units)",
		e.Required, e.Available, e.Shortfall())
}

// Shortfall returns how many minor units the account is missing.
func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Required - e.Available
}

// Unwrap makes errors.Is(err, ErrInsufficientFunds) hold.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
