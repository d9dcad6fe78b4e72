package models

import (
	"time"

	"github.com/google/uuid"
)

// Savings lock states. A lock leaves active either by maturing at term or by
// an early break. A matured lock still holds the funds until the owner
// withdraws; an early break settles immediately, so broken_early is terminal.
const (
	SavingsStateActive      = "active"
	SavingsStateMatured     = "matured"
	SavingsStateBrokenEarly = "broken_early"
	SavingsStateWithdrawn   = "withdrawn"
)

// SavingsLock is a time-locked deposit. The principal is debited from the
// wallet at creation and stays unavailable while the lock is active.
type SavingsLock struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	OwnerAccountID uuid.UUID  `json:"owner_account_id" db:"owner_account_id"`
	Principal      int64      `json:"principal" db:"principal"`
	Currency       string     `json:"currency" db:"currency"`
	RateBps        int64      `json:"rate_bps" db:"rate_bps"`
	TermMonths     int        `json:"term_months" db:"term_months"`
	State          string     `json:"state" db:"state"`
	LockedAt       time.Time  `json:"locked_at" db:"locked_at"`
	UnlocksAt      time.Time  `json:"unlocks_at" db:"unlocks_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// PrincipalMoney returns the locked principal as a Money value.
func (l *SavingsLock) PrincipalMoney() Money {
	return Money{Amount: l.Principal, Currency: l.Currency}
}

// CheckMaturity reports the effective state of the lock at the given time.
// It is pure: a lock that is still recorded as active but whose term has
// elapsed reports matured, which is what the sweep persists.
func (l *SavingsLock) CheckMaturity(now time.Time) string {
	if l.State == SavingsStateActive && !now.Before(l.UnlocksAt) {
		return SavingsStateMatured
	}
	return l.State
}
