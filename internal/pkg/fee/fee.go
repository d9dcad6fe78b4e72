// Package fee implements the fee engine: pure, deterministic money math with
// no I/O. All rates are integer basis points over int64 minor units, rounded
// half-up, so results are exact and reproducible.
package fee

import (
	"time"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// Default rates in basis points.
const (
	DefaultTransferFeeBps     = 200 // 2% peer transfer fee
	DefaultEarlyBreakFeeBps   = 500 // 5% early-break penalty
	DefaultInstantWithdrawBps = 200 // 2% instant withdrawal fee
)

// Withdrawal methods.
const (
	WithdrawMethodInstant  = "instant"
	WithdrawMethodExternal = "external"
)

// defaultRateTable maps a lock term in months to a simple annual interest
// rate in basis points. Terms outside this table are rejected.
var defaultRateTable = map[int]int64{
	3:  200,
	6:  250,
	12: 300,
}

// Engine computes fees, penalties and interest projections. The zero-ish
// construction path via NewEngine fills unset rates with the defaults above.
type Engine struct {
	transferFeeBps     int64
	earlyBreakFeeBps   int64
	instantWithdrawBps int64
	rateTable          map[int]int64
}

// NewEngine creates a fee engine from pricing configuration, applying
// defaults for any unset rate.
func NewEngine(cfg models.PricingConfig) *Engine {
	e := &Engine{
		transferFeeBps:     cfg.TransferFeeBps,
		earlyBreakFeeBps:   cfg.EarlyBreakFeeBps,
		instantWithdrawBps: cfg.InstantWithdrawBps,
		rateTable:          defaultRateTable,
	}
	if e.transferFeeBps <= 0 {
		e.transferFeeBps = DefaultTransferFeeBps
	}
	if e.earlyBreakFeeBps <= 0 {
		e.earlyBreakFeeBps = DefaultEarlyBreakFeeBps
	}
	if e.instantWithdrawBps <= 0 {
		e.instantWithdrawBps = DefaultInstantWithdrawBps
	}
	return e
}

// TransferQuote is the fee breakdown for a peer transfer. The sender is
// debited amount + fee, the recipient receives the full amount and the
// platform fee account receives the fee.
type TransferQuote struct {
	Fee               models.Money
	RecipientReceives models.Money
	AdminReceives     models.Money
	TotalDebited      models.Money
}

// QuoteTransfer computes the peer-transfer fee breakdown.
func (e *Engine) QuoteTransfer(amount models.Money) (TransferQuote, error) {
	if !amount.IsPositive() {
		return TransferQuote{}, apperrors.ErrInvalidAmount
	}
	fee := amount.MulBps(e.transferFeeBps)
	total, _ := amount.Add(fee)
	return TransferQuote{
		Fee:               fee,
		RecipientReceives: amount,
		AdminReceives:     fee,
		TotalDebited:      total,
	}, nil
}

// QuoteWithdrawal computes the fee for a withdrawal method. Instant
// withdrawals pay the instant rate; external settlements carry no fee.
func (e *Engine) QuoteWithdrawal(amount models.Money, method string) (models.Money, error) {
	if !amount.IsPositive() {
		return models.Money{}, apperrors.ErrInvalidAmount
	}
	if method == WithdrawMethodInstant {
		return amount.MulBps(e.instantWithdrawBps), nil
	}
	return models.NewMoney(0, amount.Currency), nil
}

// BreakQuote is the settlement breakdown for breaking a savings lock early.
type BreakQuote struct {
	Penalty       models.Money
	NetAmount     models.Money
	AdminReceives models.Money
}

// QuoteEarlyBreak computes the early-withdrawal penalty. The penalty base is
// the original principal, not the accrued value. Product has confirmed this
// is the intended policy; do not change it to currentValue.
func (e *Engine) QuoteEarlyBreak(principal, currentValue models.Money) (BreakQuote, error) {
	if !principal.IsPositive() || !currentValue.IsPositive() {
		return BreakQuote{}, apperrors.ErrInvalidAmount
	}
	penalty := principal.MulBps(e.earlyBreakFeeBps)
	net, err := currentValue.Sub(penalty)
	if err != nil {
		return BreakQuote{}, err
	}
	return BreakQuote{
		Penalty:       penalty,
		NetAmount:     net,
		AdminReceives: penalty,
	}, nil
}

// RateForTerm returns the annual rate in basis points for a lock term.
func (e *Engine) RateForTerm(months int) (int64, error) {
	rate, ok := e.rateTable[months]
	if !ok {
		return 0, apperrors.ErrUnsupportedLockTerm
	}
	return rate, nil
}

// ProjectedInterest computes simple (non-compounding) interest for a term:
// principal * annualRate * months / 12, rounded half-up.
func (e *Engine) ProjectedInterest(principal models.Money, months int, annualRateBps int64) models.Money {
	numerator := principal.Amount * annualRateBps * int64(months)
	denominator := int64(12 * 10000)
	interest := (numerator + denominator/2) / denominator
	return models.NewMoney(interest, principal.Currency)
}

// AccruedValue computes the value of a lock at a point in time: principal
// plus interest accrued linearly by elapsed days over a 365-day year. Before
// the lock starts it is the principal; past maturity accrual stops at the
// full projected term interest.
func (e *Engine) AccruedValue(lock *models.SavingsLock, now time.Time) models.Money {
	principal := lock.PrincipalMoney()
	if !now.After(lock.LockedAt) {
		return principal
	}
	full := e.ProjectedInterest(principal, lock.TermMonths, lock.RateBps)
	if !now.Before(lock.UnlocksAt) {
		total, _ := principal.Add(full)
		return total
	}
	elapsedDays := int64(now.Sub(lock.LockedAt).Hours() / 24)
	numerator := principal.Amount * lock.RateBps * elapsedDays
	denominator := int64(365 * 10000)
	accrued := (numerator + denominator/2) / denominator
	total, _ := principal.Add(models.NewMoney(accrued, principal.Currency))
	return total
}
