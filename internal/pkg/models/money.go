package models

import (
	"fmt"
)

// Money holds an amount in minor units (cents). $10.50 is stored as 1050.
// All ledger arithmetic happens on int64 minor units so there is no binary
// floating point anywhere in a balance computation.
type Money struct {
	Amount   int64  `json:"amount" db:"amount"`
	Currency string `json:"currency" db:"currency"`
}

// NewMoney creates a Money value in minor units.
func NewMoney(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add adds two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot add %s to %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub subtracts other from m. The result may be negative; funds checks are
// the ledger store's job, not the value type's.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot subtract %s from %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// MulBps multiplies by a basis-point rate (200 = 2%), rounding half-up.
func (m Money) MulBps(bps int64) Money {
	product := m.Amount * bps
	rounded := (product + 5000) / 10000
	if product < 0 {
		rounded = (product - 5000) / 10000
	}
	return Money{Amount: rounded, Currency: m.Currency}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return Money{Amount: -m.Amount, Currency: m.Currency}
}

// String formats the amount with two decimal places, e.g. "USD 10.50".
func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s %s%d.%02d", m.Currency, sign, amount/100, amount%100)
}
