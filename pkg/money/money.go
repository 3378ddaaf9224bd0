// Package money formats report totals for display. Aggregation itself runs on
// plain float64 sums; this package is the presentation boundary that turns
// those sums into locale-correct currency strings, using integer minor units
// internally so rendering never drifts on fractional cents.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Common currency codes (ISO-4217)
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	BRL = "BRL"
	JPY = "JPY" // no decimal places
)

// Money represents a display amount with currency. It wraps go-money for
// formatting and shopspring/decimal for the float conversion.
type Money struct {
	m *money.Money
}

// New creates a Money value from minor units (cents) and a currency code.
func New(amountMinor int64, currencyCode string) *Money {
	return &Money{m: money.New(amountMinor, currencyCode)}
}

// NewFromFloat creates Money from a floating-point total. Unknown currency
// codes fall back to USD.
func NewFromFloat(amount float64, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(USD)
	}

	d := decimal.NewFromFloat(amount)
	multiplier := decimal.New(1, int32(currency.Fraction))
	minor := d.Mul(multiplier).Round(0).IntPart()

	return New(minor, currency.Code)
}

// Amount returns the value in minor units.
func (m *Money) Amount() int64 { return m.m.Amount() }

// CurrencyCode returns the ISO-4217 code.
func (m *Money) CurrencyCode() string { return m.m.Currency().Code }

// Display renders the amount with its currency symbol, e.g. "€1,234.56".
func (m *Money) Display() string { return m.m.Display() }

// Format is a convenience for the common CLI path: one float total straight
// to its display string.
func Format(amount float64, currencyCode string) string {
	return NewFromFloat(amount, currencyCode).Display()
}
