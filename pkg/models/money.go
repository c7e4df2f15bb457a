package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an amount with a currency code for rendering. The ledger
// itself stores bare decimals; Money exists only on the display path.
type Money struct {
	value *money.Money
}

// NewMoney builds a Money from a decimal amount, scaling by the currency's
// minor-unit fraction. An unknown currency code yields a zero Money.
func NewMoney(amount decimal.Decimal, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.IntPart(), currency)}
}

// String returns the locale-formatted representation.
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

func (m Money) IsZero() bool {
	return m.value == nil || m.value.IsZero()
}
