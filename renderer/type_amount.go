package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	minUnits = decimal.NewFromInt(math.MinInt64)
	maxUnits = decimal.NewFromInt(math.MaxInt64)
)

// Amount is a decimal value displayed in a currency.
//
// The currency is only used for display, amounts are never converted.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// NewAmount returns an amount displayed in currency. An empty or unknown
// currency displays the plain value with two decimals.
func NewAmount(value decimal.Decimal, currency string) Amount {
	return Amount{value: value, cur: currency}
}

// String returns the string representation of the amount, formatted by the currency.
func (a Amount) String() string {
	cur := money.GetCurrency(a.cur)
	if cur == nil {
		s := a.value.StringFixed(2)
		if a.cur != "" {
			s += " " + a.cur
		}
		return s
	}
	// minor units must fit the int64 the formatter works with.
	dec := a.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if dec.LessThan(minUnits) || dec.GreaterThan(maxUnits) {
		return a.value.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the amount with a sign.
func (a Amount) SignedString() string {
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}
