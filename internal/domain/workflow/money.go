package workflow

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale = 2

// ValidAmount reports whether d is non-negative and has at most two decimals.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(MoneyScale))
}

// ToMinorUnits converts an amount to cents. Callers validate with ValidAmount first.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Shift(MoneyScale).IntPart()
}

// FromMinorUnits converts cents back to an amount.
func FromMinorUnits(v int64) decimal.Decimal {
	return decimal.New(v, -MoneyScale)
}
