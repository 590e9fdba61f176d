// Package money converts between decimal display amounts and integer minor
// units. Amounts are only ever stored and summed as minor units.
package money

import "github.com/shopspring/decimal"

const minorUnitsPerMajor = 100

var hundred = decimal.NewFromInt(minorUnitsPerMajor)

// ToMinor multiplies by 100 and truncates toward zero, so 9.999 becomes 999.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Truncate(0).IntPart()
}

func FromMinor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(hundred)
}
