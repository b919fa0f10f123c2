package service

import "github.com/shopspring/decimal"

// TotalPrice computes nights × nightly rate with exact decimal arithmetic.
// The rate is constrained to two fractional digits at property creation,
// so the result never accumulates rounding drift.
func TotalPrice(nightlyRate decimal.Decimal, nights int) decimal.Decimal {
	return nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
}
