package usecase

import "github.com/shopspring/decimal"

// DiffPercent returns the percent change between the previous close and the
// current price, always non-negative and rounded to two decimal places.
//
// Equal prices take the raw-subtraction branch the original math used, which
// degenerates to 0.00. The branch is observationally identical to the general
// formula at that point but is kept as the documented behavior.
//
// A zero previous close has no meaningful percent change, so it answers 0.00
// instead of dividing by zero.
func DiffPercent(currentPrice, previousClose int64) float64 {
	if currentPrice == previousClose {
		return decimal.NewFromInt(currentPrice - previousClose).Round(2).InexactFloat64()
	}
	if previousClose == 0 {
		return 0
	}
	return decimal.NewFromInt(previousClose - currentPrice).
		Abs().
		Div(decimal.NewFromInt(previousClose)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// DiffPrice returns the absolute difference between the current price and
// the previous close. Order-independent; the sign of the move is not
// preserved here.
func DiffPrice(currentPrice, previousClose int64) int64 {
	if currentPrice > previousClose {
		return currentPrice - previousClose
	}
	return previousClose - currentPrice
}
