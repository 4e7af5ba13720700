package decimal_math

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Sqrt returns the square root of x rounded to Scale, failing when x < 0.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Decimal{}, errors.New("DecimalMath: sqrt of negative value")
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}

	f, _ := x.Float64()
	guess := decimal.NewFromFloat(math.Sqrt(f))
	for i := 0; i < 64; i++ {
		next := guess.Add(x.DivRound(guess, divPrecision)).DivRound(two, divPrecision)
		delta := next.Sub(guess)
		guess = next
		if delta.Abs().LessThan(newtonEpsilon) {
			break
		}
	}
	return guess.Round(Scale), nil
}
