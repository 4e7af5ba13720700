package decimal_math

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Ln returns the natural logarithm of x rounded to Scale, failing when
// x <= 0.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Sign() <= 0 {
		return decimal.Decimal{}, errors.New("DecimalMath: ln of non-positive value")
	}
	return lnNewton(x).Round(Scale), nil
}

// lnNewton solves e^y = x with Newton iterations seeded from the float64
// logarithm. The seed is already close, so the fixed point is reached in a
// handful of steps and the iteration itself determines the final digits.
func lnNewton(x decimal.Decimal) decimal.Decimal {
	f, _ := x.Float64()
	y := decimal.NewFromFloat(math.Log(f))
	for i := 0; i < 64; i++ {
		ey := expSeries(y)
		delta := x.Sub(ey).DivRound(ey, divPrecision)
		y = y.Add(delta)
		if delta.Abs().LessThan(newtonEpsilon) {
			break
		}
	}
	return y
}
