package decimal_math

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Exp returns e^x rounded to Scale. Arguments beyond maxExpArg would push
// the result outside the representable range and are rejected; callers
// that cannot bound their arguments must check the error.
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	if x.GreaterThan(maxExpArg) {
		return decimal.Decimal{}, errors.New("DecimalMath: exp argument out of range")
	}
	res := expSeries(x)
	if outOfRange(res) {
		return decimal.Decimal{}, errors.New("DecimalMath: exp overflow")
	}
	return res.Round(Scale), nil
}

// expSeries evaluates e^x at divPrecision: the argument is halved until it
// fits the fast-converging part of the Taylor series, then the partial sum
// is squared back up.
func expSeries(x decimal.Decimal) decimal.Decimal {
	halvings := 0
	r := x
	for r.Abs().GreaterThan(half) {
		r = r.DivRound(two, divPrecision)
		halvings++
	}

	term := one
	sum := one
	for i := int64(1); i <= 64; i++ {
		term = term.Mul(r).DivRound(decimal.NewFromInt(i), divPrecision)
		sum = sum.Add(term)
		if term.Abs().LessThan(seriesEpsilon) {
			break
		}
	}

	for ; halvings > 0; halvings-- {
		sum = sum.Mul(sum).Round(divPrecision)
	}
	return sum
}
