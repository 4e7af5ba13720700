package decimal_math

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Pow returns base^exponent rounded to Scale. Integer exponents use
// repeated checked multiplication; fractional exponents go through
// e^(exponent*ln(base)) and therefore require base > 0.
func Pow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	if base.IsZero() {
		if exponent.Sign() < 0 {
			return decimal.Decimal{}, errors.New("DecimalMath: zero base with negative exponent")
		}
		if exponent.IsZero() {
			return one, nil
		}
		return decimal.Zero, nil
	}
	if exponent.Equal(exponent.Truncate(0)) {
		return powInt(base, exponent.BigInt())
	}
	if base.Sign() < 0 {
		return decimal.Decimal{}, errors.New("DecimalMath: negative base with fractional exponent")
	}
	if exponent.Equal(half) {
		return Sqrt(base)
	}
	lnBase := lnNewton(base)
	return Exp(lnBase.Mul(exponent))
}

// powInt is square-and-multiply over the checked Mul; a negative exponent
// inverts the positive power at the end.
func powInt(base decimal.Decimal, exponent *big.Int) (decimal.Decimal, error) {
	negative := exponent.Sign() < 0
	e := new(big.Int).Abs(exponent)

	result := one
	current := base
	var err error
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			if result, err = Mul(result, current); err != nil {
				return decimal.Decimal{}, err
			}
		}
		e = new(big.Int).Rsh(e, 1)
		if e.Sign() == 0 {
			break
		}
		if current, err = Mul(current, current); err != nil {
			return decimal.Decimal{}, err
		}
	}

	if negative {
		return Div(one, result)
	}
	return result, nil
}
