package decimal_math

import (
	"errors"

	"github.com/shopspring/decimal"
)

func Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	c := a.Add(b)
	if outOfRange(c) {
		return decimal.Decimal{}, errors.New("DecimalMath: addition overflow")
	}
	return c, nil
}

func Sub(a, b decimal.Decimal) (decimal.Decimal, error) {
	c := a.Sub(b)
	if outOfRange(c) {
		return decimal.Decimal{}, errors.New("DecimalMath: subtraction overflow")
	}
	return c, nil
}

func Mul(a, b decimal.Decimal) (decimal.Decimal, error) {
	c := a.Mul(b).Round(Scale)
	if outOfRange(c) {
		return decimal.Decimal{}, errors.New("DecimalMath: multiplication overflow")
	}
	return c, nil
}

func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, errors.New("DecimalMath: division by zero")
	}
	c := a.DivRound(b, Scale)
	if outOfRange(c) {
		return decimal.Decimal{}, errors.New("DecimalMath: division overflow")
	}
	return c, nil
}
