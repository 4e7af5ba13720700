package bonding_curve

import (
	"fmt"

	"github.com/Signor1/bonding-curve/decimal_math"
	"github.com/shopspring/decimal"
)

// Logarithmic prices tokens at P(S) = coefficient * ln(S + constant). The
// positive constant keeps the logarithm argument away from zero for any
// non-negative supply.
type Logarithmic struct {
	coefficient decimal.Decimal
	constant    decimal.Decimal
	tokenSupply decimal.Decimal
}

func NewLogarithmic(coefficient, constant decimal.Decimal) (*Logarithmic, error) {
	if coefficient.Sign() <= 0 {
		return nil, fmt.Errorf("%w: coefficient must be positive", ErrInvalidInput)
	}
	if constant.Sign() <= 0 {
		return nil, fmt.Errorf("%w: constant must be positive", ErrInvalidInput)
	}
	return &Logarithmic{coefficient: coefficient, constant: constant}, nil
}

func (c *Logarithmic) GetPrice() (decimal.Decimal, error) {
	shifted, err := decimal_math.Add(c.tokenSupply, c.constant)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	lnValue, err := decimal_math.Ln(shifted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	price, err := decimal_math.Mul(c.coefficient, lnValue)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return price, nil
}

func (c *Logarithmic) BuyToken(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: token amount must be non-negative", ErrInvalidInput)
	}
	newSupply, err := decimal_math.Add(c.tokenSupply, amount)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	cost, err := c.segmentCost(c.tokenSupply, newSupply)
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.tokenSupply = newSupply
	return cost, nil
}

func (c *Logarithmic) SellToken(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() < 0 || amount.GreaterThan(c.tokenSupply) {
		return decimal.Decimal{}, fmt.Errorf("%w: token amount must be within [0, supply]", ErrInvalidInput)
	}
	newSupply := c.tokenSupply.Sub(amount)
	refund, err := c.segmentCost(newSupply, c.tokenSupply)
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.tokenSupply = newSupply
	return refund, nil
}

func (c *Logarithmic) GetSupply() decimal.Decimal {
	return c.tokenSupply
}

func (c *Logarithmic) GetReserve() (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// segmentCost integrates coefficient*ln(S + constant) over [lower, upper]
// using the antiderivative x*ln(x) - x of the shifted argument.
func (c *Logarithmic) segmentCost(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	upperArea, err := c.antiderivative(upper)
	if err != nil {
		return decimal.Decimal{}, err
	}
	lowerArea, err := c.antiderivative(lower)
	if err != nil {
		return decimal.Decimal{}, err
	}
	diff, err := decimal_math.Sub(upperArea, lowerArea)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	cost, err := decimal_math.Mul(c.coefficient, diff)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return cost, nil
}

func (c *Logarithmic) antiderivative(supply decimal.Decimal) (decimal.Decimal, error) {
	shifted, err := decimal_math.Add(supply, c.constant)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	lnValue, err := decimal_math.Ln(shifted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	product, err := decimal_math.Mul(shifted, lnValue)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	area, err := decimal_math.Sub(product, shifted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return area, nil
}
