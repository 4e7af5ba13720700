package bonding_curve

import (
	"fmt"

	"github.com/Signor1/bonding-curve/decimal_math"
	"github.com/shopspring/decimal"
)

// Exponential prices tokens at P(S) = coefficient * S^exponent. A zero
// exponent degenerates to a constant price.
type Exponential struct {
	coefficient decimal.Decimal
	exponent    decimal.Decimal
	tokenSupply decimal.Decimal
}

func NewExponential(coefficient, exponent decimal.Decimal) (*Exponential, error) {
	if coefficient.Sign() <= 0 {
		return nil, fmt.Errorf("%w: coefficient must be positive", ErrInvalidInput)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative", ErrInvalidInput)
	}
	return &Exponential{coefficient: coefficient, exponent: exponent}, nil
}

func (c *Exponential) GetPrice() (decimal.Decimal, error) {
	powered, err := decimal_math.Pow(c.tokenSupply, c.exponent)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	price, err := decimal_math.Mul(c.coefficient, powered)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return price, nil
}

func (c *Exponential) BuyToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Exponential) SellToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Exponential) GetSupply() decimal.Decimal {
	return c.tokenSupply
}

func (c *Exponential) GetReserve() (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// segmentCost integrates coefficient*S^exponent over [lower, upper]:
// (coefficient/(exponent+1)) * (upper^(exponent+1) - lower^(exponent+1)).
// Pow handles the zero-supply bound directly, so a fractional exponent at
// S = 0 never reaches the logarithm path.
func (c *Exponential) segmentCost(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	nPlusOne, err := decimal_math.Add(c.exponent, one)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	upperPow, err := decimal_math.Pow(upper, nPlusOne)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	lowerPow, err := decimal_math.Pow(lower, nPlusOne)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	factor, err := decimal_math.Div(c.coefficient, nPlusOne)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	diff, err := decimal_math.Sub(upperPow, lowerPow)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	cost, err := decimal_math.Mul(factor, diff)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return cost, nil
}
