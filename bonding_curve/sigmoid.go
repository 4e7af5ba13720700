package bonding_curve

import (
	"fmt"

	"github.com/Signor1/bonding-curve/decimal_math"
	"github.com/shopspring/decimal"
)

// Sigmoid prices tokens at P(S) = maxPrice / (1 + e^(-steepness*(S - midpoint))),
// bounded in (0, maxPrice) for any finite supply.
type Sigmoid struct {
	maxPrice    decimal.Decimal
	steepness   decimal.Decimal
	midpoint    decimal.Decimal
	tokenSupply decimal.Decimal
}

func NewSigmoid(maxPrice, steepness, midpoint decimal.Decimal) (*Sigmoid, error) {
	if maxPrice.Sign() <= 0 {
		return nil, fmt.Errorf("%w: max price must be positive", ErrInvalidInput)
	}
	if steepness.Sign() <= 0 {
		return nil, fmt.Errorf("%w: steepness must be positive", ErrInvalidInput)
	}
	return &Sigmoid{maxPrice: maxPrice, steepness: steepness, midpoint: midpoint}, nil
}

func (c *Sigmoid) GetPrice() (decimal.Decimal, error) {
	shifted, err := decimal_math.Sub(c.tokenSupply, c.midpoint)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	arg, err := decimal_math.Mul(c.steepness, shifted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	expValue, err := decimal_math.Exp(arg.Neg())
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	denominator, err := decimal_math.Add(one, expValue)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	price, err := decimal_math.Div(c.maxPrice, denominator)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return price, nil
}

func (c *Sigmoid) BuyToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Sigmoid) SellToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Sigmoid) GetSupply() decimal.Decimal {
	return c.tokenSupply
}

func (c *Sigmoid) GetReserve() (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// segmentCost integrates the sigmoid price over [lower, upper] using the
// antiderivative (maxPrice/steepness) * ln(1 + e^(steepness*S)). Exp
// rejects arguments outside the fixed-point range, so an exploding
// steepness*S fails here before any state changes.
func (c *Sigmoid) segmentCost(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	upperArea, err := c.antiderivative(upper)
	if err != nil {
		return decimal.Decimal{}, err
	}
	lowerArea, err := c.antiderivative(lower)
	if err != nil {
		return decimal.Decimal{}, err
	}
	cost, err := decimal_math.Sub(upperArea, lowerArea)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return cost, nil
}

func (c *Sigmoid) antiderivative(supply decimal.Decimal) (decimal.Decimal, error) {
	arg, err := decimal_math.Mul(c.steepness, supply)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	expValue, err := decimal_math.Exp(arg)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	term, err := decimal_math.Add(one, expValue)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	lnValue, err := decimal_math.Ln(term)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	factor, err := decimal_math.Div(c.maxPrice, c.steepness)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	area, err := decimal_math.Mul(factor, lnValue)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return area, nil
}
