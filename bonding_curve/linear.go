package bonding_curve

import (
	"fmt"

	"github.com/Signor1/bonding-curve/decimal_math"
	"github.com/shopspring/decimal"
)

// Linear prices tokens at P(S) = slope * S.
type Linear struct {
	slope       decimal.Decimal
	tokenSupply decimal.Decimal
}

func NewLinear(slope decimal.Decimal) (*Linear, error) {
	if slope.Sign() <= 0 {
		return nil, fmt.Errorf("%w: slope must be positive", ErrInvalidInput)
	}
	return &Linear{slope: slope}, nil
}

func (c *Linear) GetPrice() (decimal.Decimal, error) {
	price, err := decimal_math.Mul(c.slope, c.tokenSupply)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return price, nil
}

func (c *Linear) BuyToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Linear) SellToken(amount decimal.Decimal) (decimal.Decimal, error) {
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

func (c *Linear) GetSupply() decimal.Decimal {
	return c.tokenSupply
}

func (c *Linear) GetReserve() (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// segmentCost integrates slope*S over [lower, upper]:
// slope * (upper^2 - lower^2) / 2.
func (c *Linear) segmentCost(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	upperSq, err := decimal_math.Mul(upper, upper)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	lowerSq, err := decimal_math.Mul(lower, lower)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	diff, err := decimal_math.Sub(upperSq, lowerSq)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	halfArea, err := decimal_math.Div(diff, two)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	cost, err := decimal_math.Mul(c.slope, halfArea)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return cost, nil
}
