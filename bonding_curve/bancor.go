package bonding_curve

import (
	"fmt"

	"github.com/Signor1/bonding-curve/decimal_math"
	"github.com/shopspring/decimal"
)

// Bancor prices tokens from a reserve ratio rather than a supply integral:
// P = reserve / (supply * connectorWeight). Buys deposit reserve and mint
// tokens; sells burn tokens and release reserve.
type Bancor struct {
	reserveBalance  decimal.Decimal
	tokenSupply     decimal.Decimal
	connectorWeight decimal.Decimal
}

func NewBancor(reserveBalance, tokenSupply, connectorWeight decimal.Decimal) (*Bancor, error) {
	if connectorWeight.Sign() <= 0 || connectorWeight.GreaterThan(one) {
		return nil, fmt.Errorf("%w: connector weight must be within (0, 1]", ErrInvalidInput)
	}
	if reserveBalance.Sign() < 0 || tokenSupply.Sign() < 0 {
		return nil, fmt.Errorf("%w: reserve and supply must be non-negative", ErrInvalidInput)
	}
	// A reserve without supply, or supply without reserve, has no defined
	// price; an uninitialized pool has both at zero.
	if reserveBalance.IsZero() != tokenSupply.IsZero() {
		return nil, fmt.Errorf("%w: reserve and supply must both be zero or both be positive", ErrInvalidInput)
	}
	return &Bancor{
		reserveBalance:  reserveBalance,
		tokenSupply:     tokenSupply,
		connectorWeight: connectorWeight,
	}, nil
}

func (c *Bancor) GetPrice() (decimal.Decimal, error) {
	if c.tokenSupply.IsZero() {
		return decimal.Zero, nil
	}
	weighted, err := decimal_math.Mul(c.tokenSupply, c.connectorWeight)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	price, err := decimal_math.Div(c.reserveBalance, weighted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	return price, nil
}

// BuyToken deposits reserveAmount into the reserve and returns the tokens
// minted: supply * ((1 + reserveAmount/reserve)^weight - 1).
func (c *Bancor) BuyToken(reserveAmount decimal.Decimal) (decimal.Decimal, error) {
	if reserveAmount.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: reserve amount must be non-negative", ErrInvalidInput)
	}
	if c.reserveBalance.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: cannot buy from a curve with zero reserve", ErrInvalidInput)
	}
	if reserveAmount.IsZero() {
		return decimal.Zero, nil
	}

	ratio, err := decimal_math.Div(reserveAmount, c.reserveBalance)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	base, err := decimal_math.Add(one, ratio)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	powered, err := decimal_math.Pow(base, c.connectorWeight)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	growth, err := decimal_math.Sub(powered, one)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	minted, err := decimal_math.Mul(c.tokenSupply, growth)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	newReserve, err := decimal_math.Add(c.reserveBalance, reserveAmount)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	newSupply, err := decimal_math.Add(c.tokenSupply, minted)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}

	c.reserveBalance = newReserve
	c.tokenSupply = newSupply
	return minted, nil
}

// SellToken burns tokenAmount and returns the reserve released:
// reserve * (1 - (1 - tokenAmount/supply)^weight).
func (c *Bancor) SellToken(tokenAmount decimal.Decimal) (decimal.Decimal, error) {
	if tokenAmount.Sign() < 0 || tokenAmount.GreaterThan(c.tokenSupply) {
		return decimal.Decimal{}, fmt.Errorf("%w: token amount must be within [0, supply]", ErrInvalidInput)
	}
	if tokenAmount.IsZero() {
		return decimal.Zero, nil
	}
	// Selling the entire supply drains the reserve exactly.
	if tokenAmount.Equal(c.tokenSupply) {
		released := c.reserveBalance
		c.reserveBalance = decimal.Zero
		c.tokenSupply = decimal.Zero
		return released, nil
	}

	ratio, err := decimal_math.Div(tokenAmount, c.tokenSupply)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	remainder, err := decimal_math.Sub(one, ratio)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	powered, err := decimal_math.Pow(remainder, c.connectorWeight)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	share, err := decimal_math.Sub(one, powered)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	released, err := decimal_math.Mul(c.reserveBalance, share)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}
	newReserve, err := decimal_math.Sub(c.reserveBalance, released)
	if err != nil {
		return decimal.Decimal{}, calculationError(err)
	}

	c.reserveBalance = newReserve
	c.tokenSupply = c.tokenSupply.Sub(tokenAmount)
	return released, nil
}

func (c *Bancor) GetSupply() decimal.Decimal {
	return c.tokenSupply
}

func (c *Bancor) GetReserve() (decimal.Decimal, bool) {
	return c.reserveBalance, true
}
