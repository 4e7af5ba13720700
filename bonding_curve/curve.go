// Package bonding_curve computes token prices and trade costs under the
// closed-form bonding curve variants: Linear, Exponential, Logarithmic,
// Sigmoid and Bancor. A curve instance owns its supply (and reserve, for
// Bancor) state; every operation either fully applies or fails with the
// state untouched.
package bonding_curve

import "github.com/shopspring/decimal"

// BondingCurve is the pricing contract implemented by every curve variant.
// Instances are plain value objects with no internal locking; a caller
// sharing one across goroutines must serialize access itself.
type BondingCurve interface {
	// GetPrice returns the spot price at the current state.
	GetPrice() (decimal.Decimal, error)

	// BuyToken applies a purchase. For the supply-integrating curves the
	// amount is a token quantity and the result is its cost; for Bancor
	// the amount is a reserve deposit and the result is the tokens minted.
	BuyToken(amount decimal.Decimal) (decimal.Decimal, error)

	// SellToken applies a sale of a token quantity and returns the refund
	// (the reserve released, for Bancor).
	SellToken(amount decimal.Decimal) (decimal.Decimal, error)

	// GetSupply returns the current token supply.
	GetSupply() decimal.Decimal

	// GetReserve returns the tracked reserve balance; the second result is
	// false for the variants that do not track one.
	GetReserve() (decimal.Decimal, bool)
}

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

var (
	_ BondingCurve = (*Linear)(nil)
	_ BondingCurve = (*Exponential)(nil)
	_ BondingCurve = (*Logarithmic)(nil)
	_ BondingCurve = (*Sigmoid)(nil)
	_ BondingCurve = (*Bancor)(nil)
)
