package bonding_curve

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertApproxEq(t *testing.T, actual, expected, tolerance decimal.Decimal, msg string) {
	t.Helper()
	if actual.Sub(expected).Abs().GreaterThan(tolerance) {
		t.Fatalf("%s: got %s, want %s", msg, actual, expected)
	}
}

// Supply must always equal the starting supply plus bought minus sold
// amounts, for every supply-integrating variant.
func TestSupplyAccounting(t *testing.T) {
	linear, err := NewLinear(d("0.01"))
	if err != nil {
		t.Fatal("NewLinear() fail", err)
	}
	exponential, err := NewExponential(d("0.001"), d("2"))
	if err != nil {
		t.Fatal("NewExponential() fail", err)
	}
	logarithmic, err := NewLogarithmic(d("2"), d("1"))
	if err != nil {
		t.Fatal("NewLogarithmic() fail", err)
	}
	sigmoid, err := NewSigmoid(d("100"), d("0.01"), d("1000"))
	if err != nil {
		t.Fatal("NewSigmoid() fail", err)
	}

	curves := map[string]BondingCurve{
		"linear":      linear,
		"exponential": exponential,
		"logarithmic": logarithmic,
		"sigmoid":     sigmoid,
	}
	for name, curve := range curves {
		if _, err := curve.BuyToken(d("100")); err != nil {
			t.Fatalf("%s: BuyToken() fail: %v", name, err)
		}
		if _, err := curve.BuyToken(d("40")); err != nil {
			t.Fatalf("%s: BuyToken() fail: %v", name, err)
		}
		if _, err := curve.SellToken(d("65")); err != nil {
			t.Fatalf("%s: SellToken() fail: %v", name, err)
		}
		if !curve.GetSupply().Equal(d("75")) {
			t.Fatalf("%s: supply: got %s, want 75", name, curve.GetSupply())
		}
	}
}
