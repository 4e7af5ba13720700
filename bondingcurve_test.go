package bondingcurve

import (
	"testing"

	"github.com/Signor1/bonding-curve/bonding_curve/helpers"
	"github.com/shopspring/decimal"
)

func TestBuildCurve(t *testing.T) {
	curve, err := BuildCurve(helpers.BuildCurveParams{
		CurveType: helpers.CurveTypeLinear,
		Slope:     decimal.RequireFromString("0.01"),
	})
	if err != nil {
		t.Fatal("BuildCurve() fail", err)
	}

	cost, err := curve.BuyToken(decimal.NewFromInt(100))
	if err != nil {
		t.Fatal("BuyToken() fail", err)
	}
	if !cost.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("cost: got %s, want 50", cost)
	}
}

func TestBuildCurveFromJSON(t *testing.T) {
	curve, err := BuildCurveFromJSON(`{"curveType":"bancor","reserveBalance":1000,"tokenSupply":100,"connectorWeight":"0.5"}`)
	if err != nil {
		t.Fatal("BuildCurveFromJSON() fail", err)
	}

	price, err := curve.GetPrice()
	if err != nil {
		t.Fatal("GetPrice() fail", err)
	}
	if !price.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("price: got %s, want 20", price)
	}
}
