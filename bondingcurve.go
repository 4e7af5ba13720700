package bondingcurve

import (
	"github.com/Signor1/bonding-curve/bonding_curve/helpers"
)

// BuildCurve constructs a pricing curve from a parameter struct.
//
// Example:
//
// curve, _ := BuildCurve(helpers.BuildCurveParams{CurveType: helpers.CurveTypeLinear, Slope: decimal.RequireFromString("0.01")})
//
// cost, _ := curve.BuyToken(decimal.NewFromInt(100))
var BuildCurve = helpers.BuildCurve

// BuildCurveFromJSON constructs a pricing curve from a JSON document.
//
// Example:
//
// curve, _ := BuildCurveFromJSON(`{"curveType":"bancor","reserveBalance":1000,"tokenSupply":100,"connectorWeight":"0.5"}`)
//
// price, _ := curve.GetPrice()
var BuildCurveFromJSON = helpers.BuildCurveFromJSON
