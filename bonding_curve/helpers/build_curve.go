// Package helpers constructs bonding curves from parameter structs and
// JSON configuration documents.
package helpers

import (
	"fmt"

	"github.com/Signor1/bonding-curve/bonding_curve"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// CurveType selects a pricing curve variant.
type CurveType string

const (
	CurveTypeLinear      CurveType = "linear"
	CurveTypeExponential CurveType = "exponential"
	CurveTypeLogarithmic CurveType = "logarithmic"
	CurveTypeSigmoid     CurveType = "sigmoid"
	CurveTypeBancor      CurveType = "bancor"
)

// BuildCurveParams carries the union of the variant parameters; only the
// fields of the selected CurveType are read.
type BuildCurveParams struct {
	CurveType CurveType

	// linear
	Slope decimal.Decimal

	// exponential, logarithmic
	Coefficient decimal.Decimal

	// exponential
	Exponent decimal.Decimal

	// logarithmic
	Constant decimal.Decimal

	// sigmoid
	MaxPrice  decimal.Decimal
	Steepness decimal.Decimal
	Midpoint  decimal.Decimal

	// bancor
	ReserveBalance  decimal.Decimal
	TokenSupply     decimal.Decimal
	ConnectorWeight decimal.Decimal
}

// BuildCurve constructs the curve selected by params.CurveType, passing
// the relevant fields through the variant constructor's validation.
func BuildCurve(params BuildCurveParams) (bonding_curve.BondingCurve, error) {
	switch params.CurveType {
	case CurveTypeLinear:
		return bonding_curve.NewLinear(params.Slope)
	case CurveTypeExponential:
		return bonding_curve.NewExponential(params.Coefficient, params.Exponent)
	case CurveTypeLogarithmic:
		return bonding_curve.NewLogarithmic(params.Coefficient, params.Constant)
	case CurveTypeSigmoid:
		return bonding_curve.NewSigmoid(params.MaxPrice, params.Steepness, params.Midpoint)
	case CurveTypeBancor:
		return bonding_curve.NewBancor(params.ReserveBalance, params.TokenSupply, params.ConnectorWeight)
	default:
		return nil, fmt.Errorf("%w: unknown curve type %q", bonding_curve.ErrInvalidInput, params.CurveType)
	}
}

// BuildCurveFromJSON builds a curve from a JSON document such as
//
//	{"curveType":"linear","slope":"0.01"}
//
// Numeric fields may be JSON numbers or strings; strings keep full decimal
// precision through the parse.
func BuildCurveFromJSON(doc string) (bonding_curve.BondingCurve, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: malformed curve config document", bonding_curve.ErrInvalidInput)
	}

	params := BuildCurveParams{
		CurveType: CurveType(gjson.Get(doc, "curveType").String()),
	}
	fields := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"slope", &params.Slope},
		{"coefficient", &params.Coefficient},
		{"exponent", &params.Exponent},
		{"constant", &params.Constant},
		{"maxPrice", &params.MaxPrice},
		{"steepness", &params.Steepness},
		{"midpoint", &params.Midpoint},
		{"reserveBalance", &params.ReserveBalance},
		{"tokenSupply", &params.TokenSupply},
		{"connectorWeight", &params.ConnectorWeight},
	}
	for _, field := range fields {
		value := gjson.Get(doc, field.name)
		if !value.Exists() {
			continue
		}
		parsed, err := decimal.NewFromString(value.String())
		if err != nil {
			return nil, fmt.Errorf("%w: field %q is not numeric", bonding_curve.ErrInvalidInput, field.name)
		}
		*field.dst = parsed
	}

	return BuildCurve(params)
}
