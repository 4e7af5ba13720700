// Package decimal_math provides checked fixed-point arithmetic over
// shopspring decimals. Every result carries Scale fractional digits and is
// kept inside the range of a signed 64.64 fixed-point value; an operation
// that would leave that range reports an error instead of returning a
// truncated or wrapped number, so results are reproducible bit-for-bit
// across platforms.
package decimal_math

import "github.com/shopspring/decimal"

const (
	// Scale is the number of fractional digits carried by every result.
	Scale = 18

	// divPrecision is the fractional precision used for divisions inside
	// the iterative routines before the final rounding to Scale.
	divPrecision = 30
)

var (
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)
	half = decimal.RequireFromString("0.5")

	// maxMagnitude is 2^63, the integer bound of a signed 64.64 value.
	maxMagnitude = decimal.RequireFromString("9223372036854775808")

	// maxExpArg is 63*ln(2); e^x cannot fit the range above it.
	maxExpArg = decimal.RequireFromString("43.668272375276554")

	seriesEpsilon = decimal.New(1, -(Scale + 8))
	newtonEpsilon = decimal.New(1, -(Scale + 6))
)

func outOfRange(x decimal.Decimal) bool {
	return x.Abs().Cmp(maxMagnitude) >= 0
}
