package bonding_curve

import (
	"errors"
	"fmt"
)

// Error kinds shared by every curve operation. Callers match them with
// errors.Is; the wrapped text carries the diagnostic detail.
var (
	// ErrInvalidInput marks out-of-domain constructor parameters, negative
	// amounts and sells that exceed the current supply.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCalculation marks numeric domain violations and overflow inside
	// the checked fixed-point operations.
	ErrCalculation = errors.New("calculation error")
)

// calculationError tags a decimal_math failure with the shared kind.
func calculationError(err error) error {
	return fmt.Errorf("%w: %v", ErrCalculation, err)
}
