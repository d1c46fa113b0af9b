package secp256k1

import (
	"errors"
	"fmt"
	"math/big"
)

// The checked entry points fail in exactly two ways. Both sentinels
// can be tested with errors.Is; the concrete types below carry the
// offending values for errors.As.
var (
	ErrInvalidCoordinate = errors.New("coordinate outside the field range")
	ErrInvalidPoint      = errors.New("point is neither infinity nor on the curve")
)

// InvalidCoordinateError reports a coordinate that is negative or >= P.
// It is always surfaced before any algebraic test runs.
type InvalidCoordinateError struct {
	Value *big.Int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("secp256k1: coordinate %s outside the field range", e.Value.Text(16))
}

func (e *InvalidCoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// InvalidPointError reports an in-range coordinate pair that is neither
// the point at infinity nor a solution of y² = x³ + 7.
type InvalidPointError struct {
	X, Y *big.Int
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("secp256k1: point (%s, %s) is not on the curve", e.X.Text(16), e.Y.Text(16))
}

func (e *InvalidPointError) Unwrap() error {
	return ErrInvalidPoint
}
