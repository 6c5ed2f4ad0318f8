// SPDX-License-Identifier: MIT
// Package partition: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. Transforms never return a
// partially built partition together with an error.

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for argument-domain violations.
	ErrInvalidArgument = errors.New("partition: invalid argument")

	// ErrAlphaNotPositive is returned by the alpha-cut family when alpha <= 0 or NaN.
	ErrAlphaNotPositive = fmt.Errorf("%w: alpha must be bigger than zero", ErrInvalidArgument)

	// ErrAlphaAboveMax is returned by the alpha-cut family when some column's
	// maximum is not strictly greater than alpha (the cut would be empty there).
	ErrAlphaAboveMax = fmt.Errorf("%w: alpha must be lower than maximum value in any column", ErrInvalidArgument)

	// ErrShape marks malformed input matrices: empty, ragged, zero rows or zero columns.
	ErrShape = errors.New("partition: malformed matrix")

	// ErrDimensionMismatch is returned by binary measures when the operands differ in shape.
	ErrDimensionMismatch = errors.New("partition: dimension mismatch")

	// ErrNilPartition indicates a nil *Partition argument.
	ErrNilPartition = errors.New("partition: nil partition")

	// ErrIllDefined is returned when a measure's denominator vanishes while its
	// numerator does not, so no finite value exists.
	ErrIllDefined = errors.New("partition: numerically ill-defined")
)

// Operation tags for error wrapping (grep-able, no magic strings).
const (
	opNew              = "New"
	opNewRandom        = "NewRandom"
	opFromMat          = "FromMat"
	opAlphaCut         = "AlphaCut"
	opComplementAlpha  = "ComplementAlphaCut"
	opAlphaApproximate = "AlphaApproximate"
	opSharpnessDegree  = "SharpnessDegree"
	opAlphaEquivalent  = "AlphaEquivalent"
	opIsSharpeningOf   = "IsSharpeningOf"
	opAt               = "At"
	opColumn           = "Column"
)

// partitionErrorf wraps err with an operation tag, preserving the sentinel.
func partitionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
