// SPDX-License-Identifier: MIT

// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." so that wrapped errors stay
// greppable. Context is attached with fmt.Errorf("ctx: %w", ErrX); callers
// match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index tuple is outside the tensor bounds
	// or has the wrong number of coordinates.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrAxisOutOfRange indicates that an axis argument is not in [0, rank).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands or
	// between a shape and the length of the supplied data.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNilTensor indicates that a nil *Dense was used as an operand.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf tags a sentinel with the operation that produced it.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
