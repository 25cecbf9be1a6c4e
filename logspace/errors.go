// SPDX-License-Identifier: MIT

package logspace

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates two operands disagree on length, e.g. a
	// Prod of vectors of different sizes or a LogContract message whose length
	// differs from the contracted axis.
	ErrLengthMismatch = errors.New("logspace: length mismatch")

	// ErrNilOperand indicates a nil vector or tensor operand.
	ErrNilOperand = errors.New("logspace: nil operand")
)

func logspaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
