package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates the inner dimensions of a product disagree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrIndexOutOfRange indicates an element index outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	// ErrDataLength indicates a backing slice whose length is not rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match dimensions")
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = errors.New("matrix: negative dimension")
)

// DimensionError is returned by Multiply when the column count of the first
// operand differs from the row count of the second.
type DimensionError struct {
	Cols int // columns of the first matrix
	Rows int // rows of the second matrix
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: the col number of the first matrix does not match the row number of the second matrix: %d and %d", e.Cols, e.Rows)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// IndexError describes an access to (I, J) in a Rows x Cols matrix.
type IndexError struct {
	Rows, Cols int
	I, J       int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: index not within bound: matrix(%d, %d), i: %d, j: %d", e.Rows, e.Cols, e.I, e.J)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
