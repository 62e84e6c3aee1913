package matrix

import (
	"fmt"
	"math"
)

// Matrix is a dense rows x cols matrix of float32 stored in row-major order.
// The zero value is the empty 0x0 matrix.
type Matrix struct {
	rows, cols int
	data       []float32
}

// New returns a rows x cols matrix backed by a copy of data.
func New(rows, cols int, data []float32) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%w: (%d, %d)", ErrNegativeDimension, rows, cols)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d elements for matrix(%d, %d)", ErrDataLength, len(data), rows, cols)
	}
	cp := make([]float32, len(data))
	copy(cp, data)
	return Matrix{rows: rows, cols: cols, data: cp}, nil
}

// Empty returns the 0x0 matrix.
func Empty() Matrix {
	return Matrix{rows: 0, cols: 0, data: []float32{}}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	if n < 0 {
		panic(fmt.Errorf("%w: (%d, %d)", ErrNegativeDimension, n, n))
	}
	data := make([]float32, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return Matrix{rows: n, cols: n, data: data}
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

// Dims returns the shape of m as (rows, cols).
func (m Matrix) Dims() (int, int) { return m.rows, m.cols }

// Len returns the number of elements, rows*cols.
func (m Matrix) Len() int { return len(m.data) }

// Data returns a copy of the row-major backing slice.
func (m Matrix) Data() []float32 {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)
	return cp
}

// Get returns element (i, j). It panics with an *IndexError if the index
// lies outside the matrix.
func (m Matrix) Get(i, j int) float32 {
	if !m.inBounds(i, j) {
		panic(&IndexError{Rows: m.rows, Cols: m.cols, I: i, J: j})
	}
	return m.data[i*m.cols+j]
}

// At is Get without the panic.
func (m Matrix) At(i, j int) (float32, error) {
	if !m.inBounds(i, j) {
		return 0, &IndexError{Rows: m.rows, Cols: m.cols, I: i, J: j}
	}
	return m.data[i*m.cols+j], nil
}

func (m Matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// Multiply returns the product a*b. It fails with a *DimensionError when
// a.Cols() != b.Rows(). Neither operand is modified.
func Multiply(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, &DimensionError{Cols: a.cols, Rows: b.rows}
	}
	rows, inner, cols := a.rows, a.cols, b.cols
	data := make([]float32, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum float32
			for k := 0; k < inner; k++ {
				// the conversion forces rounding of the product and keeps
				// the compiler from fusing it into an FMA
				sum += float32(a.Get(i, k) * b.Get(k, j))
			}
			data = append(data, sum)
		}
	}
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// Equal reports whether m and b have the same shape and bit-identical
// elements.
func (m Matrix) Equal(b Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, v := range m.data {
		if math.Float32bits(v) != math.Float32bits(b.data[i]) {
			return false
		}
	}
	return true
}

// EqualApprox is Equal with an absolute tolerance on each element.
func (m Matrix) EqualApprox(b Matrix, tol float32) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, v := range m.data {
		d := v - b.data[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}
