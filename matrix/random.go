package matrix

import "fmt"

// Source supplies uniformly distributed float32 values in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// NewRandom returns a rows x cols matrix filled in row-major order with
// successive draws from src. A zero dimension yields an empty matrix and
// consumes no draws.
func NewRandom(rows, cols int, src Source) Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("%w: (%d, %d)", ErrNegativeDimension, rows, cols))
	}
	data := make([]float32, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, src.Float32())
		}
	}
	return Matrix{rows: rows, cols: cols, data: data}
}
