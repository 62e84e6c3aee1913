package matrix_test

import (
	"fmt"
	"math/rand"

	"matmul/matrix"
)

func ExampleMultiply() {
	a, _ := matrix.New(2, 3, []float32{1, 2, 3, 4, 5, 6})
	b, _ := matrix.New(3, 2, []float32{0.5, 1, 0.5, 1, 0.5, 1})
	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Dims())
	fmt.Println(c.Data())
	// Output:
	// 2 2
	// [3 6 7.5 15]
}

func ExampleMultiply_mismatch() {
	a := matrix.NewRandom(2, 3, rand.New(rand.NewSource(1)))
	b := matrix.NewRandom(4, 5, rand.New(rand.NewSource(1)))
	_, err := matrix.Multiply(a, b)
	fmt.Println(err)
	// Output:
	// matrix: the col number of the first matrix does not match the row number of the second matrix: 3 and 4
}

func ExampleMatrix_String() {
	fmt.Println(matrix.Identity(100))
	// Output:
	// Matrix(100, 100)
}
