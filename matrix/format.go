package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// summaryLimit is the smallest dimension rendered as a summary instead of
// element by element.
const summaryLimit = 5

// String renders every element when both dimensions are below 5, one row
// per line with each value right-aligned in a 5 wide field and followed by
// a space. Larger matrices render as "Matrix(rows, cols)".
func (m Matrix) String() string {
	if m.rows >= summaryLimit || m.cols >= summaryLimit {
		return fmt.Sprintf("Matrix(%d, %d)", m.rows, m.cols)
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%5s ", formatValue(m.Get(i, j)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the String form of m to w.
func (m Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

// formatValue returns the shortest decimal form that round-trips v as a
// float32, without an exponent.
func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
