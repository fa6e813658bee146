// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
)

// DefaultValidateNaNInf is the numeric policy applied by NewDense: reject
// NaN/Inf on Set. Distance matrices read from untrusted input should keep
// this on.
const DefaultValidateNaNInf = true

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.At(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
// r, c are dimensions; data holds r*c elements in row-major order.
// validateNaNInf toggles finite-value enforcement in Set (policy default is DefaultValidateNaNInf).
type Dense struct {
	r, c           int       // number of rows and columns
	data           []float64 // flat backing storage (len == r*c)
	validateNaNInf bool      // if true, Set rejects NaN/Inf with ErrNaNInf
}

// Compile-time assertion: *Dense implements the Matrix interface we expose publicly.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense initialized to zeros.
// Validates r>0 && c>0; returns ErrInvalidDimensions on failure.
// Complexity: O(r*c) due to zero-fill by make.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate requested shape (strictly positive).
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate contiguous row-major storage.
	buf := make([]float64, rows*cols) // zero-initialized

	// Initialize with the default numeric policy (DefaultValidateNaNInf).
	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Dim returns the matrix's row count, satisfying quartet.DistanceMatrix
// for the square distance matrices that package operates on.
func (m *Dense) Dim() int {
	return m.r
}

// indexOf computes the flat offset for (row,col) or returns a sentinel.
// It does *not* panic; it validates both indices and returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Row-major offset: i*cols + j.
	return row*m.c + col, nil
}

// At retrieves element at (row, col).
// Returns ErrOutOfRange on index violation.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col) // bounds check + offset
	if err != nil {
		return 0, err
	}

	return m.data[off], nil // read from flat storage
}

// Set writes value v at (row, col).
// Returns ErrOutOfRange on index violation, ErrNaNInf if validation is enabled.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col) // bounds check + offset
	if err != nil {
		return err
	}
	// Enforce numeric policy if enabled.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[off] = v // store value

	return nil
}

// Clone returns a deep copy of the matrix (data buffer is duplicated).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate new buffer
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve numeric policy
	}
}

// String provides a simple row-wise dump for debugging/logging.
// Complexity: O(r*c) formatting cost.
func (m *Dense) String() string {
	// Build with Go's default string concatenation and one fmt.Sprintf per
	// cell; acceptable for debugging, not meant for hot paths.
	out := ""
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		out += "["                // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// Direct offset computation to avoid re-bounds in At.
			out += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j+1 < m.c {
				out += ", " // separate values with comma
			}
		}
		out += "]\n" // close row
	}

	return out
}
