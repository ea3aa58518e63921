// Package embedding implements a flat row-major embedding table view.
package embedding

import "math/rand"

import "github.com/pkg/errors"

// ErrShape is returned when a flat buffer cannot be split into rows of the requested width.
var ErrShape = errors.New("embedding: bad shape")

// Table is a borrowed, row-major view over a caller owned buffer.
// Row i occupies Data[i*Dim : (i+1)*Dim].
type Table struct {
	Data []float64
	Dim  int
}

// New wraps data as a table of rows of width dim. The buffer is not copied.
func New(data []float64, dim int) (Table, error) {
	if dim <= 0 {
		return Table{}, errors.Wrapf(ErrShape, "dim %d", dim)
	}
	if len(data)%dim != 0 {
		return Table{}, errors.Wrapf(ErrShape, "len %d is not a multiple of dim %d", len(data), dim)
	}
	return Table{Data: data, Dim: dim}, nil
}

// Alloc allocates a zeroed table of rows x dim.
func Alloc(rows, dim int) Table {
	return Table{Data: make([]float64, rows*dim), Dim: dim}
}

// Rows returns the number of rows in the table.
func (t Table) Rows() int {
	if t.Dim == 0 {
		return 0
	}
	return len(t.Data) / t.Dim
}

// Row returns row i aliasing the table storage.
func (t Table) Row(i int) []float64 {
	return t.Data[i*t.Dim : (i+1)*t.Dim : (i+1)*t.Dim]
}

// Randomize fills the table with uniform values in [-scale/2, scale/2).
func (t Table) Randomize(rng *rand.Rand, scale float64) {
	for i := range t.Data {
		t.Data[i] = (rng.Float64() - 0.5) * scale
	}
}
