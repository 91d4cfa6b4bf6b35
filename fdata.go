package ddplot

import "fmt"

// FData is an ordered set of functional samples discretized on a
// common grid: Values[i][j] is the value of sample i at Grid[j].
// Name is an optional display name; "" means unset.
//
// FData is treated as read-only by this package and is referenced,
// never copied.
type FData struct {
	Name   string
	Grid   []float64
	Values [][]float64
}

// NewFData builds an FData from a grid and per-sample value rows.
// Every row must have exactly one value per grid point. No further
// validation is done here.
func NewFData(grid []float64, values [][]float64) (*FData, error) {
	for i, row := range values {
		if len(row) != len(grid) {
			return nil, fmt.Errorf("ddplot: sample %d has %d points, grid has %d",
				i, len(row), len(grid))
		}
	}
	return &FData{Grid: grid, Values: values}, nil
}

// NSamples returns the number of samples in the dataset.
func (f *FData) NSamples() int { return len(f.Values) }

// NPoints returns the number of grid points per sample.
func (f *FData) NPoints() int { return len(f.Grid) }

// Codomain returns the dimension of the sample values. Discretized
// FData curves are real-valued, so it is always 1; figure layout is
// keyed on it anyway.
func (f *FData) Codomain() int { return 1 }

// Sample returns the values of sample i. The returned slice is the
// backing row, not a copy.
func (f *FData) Sample(i int) []float64 { return f.Values[i] }
