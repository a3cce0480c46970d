package data

import (
	"math"

	"github.com/johnpierman/pgmgo/containers"
)

// GaussTable is a complete real-valued n_samples x n_variables matrix; the
// invariant for the complete variant is that every entry is finite.
type GaussTable struct {
	labels containers.Labels
	values [][]float64
}

// NewGaussTable builds a normalised complete Gaussian table.
func NewGaussTable(labels []string, values [][]float64) (*GaussTable, error) {
	lbl, remapped, err := normalizeGaussian(labels, values, false)
	if err != nil {
		return nil, err
	}
	return &GaussTable{labels: lbl, values: remapped}, nil
}

func (t *GaussTable) Labels() containers.Labels { return t.labels }
func (t *GaussTable) NRows() int                { return len(t.values) }
func (t *GaussTable) NCols() int                { return t.labels.Len() }
func (t *GaussTable) Value(row, col int) float64 { return t.values[row][col] }

// Row returns a copy of row i.
func (t *GaussTable) Row(i int) []float64 {
	out := make([]float64, len(t.values[i]))
	copy(out, t.values[i])
	return out
}

// Column returns a copy of the column for label name.
func (t *GaussTable) Column(name string) []float64 {
	j := t.labels.IndexOf(name)
	out := make([]float64, t.NRows())
	for i := range out {
		out[i] = t.values[i][j]
	}
	return out
}

// GaussIncTable is an incomplete Gaussian table: a distinguished NaN marks
// "missing"; any other non-finite value is rejected.
type GaussIncTable struct {
	labels containers.Labels
	values [][]float64
}

// NewGaussIncTable builds a normalised incomplete Gaussian table.
func NewGaussIncTable(labels []string, values [][]float64) (*GaussIncTable, error) {
	lbl, remapped, err := normalizeGaussian(labels, values, true)
	if err != nil {
		return nil, err
	}
	return &GaussIncTable{labels: lbl, values: remapped}, nil
}

func (t *GaussIncTable) Labels() containers.Labels  { return t.labels }
func (t *GaussIncTable) NRows() int                 { return len(t.values) }
func (t *GaussIncTable) NCols() int                 { return t.labels.Len() }
func (t *GaussIncTable) Value(row, col int) float64 { return t.values[row][col] }
func (t *GaussIncTable) IsMissing(row, col int) bool {
	return math.IsNaN(t.values[row][col])
}

// Mask returns the boolean missingness mask M[i][j].
func (t *GaussIncTable) Mask() [][]bool {
	mask := make([][]bool, t.NRows())
	for i, row := range t.values {
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			mask[i][j] = math.IsNaN(v)
		}
	}
	return mask
}

func normalizeGaussian(labels []string, values [][]float64, allowMissing bool) (containers.Labels, [][]float64, error) {
	if len(labels) == 0 {
		return containers.Labels{}, nil, containers.ErrInvalidArgument("at least one label is required")
	}
	for i, row := range values {
		if len(row) != len(labels) {
			return containers.Labels{}, nil, containers.ErrShape("row %d has %d columns, expected %d", i, len(row), len(labels))
		}
	}

	perm, sorted, err := containers.SortPermutation(labels)
	if err != nil {
		return containers.Labels{}, nil, err
	}

	out := make([][]float64, len(values))
	for i, row := range values {
		newRow := make([]float64, len(row))
		for newCol, origCol := range perm {
			v := row[origCol]
			if math.IsNaN(v) {
				if !allowMissing {
					return containers.Labels{}, nil, containers.ErrNonFinite("row %d column %q is NaN in a complete table", i, labels[origCol])
				}
			} else if math.IsInf(v, 0) {
				return containers.Labels{}, nil, containers.ErrNonFinite("row %d column %q is infinite", i, labels[origCol])
			}
			newRow[newCol] = v
		}
		out[i] = newRow
	}

	return sorted, out, nil
}
