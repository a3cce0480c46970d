// Package missing implements the missing-info table derived from a
// dataset's boolean missingness mask.
package missing

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/johnpierman/pgmgo/containers"
)

// Table holds every derived quantity of a boolean missingness mask,
// computed eagerly at construction and read-only thereafter.
type Table struct {
	labels containers.Labels

	maskByCol []bool
	maskByRow []bool

	count      int
	countByCol []int
	countByRow []int

	rate      float64
	rateByCol []float64
	rateByRow []float64

	corr *mat.SymDense
	cov  *mat.SymDense

	fullyObserved      []int
	partiallyObserved  []int
}

// New builds a Table from labels and an n x p boolean mask, using gonum's
// stat package for the Pearson correlation/covariance of the mask's
// columns (cast to 0/1 reals), computed with an (N-1) denominator.
func New(labels containers.Labels, mask [][]bool) (*Table, error) {
	n := len(mask)
	p := labels.Len()
	for i, row := range mask {
		if len(row) != p {
			return nil, containers.ErrShape("mask row %d has %d columns, expected %d", i, len(row), p)
		}
	}

	t := &Table{
		labels:     labels,
		maskByCol:  make([]bool, p),
		maskByRow:  make([]bool, n),
		countByCol: make([]int, p),
		countByRow: make([]int, n),
		rateByCol:  make([]float64, p),
		rateByRow:  make([]float64, n),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			if mask[i][j] {
				t.count++
				t.countByCol[j]++
				t.countByRow[i]++
				t.maskByCol[j] = true
				t.maskByRow[i] = true
			}
		}
	}

	if n > 0 && p > 0 {
		t.rate = float64(t.count) / float64(n*p)
	}
	for j := 0; j < p; j++ {
		if n > 0 {
			t.rateByCol[j] = float64(t.countByCol[j]) / float64(n)
		}
		if t.countByCol[j] == 0 {
			t.fullyObserved = append(t.fullyObserved, j)
		} else {
			t.partiallyObserved = append(t.partiallyObserved, j)
		}
	}
	for i := 0; i < n; i++ {
		if p > 0 {
			t.rateByRow[i] = float64(t.countByRow[i]) / float64(p)
		}
	}

	if n > 1 && p > 0 {
		data := mat.NewDense(n, p, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < p; j++ {
				if mask[i][j] {
					data.Set(i, j, 1)
				}
			}
		}

		cov := mat.NewSymDense(p, nil)
		for a := 0; a < p; a++ {
			colA := mat.Col(nil, a, data)
			for b := a; b < p; b++ {
				colB := mat.Col(nil, b, data)
				cov.SetSym(a, b, stat.Covariance(colA, colB, nil))
			}
		}
		t.cov = cov

		corr := mat.NewSymDense(p, nil)
		for a := 0; a < p; a++ {
			colA := mat.Col(nil, a, data)
			for b := a; b < p; b++ {
				colB := mat.Col(nil, b, data)
				c := stat.Correlation(colA, colB, nil)
				if colA == nil || allEqual(colA) || allEqual(colB) {
					c = 0
				}
				corr.SetSym(a, b, c)
			}
		}
		t.corr = corr
	}

	return t, nil
}

func allEqual(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			return false
		}
	}
	return true
}

func (t *Table) Labels() containers.Labels { return t.labels }
func (t *Table) Count() int                { return t.count }
func (t *Table) CountByCol() []int         { return append([]int(nil), t.countByCol...) }
func (t *Table) CountByRow() []int         { return append([]int(nil), t.countByRow...) }
func (t *Table) Rate() float64             { return t.rate }
func (t *Table) RateByCol() []float64      { return append([]float64(nil), t.rateByCol...) }
func (t *Table) RateByRow() []float64      { return append([]float64(nil), t.rateByRow...) }
func (t *Table) MaskByCol() []bool         { return append([]bool(nil), t.maskByCol...) }
func (t *Table) MaskByRow() []bool         { return append([]bool(nil), t.maskByRow...) }

// Cov returns the (N-1)-denominator covariance matrix of the mask's
// columns, or nil if fewer than 2 rows were supplied.
func (t *Table) Cov() *mat.SymDense { return t.cov }

// Corr returns the Pearson correlation matrix of the mask's columns, or
// nil if fewer than 2 rows were supplied.
func (t *Table) Corr() *mat.SymDense { return t.corr }

// FullyObserved returns the column indices with zero missing entries.
func (t *Table) FullyObserved() []int { return append([]int(nil), t.fullyObserved...) }

// PartiallyObserved returns the column indices with at least one missing
// entry.
func (t *Table) PartiallyObserved() []int { return append([]int(nil), t.partiallyObserved...) }
