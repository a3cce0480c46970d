package data

import "github.com/johnpierman/pgmgo/containers"

// RowCounter is implemented by every table/collection variant that has a
// well defined number of rows, which is all Weighted needs to validate a
// per-row weight vector.
type RowCounter interface {
	NRows() int
}

// Weighted pairs any dataset variant with a per-row weight in [0,1]
//. CatWtdTable and GaussWtdTable are
// instantiations of this single generic rather than two hand-duplicated
// types, since the only operation they need — an effective sample size —
// is variant-agnostic.
type Weighted[T RowCounter] struct {
	Table   T
	Weights []float64
}

// NewWeighted validates that Weights has one entry per row, each in
// [0,1].
func NewWeighted[T RowCounter](table T, weights []float64) (*Weighted[T], error) {
	if len(weights) != table.NRows() {
		return nil, containers.ErrShape("weights has %d entries, expected %d", len(weights), table.NRows())
	}
	for i, w := range weights {
		if w < 0 || w > 1 {
			return nil, containers.ErrInvalidArgument("weight at row %d is %g, must be in [0,1]", i, w)
		}
	}
	out := make([]float64, len(weights))
	copy(out, weights)
	return &Weighted[T]{Table: table, Weights: out}, nil
}

// EffectiveSampleSize returns the sum of the per-row weights.
func (w *Weighted[T]) EffectiveSampleSize() float64 {
	sum := 0.0
	for _, v := range w.Weights {
		sum += v
	}
	return sum
}

// CatWtdTable is a complete categorical table with per-row weights.
type CatWtdTable = Weighted[*CatTable]

// GaussWtdTable is a complete Gaussian table with per-row weights.
type GaussWtdTable = Weighted[*GaussTable]
