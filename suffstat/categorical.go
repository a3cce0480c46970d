// Package suffstat implements the sufficient statistics engine: fit over
// categorical, trajectory and Gaussian datasets, a parallel par_fit for
// complete categorical tables only (trajectory and Gaussian fits run
// serially), and a
// configurable missing-data method (LW, PW, IPW, AIPW) for incomplete
// categorical tables.
package suffstat

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
)

// CategoricalStats is the sufficient statistics bundle for a categorical
// CPD fit: a (|Z|_flat x |X|_flat) count matrix and its total.
type CategoricalStats struct {
	X, Z       containers.States
	Nxz        *mat.Dense
	SampleSize float64
}

// chunkSize is the default row-partition length for ParFitCategorical.
const chunkSize = 1 << 14

// rowValue reads the byte code of variable name at row i.
type rowValue func(row int, name string) byte

// accumulate is the shared core of fit/par_fit: it builds X/Z RMIs from
// states and sums weight(row) into Nxz[ravelZ, ravelX] for every row.
func accumulate(states containers.States, x, z containers.Labels, nRows int, value rowValue, weight func(row int) float64) (*CategoricalStats, error) {
	xStates := states.Restrict(x)
	zStates := states.Restrict(z)
	xRMI := containers.NewRMI(xStates.Shape())
	zRMI := containers.NewRMI(zStates.Shape())

	nxz := mat.NewDense(zRMI.Size(), xRMI.Size(), nil)
	sampleSize := 0.0

	xNames, zNames := x.Names(), z.Names()
	xIdx := make([]int, len(xNames))
	zIdx := make([]int, len(zNames))

	for row := 0; row < nRows; row++ {
		for i, n := range xNames {
			xIdx[i] = int(value(row, n))
		}
		for i, n := range zNames {
			zIdx[i] = int(value(row, n))
		}
		xOff, err := xRMI.Ravel(xIdx)
		if err != nil {
			return nil, err
		}
		zOff, err := zRMI.Ravel(zIdx)
		if err != nil {
			return nil, err
		}
		w := 1.0
		if weight != nil {
			w = weight(row)
		}
		nxz.Set(zOff, xOff, nxz.At(zOff, xOff)+w)
		sampleSize += w
	}

	return &CategoricalStats{X: xStates, Z: zStates, Nxz: nxz, SampleSize: sampleSize}, nil
}

// parAccumulate is the chunked fold-reduce variant: rows are partitioned
// into contiguous chunks of chunkSize, each worker accumulates a private
// Nxz, and a final left fold over chunks ordered by start index sums them.
func parAccumulate(states containers.States, x, z containers.Labels, nRows int, value rowValue, weight func(row int) float64) (*CategoricalStats, error) {
	if nRows <= chunkSize {
		return accumulate(states, x, z, nRows, value, weight)
	}

	nChunks := (nRows + chunkSize - 1) / chunkSize
	workers := runtime.GOMAXPROCS(0)
	if workers > nChunks {
		workers = nChunks
	}

	partials := make([]*CategoricalStats, nChunks)
	errs := make([]error, nChunks)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for c := 0; c < nChunks; c++ {
		start := c * chunkSize
		end := start + chunkSize
		if end > nRows {
			end = nRows
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(c, start, end int) {
			defer wg.Done()
			defer func() { <-sem }()
			stats, err := accumulate(states, x, z, end-start, func(row int, name string) byte {
				return value(start+row, name)
			}, func(row int) float64 {
				if weight == nil {
					return 1
				}
				return weight(start + row)
			})
			partials[c] = stats
			errs[c] = err
		}(c, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := partials[0]
	for c := 1; c < nChunks; c++ {
		out.Nxz.Add(out.Nxz, partials[c].Nxz)
		out.SampleSize += partials[c].SampleSize
	}
	return out, nil
}

// FitCategorical computes N_xz over a complete categorical table.
func FitCategorical(table *data.CatTable, x, z containers.Labels) (*CategoricalStats, error) {
	return accumulate(table.States(), x, z, table.NRows(), tableValue(table), nil)
}

// ParFitCategorical is the parallel fold-reduce variant of FitCategorical,
// semantically identical.
func ParFitCategorical(table *data.CatTable, x, z containers.Labels) (*CategoricalStats, error) {
	return parAccumulate(table.States(), x, z, table.NRows(), tableValue(table), nil)
}

// FitCategoricalWeighted computes N_xz over a weighted complete table,
// accumulating each row's weight rather than a unit count.
func FitCategoricalWeighted(wt *data.CatWtdTable, x, z containers.Labels) (*CategoricalStats, error) {
	table := wt.Table
	return accumulate(table.States(), x, z, table.NRows(), tableValue(table), func(row int) float64 {
		return wt.Weights[row]
	})
}

func tableValue(table *data.CatTable) rowValue {
	labels := table.Labels()
	return func(row int, name string) byte {
		col := labels.IndexOf(name)
		return table.Value(row, col)
	}
}
