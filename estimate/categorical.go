// Package estimate implements the categorical, CTBN and Gaussian
// parameter estimators, and the per-vertex "blanket"
// composition that fits a whole BN/CTBN from an ordered list of
// (vertex, parents) specifications.
package estimate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/suffstat"
)

// smallestPositive guards ln(0) while preserving 0*ln(0) = 0 by
// multiplying before taking the log.
const smallestPositive = 5e-324

// MLECategorical computes the maximum-likelihood categorical CPD from raw
// counts.
func MLECategorical(stats *suffstat.CategoricalStats) (*dist.CPD, error) {
	return fitCategorical(stats, 0)
}

// BayesianCategorical computes the Bayesian (Dirichlet-prior) categorical
// CPD with scalar pseudo-count alpha.
func BayesianCategorical(stats *suffstat.CategoricalStats, alpha float64) (*dist.CPD, error) {
	if alpha <= 0 {
		return nil, containers.ErrInvalidArgument("alpha must be positive, got %v", alpha)
	}
	return fitCategorical(stats, alpha)
}

func fitCategorical(stats *suffstat.CategoricalStats, alpha float64) (*dist.CPD, error) {
	zFlat, xFlat := stats.Nxz.Dims()

	nxz := mat.NewDense(zFlat, xFlat, nil)
	nxz.Add(nxz, stats.Nxz)
	if alpha != 0 {
		for i := 0; i < zFlat; i++ {
			for j := 0; j < xFlat; j++ {
				nxz.Set(i, j, nxz.At(i, j)+alpha)
			}
		}
	}

	rows := make([][]float64, zFlat)
	logLik := 0.0
	for i := 0; i < zFlat; i++ {
		nz := 0.0
		for j := 0; j < xFlat; j++ {
			nz += nxz.At(i, j)
		}
		if nz <= 0 {
			return nil, containers.ErrZeroMarginal("conditioning configuration %d has zero marginal count", i)
		}
		row := make([]float64, xFlat)
		for j := 0; j < xFlat; j++ {
			p := nxz.At(i, j) / nz
			row[j] = p
			if alpha == 0 {
				logLik += nxz.At(i, j) * math.Log(p+smallestPositive)
			} else {
				logLik += nxz.At(i, j) * math.Log(p)
			}
		}
		rows[i] = row
	}

	cpd, err := dist.NewCPD(stats.X, stats.Z, rows)
	if err != nil {
		return nil, err
	}
	bundle := &dist.SampleStatistics{
		Shape:      []int{zFlat, xFlat},
		Nxz:        flattenDense(stats.Nxz),
		SampleSize: stats.SampleSize,
	}
	return cpd.WithStats(bundle).WithLogLikelihood(logLik), nil
}

func flattenDense(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
