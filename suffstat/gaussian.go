package suffstat

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/dist"
)

// GaussianStats is the sufficient statistics bundle for a Gaussian CPD
// fit: per-variable means and centred scatter matrices, not divided by n.
type GaussianStats struct {
	X, Z          containers.Labels
	MuX, MuZ      []float64
	Sxx, Sxz, Szz *mat.Dense
	N             float64
}

// FitGaussian computes (mu_X, mu_Z, S_XX, S_XZ, S_ZZ, n) over a complete
// Gaussian table.
func FitGaussian(table *data.GaussTable, x, z containers.Labels) (*GaussianStats, error) {
	n := table.NRows()
	if n == 0 {
		return nil, containers.ErrInvalidArgument("table has no rows")
	}

	xNames, zNames := x.Names(), z.Names()
	xCols := make([][]float64, len(xNames))
	zCols := make([][]float64, len(zNames))
	for i, name := range xNames {
		xCols[i] = table.Column(name)
	}
	for i, name := range zNames {
		zCols[i] = table.Column(name)
	}

	muX := make([]float64, len(xNames))
	muZ := make([]float64, len(zNames))
	for i, col := range xCols {
		muX[i] = stat.Mean(col, nil)
	}
	for i, col := range zCols {
		muZ[i] = stat.Mean(col, nil)
	}

	sxx := scatter(xCols, muX, xCols, muX)
	sxz := scatter(xCols, muX, zCols, muZ)
	szz := scatter(zCols, muZ, zCols, muZ)

	return &GaussianStats{X: x, Z: z, MuX: muX, MuZ: muZ, Sxx: sxx, Sxz: sxz, Szz: szz, N: float64(n)}, nil
}

// scatter computes the centred cross-scatter matrix Sum_r (a_r - muA)(b_r - muB)'
// for column groups a (pa columns) and b (pb columns) of equal row count.
func scatter(a [][]float64, muA []float64, b [][]float64, muB []float64) *mat.Dense {
	pa, pb := len(a), len(b)
	out := mat.NewDense(pa, pb, nil)
	if pa == 0 || pb == 0 {
		return out
	}
	n := len(a[0])
	for i := 0; i < pa; i++ {
		for j := 0; j < pb; j++ {
			sum := 0.0
			for r := 0; r < n; r++ {
				sum += (a[i][r] - muA[i]) * (b[j][r] - muB[j])
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// Bundle flattens the stats into the dist.SampleStatistics representation
// a CPD carries.
func (g *GaussianStats) Bundle() *dist.SampleStatistics {
	return &dist.SampleStatistics{
		MuX: append([]float64(nil), g.MuX...),
		MuZ: append([]float64(nil), g.MuZ...),
		Sxx: flatten(g.Sxx),
		Sxz: flatten(g.Sxz),
		Szz: flatten(g.Szz),
		N:   g.N,
	}
}

func flatten(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
