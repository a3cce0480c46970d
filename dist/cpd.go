package dist

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
)

// CPD is a categorical Conditional Probability Distribution P(X | Z): a
// parameter matrix with rows indexed by the flat configuration of Z and
// columns by the flat configuration of X.
// Every row sums to 1 and has non-negative entries.
type CPD struct {
	x, z   containers.States
	xRMI   containers.RMI
	zRMI   containers.RMI
	params *mat.Dense // zFlat x xFlat

	stats  *SampleStatistics
	logLik *float64

	name        string
	description string
}

const rowSumTolerance = 1e-6

// NewCPD validates and builds a CPD. X and Z must be disjoint label sets;
// params has one row per flat Z configuration and one column per flat X
// configuration, each row summing to 1 with non-negative entries.
func NewCPD(x, z containers.States, params [][]float64) (*CPD, error) {
	if !containers.Disjoint(x.Labels(), z.Labels()) {
		return nil, containers.ErrInvalidArgument("X and Z must be disjoint")
	}

	xRMI := containers.NewRMI(x.Shape())
	zRMI := containers.NewRMI(z.Shape())

	if len(params) != zRMI.Size() {
		return nil, containers.ErrShape("params has %d rows, expected %d", len(params), zRMI.Size())
	}

	m := mat.NewDense(zRMI.Size(), xRMI.Size(), nil)
	for i, row := range params {
		if len(row) != xRMI.Size() {
			return nil, containers.ErrShape("params row %d has %d columns, expected %d", i, len(row), xRMI.Size())
		}
		sum := 0.0
		for j, v := range row {
			if v < -rowSumTolerance {
				return nil, containers.ErrInvalidArgument("params row %d col %d is negative: %v", i, j, v)
			}
			m.Set(i, j, math.Max(v, 0))
			sum += v
		}
		if math.Abs(sum-1.0) > rowSumTolerance {
			return nil, containers.ErrInvalidArgument("params row %d sums to %v, expected 1", i, sum)
		}
	}

	return &CPD{x: x, z: z, xRMI: xRMI, zRMI: zRMI, params: m}, nil
}

func (c *CPD) X() containers.States { return c.x }
func (c *CPD) Z() containers.States { return c.z }

// At returns P(X=xIdx | Z=zIdx) where xIdx/zIdx are flat configurations.
func (c *CPD) At(zIdx, xIdx int) float64 { return c.params.At(zIdx, xIdx) }

// Row returns the conditional distribution over X for flat configuration
// zIdx of Z.
func (c *CPD) Row(zIdx int) []float64 {
	row := make([]float64, c.xRMI.Size())
	mat.Row(row, zIdx, c.params)
	return row
}

// Params returns the underlying zFlat x xFlat parameter matrix.
func (c *CPD) Params() *mat.Dense { return c.params }

func (c *CPD) Stats() *SampleStatistics { return c.stats }
func (c *CPD) LogLikelihood() (float64, bool) {
	if c.logLik == nil {
		return 0, false
	}
	return *c.logLik, true
}
func (c *CPD) Name() string        { return c.name }
func (c *CPD) Description() string { return c.description }

// WithStats attaches a SampleStatistics bundle and returns the receiver
// for chaining.
func (c *CPD) WithStats(s *SampleStatistics) *CPD {
	c.stats = s
	return c
}

// WithLogLikelihood attaches a precomputed sample log-likelihood.
func (c *CPD) WithLogLikelihood(ll float64) *CPD {
	c.logLik = &ll
	return c
}

// WithOptionals attaches descriptive metadata.
func (c *CPD) WithOptionals(name, description string) *CPD {
	c.name = name
	c.description = description
	return c
}
