package dist

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
)

// CIM is a categorical Conditional Intensity Matrix: a generator Q(X|Z) of
// shape (|Z|_flat, |X|, |X|). Per
// conditioning index, off-diagonal entries are non-negative and each row
// sums to zero.
type CIM struct {
	x, z containers.States
	zRMI containers.RMI

	slices []*mat.Dense // one |X|x|X| generator per flat Z configuration

	stats  *SampleStatistics
	logLik *float64

	name        string
	description string
}

// NewCIM validates and builds a CIM from one |X|x|X| slice per flat Z
// configuration. Diagonal entries in the input are ignored and
// recomputed as the negated off-diagonal row sum, as a generator's
// diagonal must always be.
func NewCIM(x, z containers.States, slices [][][]float64) (*CIM, error) {
	if !containers.Disjoint(x.Labels(), z.Labels()) {
		return nil, containers.ErrInvalidArgument("X and Z must be disjoint")
	}

	zRMI := containers.NewRMI(z.Shape())
	cx := 1
	for _, c := range x.Shape() {
		cx *= c
	}

	if len(slices) != zRMI.Size() {
		return nil, containers.ErrShape("slices has %d entries, expected %d", len(slices), zRMI.Size())
	}

	out := make([]*mat.Dense, len(slices))
	for zi, slice := range slices {
		if len(slice) != cx {
			return nil, containers.ErrShape("slice %d has %d rows, expected %d", zi, len(slice), cx)
		}
		m := mat.NewDense(cx, cx, nil)
		for i, row := range slice {
			if len(row) != cx {
				return nil, containers.ErrShape("slice %d row %d has %d columns, expected %d", zi, i, len(row), cx)
			}
			rowSum := 0.0
			for j, v := range row {
				if i == j {
					continue
				}
				if v < -rowSumTolerance {
					return nil, containers.ErrInvalidArgument("slice %d row %d col %d is negative: %v", zi, i, j, v)
				}
				m.Set(i, j, math.Max(v, 0))
				rowSum += math.Max(v, 0)
			}
			m.Set(i, i, -rowSum)
		}
		out[zi] = m
	}

	return &CIM{x: x, z: z, zRMI: zRMI, slices: out}, nil
}

func (c *CIM) X() containers.States { return c.x }
func (c *CIM) Z() containers.States { return c.z }

// Slice returns the |X|x|X| generator for flat Z configuration zIdx.
func (c *CIM) Slice(zIdx int) *mat.Dense { return c.slices[zIdx] }

// ExitRate returns q_{x|z} = -Q[z][x,x], the total rate out of state x
// under conditioning configuration zIdx.
func (c *CIM) ExitRate(zIdx, x int) float64 { return -c.slices[zIdx].At(x, x) }

func (c *CIM) Stats() *SampleStatistics { return c.stats }
func (c *CIM) LogLikelihood() (float64, bool) {
	if c.logLik == nil {
		return 0, false
	}
	return *c.logLik, true
}
func (c *CIM) Name() string        { return c.name }
func (c *CIM) Description() string { return c.description }

func (c *CIM) WithStats(s *SampleStatistics) *CIM {
	c.stats = s
	return c
}

func (c *CIM) WithLogLikelihood(ll float64) *CIM {
	c.logLik = &ll
	return c
}

func (c *CIM) WithOptionals(name, description string) *CIM {
	c.name = name
	c.description = description
	return c
}
